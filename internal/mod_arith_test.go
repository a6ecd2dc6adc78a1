/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulAddMod(t *testing.T) {
	var tests = []struct {
		name       string
		a, x, c, m uint64
	}{
		{name: "Small", a: 5, x: 7, c: 3, m: 16},
		{name: "NumericalRecipes", a: 1664525, x: 4294967295, c: 1013904223, m: 1 << 32},
		{name: "Overflowing product", a: 6364136223846793005, x: 1<<63 - 2, c: 1442695040888963407, m: 1<<63 - 1},
		{name: "Maximal values", a: math.MaxUint64 - 1, x: math.MaxUint64 - 1, c: math.MaxUint64 - 1, m: math.MaxUint64},
		{name: "Zero", a: 3, x: 0, c: 0, m: 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expect := new(big.Int).SetUint64(test.a)
			expect.Mul(expect, new(big.Int).SetUint64(test.x))
			expect.Add(expect, new(big.Int).SetUint64(test.c))
			expect.Mod(expect, new(big.Int).SetUint64(test.m))

			assert.Equal(t, expect.Uint64(), MulAddMod(test.a, test.x, test.c, test.m))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(0, 10))
	assert.Equal(t, 0.5, Ratio(1, 2))

	// float64(m - 1) / float64(m) rounds to 1
	z := Ratio(1<<63-2, 1<<63-1)
	assert.True(t, z < 1)
	assert.Equal(t, math.Nextafter(1, 0), z)
}

func TestFirstNonFinite(t *testing.T) {
	assert.Equal(t, -1, FirstNonFinite([]float64{0, -1, math.MaxFloat64}))
	assert.Equal(t, 1, FirstNonFinite([]float64{0, math.NaN(), math.Inf(1)}))
	assert.Equal(t, -1, FirstNonFinite(nil))
	assert.True(t, IsFinite(-math.MaxFloat64))
	assert.False(t, IsFinite(math.Inf(-1)))
}
