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

package sample

import (
	"github.com/fentec-project/gomc/internal"
)

// LCG is a linear congruential generator. Starting from a seed X_0
// it generates the sequence X_{n+1} = (a*X_n + c) mod m and returns
// values Z_n = X_n / m, which approximate the uniform distribution
// on [0, 1).
//
// The generator is fast and simple, but the quality of its output
// depends heavily on the choice of a, c and m, and it is not
// suitable for cryptographic purposes.
type LCG struct {
	a uint64
	c uint64
	m uint64
	// current value X_n, always in [0, m)
	x uint64
}

// NewLCG returns an instance of LCG sampler with multiplier a,
// increment c, modulus m and initial state seed.
// It returns an error unless m > 0, 0 < a < m, 0 <= c < m
// and 0 <= seed < m.
func NewLCG(a, c, m, seed int64) (*LCG, error) {
	if m <= 0 {
		return nil, configErrorf("modulus m = %d should be positive", m)
	}
	if a <= 0 || a >= m {
		return nil, configErrorf("multiplier a = %d should be in (0, %d)", a, m)
	}
	if c < 0 || c >= m {
		return nil, configErrorf("increment c = %d should be in [0, %d)", c, m)
	}
	if seed < 0 || seed >= m {
		return nil, configErrorf("seed = %d should be in [0, %d)", seed, m)
	}

	return &LCG{
		a: uint64(a),
		c: uint64(c),
		m: uint64(m),
		x: uint64(seed),
	}, nil
}

// NewLCGNumericalRecipes returns an LCG with the parameters
// a = 1664525, c = 1013904223 and m = 2^32 from "Numerical Recipes".
func NewLCGNumericalRecipes(seed int64) (*LCG, error) {
	return NewLCG(1664525, 1013904223, 1<<32, seed)
}

// NewLCGMinStd returns the Park-Miller "minimal standard" generator
// with a = 16807, c = 0 and m = 2^31 - 1. Since c = 0, seed must
// not be 0.
func NewLCGMinStd(seed int64) (*LCG, error) {
	if seed == 0 {
		return nil, configErrorf("seed of a generator without increment should not be 0")
	}

	return NewLCG(16807, 0, 1<<31-1, seed)
}

// Sample advances the generator n times and returns the
// obtained values.
func (l *LCG) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	res := make([]float64, n)
	for i := range res {
		l.x = internal.MulAddMod(l.a, l.x, l.c, l.m)
		res[i] = internal.Ratio(l.x, l.m)
	}

	return res, nil
}

// State returns the current value X_n of the recurrence.
func (l *LCG) State() int64 {
	return int64(l.x)
}

// Params returns the multiplier, increment and modulus of l.
func (l *LCG) Params() (a, c, m int64) {
	return int64(l.a), int64(l.c), int64(l.m)
}
