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
	"math"
)

// MaxZeroRedraws is the number of consecutive uniform pairs with
// U1 = 0 after which BoxMuller gives up. Only a degenerate uniform
// source, e.g. an LCG stuck in the fixed point 0, can reach it.
const MaxZeroRedraws = 64

// BoxMuller samples pairs of independent standard normal values.
// Given independent U1, U2 uniform on (0, 1), it computes
//
//	Z1 = sqrt(-2 ln U1) cos(2 pi U2),
//	Z2 = sqrt(-2 ln U1) sin(2 pi U2).
//
// The angle 2 pi U2 is uniform and the squared radius -2 ln U1 is
// exponential with rate 1/2, so Z1 and Z2 are independent and
// normally distributed with mean 0 and variance 1.
type BoxMuller struct {
	uniform Sampler
}

// NewBoxMuller returns an instance of BoxMuller sampler, drawing
// uniform values with uniform. If uniform is nil, a Uniform sampler
// is used.
func NewBoxMuller(uniform Sampler) *BoxMuller {
	if uniform == nil {
		uniform = NewUniform()
	}

	return &BoxMuller{
		uniform: uniform,
	}
}

// SamplePairs returns n pairs (Z1, Z2) of standard normal values.
// Each pair consumes (at least) two uniform values. A pair with
// U1 = 0 is drawn again.
func (b *BoxMuller) SamplePairs(n int) ([][2]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	res := make([][2]float64, n)
	for i := range res {
		u1, u2, err := b.uniformPair()
		if err != nil {
			return nil, err
		}
		r := math.Sqrt(-2 * math.Log(u1))
		sin, cos := math.Sincos(2 * math.Pi * u2)
		res[i] = [2]float64{r * cos, r * sin}
	}

	return res, nil
}

// Sample returns n standard normal values, Z1 and Z2 of each pair
// one after the other. If n is odd, Z2 of the last pair is discarded.
func (b *BoxMuller) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	pairs, err := b.SamplePairs((n + 1) / 2)
	if err != nil {
		return nil, err
	}

	res := make([]float64, n)
	for i := range res {
		res[i] = pairs[i/2][i%2]
	}

	return res, nil
}

// uniformPair returns U1 from (0, 1] and U2 from [0, 1].
func (b *BoxMuller) uniformPair() (float64, float64, error) {
	for i := 0; i < MaxZeroRedraws; i++ {
		u, err := sampleExactly(b.uniform, 2)
		if err != nil {
			return 0, 0, err
		}
		if !inUnit(u[0]) || !inUnit(u[1]) {
			return 0, 0, domainErrorf("uniform values (%v, %v) are not in [0, 1]", u[0], u[1])
		}
		if u[0] > 0 {
			return u[0], u[1], nil
		}
	}

	return 0, 0, nonTerminationErrorf("U1 = 0 in %d consecutive uniform pairs", MaxZeroRedraws)
}

func inUnit(x float64) bool {
	return x >= 0 && x <= 1
}
