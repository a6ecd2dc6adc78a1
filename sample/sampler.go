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

// Sampler samples random values from some probability distribution.
// Sample returns n values in the order in which they were generated,
// or an error and no values at all.
//
// Samplers that carry state (such as LCG) continue their sequence
// across calls. None of the samplers is safe for concurrent use.
type Sampler interface {
	Sample(n int) ([]float64, error)
}

// Draw returns n values sampled by s.
func Draw(s Sampler, n int) ([]float64, error) {
	return s.Sample(n)
}

// Func is a scalar function of a single real variable, such as
// a probability density or an inverse cumulative distribution
// function.
type Func func(float64) float64

// Density is implemented by distributions that can evaluate their
// probability density function, e.g. distributions from
// gonum.org/v1/gonum/stat/distuv.
type Density interface {
	Prob(x float64) float64
}

// Quantiler is implemented by distributions that can evaluate their
// inverse cumulative distribution function, e.g. distributions from
// gonum.org/v1/gonum/stat/distuv.
type Quantiler interface {
	Quantile(p float64) float64
}

// sampleExactly samples n values with s and checks that
// s returned exactly n of them.
func sampleExactly(s Sampler, n int) ([]float64, error) {
	v, err := s.Sample(n)
	if err != nil {
		return nil, err
	}
	if len(v) != n {
		return nil, domainErrorf("sampler returned %d values instead of %d", len(v), n)
	}

	return v, nil
}

// next returns a single value sampled by s.
func next(s Sampler) (float64, error) {
	v, err := sampleExactly(s, 1)
	if err != nil {
		return 0, err
	}

	return v[0], nil
}
