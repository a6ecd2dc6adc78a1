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

// InverseTransform samples random values from a distribution
// given by its inverse cumulative distribution function F^-1.
// If U is uniform on [0, 1), then F^-1(U) is distributed according
// to F. For non-decreasing F the generalized inverse
// F^-(u) = inf{x : F(x) >= u} can be used instead.
//
// Since U and 1 - U have the same distribution, F^-1(1 - u) may be
// replaced by F^-1(u). For instance, -ln(u) yields the standard
// exponential distribution.
type InverseTransform struct {
	fInv    Func
	uniform Sampler
}

// NewInverseTransform returns an instance of InverseTransform sampler.
// It accepts the inverse CDF of the target distribution and a sampler
// of uniform values on [0, 1). If uniform is nil, a Uniform sampler
// is used.
func NewInverseTransform(fInv Func, uniform Sampler) (*InverseTransform, error) {
	if fInv == nil {
		return nil, configErrorf("inverse CDF should not be nil")
	}
	if uniform == nil {
		uniform = NewUniform()
	}

	return &InverseTransform{
		fInv:    fInv,
		uniform: uniform,
	}, nil
}

// NewInverseTransformQuantile returns an instance of InverseTransform
// sampler for the distribution q.
func NewInverseTransformQuantile(q Quantiler, uniform Sampler) (*InverseTransform, error) {
	if q == nil {
		return nil, configErrorf("quantile function should not be nil")
	}

	return NewInverseTransform(q.Quantile, uniform)
}

// Sample draws n uniform values and maps each of them with F^-1.
// It returns an error if F^-1 yields a non-finite value.
func (s *InverseTransform) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	u, err := sampleExactly(s.uniform, n)
	if err != nil {
		return nil, err
	}

	res := make([]float64, n)
	for i, ui := range u {
		res[i] = s.fInv(ui)
		if !internal.IsFinite(res[i]) {
			return nil, domainErrorf("inverse CDF at %v is %v", ui, res[i])
		}
	}

	return res, nil
}
