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

	"github.com/fentec-project/gomc/internal"
)

// NormalTransform samples random values from the Normal (Gaussian)
// distribution with mean mu and variance sigma^2 by transforming the
// values of another normal sampler. If Z ~ Normal(mu0, sigma0^2), then
// sigma (Z - mu0) / sigma0 + mu ~ Normal(mu, sigma^2).
type NormalTransform struct {
	base Sampler
	// target mean and standard deviation
	mu    float64
	sigma float64
	// mean and standard deviation of the base sampler
	oldMu    float64
	oldSigma float64
}

// NewNormalTransform returns an instance of NormalTransform sampler
// with target mean mu and variance sigma2. It assumes base samples
// from the standard normal distribution.
func NewNormalTransform(base Sampler, mu, sigma2 float64) (*NormalTransform, error) {
	return NewNormalTransformFrom(base, mu, sigma2, 0, 1)
}

// NewNormalTransformFrom returns an instance of NormalTransform
// sampler with target mean mu and variance sigma2, where base samples
// from the normal distribution with mean oldMu and variance oldSigma2.
// It returns an error if sigma2 < 0 or oldSigma2 <= 0.
func NewNormalTransformFrom(base Sampler, mu, sigma2, oldMu, oldSigma2 float64) (*NormalTransform, error) {
	if base == nil {
		return nil, configErrorf("base sampler should not be nil")
	}
	for _, p := range []float64{mu, sigma2, oldMu, oldSigma2} {
		if !internal.IsFinite(p) {
			return nil, configErrorf("parameter %v should be finite", p)
		}
	}
	if sigma2 < 0 {
		return nil, configErrorf("variance %v should be non-negative", sigma2)
	}
	if oldSigma2 <= 0 {
		return nil, configErrorf("variance of the base sampler %v should be positive", oldSigma2)
	}

	return &NormalTransform{
		base:     base,
		mu:       mu,
		sigma:    math.Sqrt(sigma2),
		oldMu:    oldMu,
		oldSigma: math.Sqrt(oldSigma2),
	}, nil
}

// Sample draws n values from the base sampler and transforms them.
// It returns an error if the base sampler yields a non-finite value.
func (s *NormalTransform) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	z, err := sampleExactly(s.base, n)
	if err != nil {
		return nil, err
	}

	standard := s.oldMu == 0 && s.oldSigma == 1
	res := make([]float64, n)
	for i, zi := range z {
		if !internal.IsFinite(zi) {
			return nil, domainErrorf("base sampler returned %v", zi)
		}
		if !standard {
			zi = (zi - s.oldMu) / s.oldSigma
		}
		res[i] = s.sigma*zi + s.mu
	}

	return res, nil
}
