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

// DefaultMaxAttempts is the number of candidates Rejection
// tries for a single sample when no other bound is given.
const DefaultMaxAttempts = 1 << 20

// Rejection samples random values from a target density f using
// a proposal density g which can be sampled directly. It requires
// f(x)/g(x) <= M for all x in the support of f. A candidate X is
// sampled from g and accepted with probability f(X)/(M g(X)),
// otherwise it is discarded and a new candidate is sampled.
//
// The expected acceptance rate is 1/M. No check is made that M
// really bounds f/g or that the proposal sampler matches g; if it
// does not, the samples are not distributed according to f.
type Rejection struct {
	f        Func
	g        Func
	proposal Sampler
	uniform  Sampler
	m        float64
	// maximal number of candidates per accepted sample
	maxAttempts int
}

// NewRejection returns an instance of Rejection sampler. It accepts
// the target density f, the proposal density g, a sampler of the
// proposal distribution, the bound m on f/g, a sampler of uniform
// values on [0, 1) used for the accept/reject test, and the maximal
// number of candidates tried for each sample. If uniform is nil,
// a Uniform sampler is used; if maxAttempts is 0,
// DefaultMaxAttempts is used.
func NewRejection(f, g Func, proposal Sampler, m float64,
	uniform Sampler, maxAttempts int) (*Rejection, error) {
	if f == nil || g == nil {
		return nil, configErrorf("densities should not be nil")
	}
	if proposal == nil {
		return nil, configErrorf("proposal sampler should not be nil")
	}
	if !internal.IsFinite(m) || m <= 0 {
		return nil, configErrorf("bound M = %v should be positive and finite", m)
	}
	if maxAttempts < 0 {
		return nil, configErrorf("maximal number of attempts %d should be non-negative", maxAttempts)
	}
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if uniform == nil {
		uniform = NewUniform()
	}

	return &Rejection{
		f:           f,
		g:           g,
		proposal:    proposal,
		uniform:     uniform,
		m:           m,
		maxAttempts: maxAttempts,
	}, nil
}

// NewRejectionDensities is like NewRejection, but takes the target
// and proposal distributions as values implementing Density.
func NewRejectionDensities(f, g Density, proposal Sampler, m float64,
	uniform Sampler, maxAttempts int) (*Rejection, error) {
	if f == nil || g == nil {
		return nil, configErrorf("densities should not be nil")
	}

	return NewRejection(f.Prob, g.Prob, proposal, m, uniform, maxAttempts)
}

// Sample returns n values accepted by the rejection test.
func (s *Rejection) Sample(n int) ([]float64, error) {
	res, _, err := s.SampleWithAttempts(n)
	return res, err
}

// SampleWithAttempts returns n values accepted by the rejection test
// together with the total number of candidates that were sampled.
// The ratio n/attempts estimates the acceptance rate 1/M.
//
// It returns an error with no values if more than the maximal number
// of candidates is rejected in a row, or if any of the densities
// yields an invalid value.
func (s *Rejection) SampleWithAttempts(n int) ([]float64, int, error) {
	if err := checkCount(n); err != nil {
		return nil, 0, err
	}

	res := make([]float64, n)
	attempts := 0
	for i := range res {
		accepted := false
		for j := 0; j < s.maxAttempts; j++ {
			attempts++
			x, ok, err := s.try()
			if err != nil {
				return nil, attempts, err
			}
			if ok {
				res[i] = x
				accepted = true
				break
			}
		}
		if !accepted {
			return nil, attempts, nonTerminationErrorf("%d candidates rejected in a row", s.maxAttempts)
		}
	}

	return res, attempts, nil
}

// try samples a single candidate and decides whether to accept it.
func (s *Rejection) try() (float64, bool, error) {
	// sample a candidate from the proposal distribution
	x, err := next(s.proposal)
	if err != nil {
		return 0, false, err
	}
	if !internal.IsFinite(x) {
		return 0, false, domainErrorf("proposal sampler returned %v", x)
	}

	// sample again to decide if we accept the candidate
	v, err := next(s.uniform)
	if err != nil {
		return 0, false, err
	}

	fx := s.f(x)
	if !internal.IsFinite(fx) || fx < 0 {
		return 0, false, domainErrorf("target density at %v is %v", x, fx)
	}
	gx := s.g(x)
	if !internal.IsFinite(gx) || gx <= 0 {
		return 0, false, domainErrorf("proposal density at %v is %v", x, gx)
	}

	return x, v <= fx/(s.m*gx), nil
}
