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
	"golang.org/x/exp/rand"
)

// Source samples values from the interval [0, 1) using an
// arbitrary golang.org/x/exp/rand Source, such as its PCG
// generator. This allows any external uniform generator to feed
// the transform samplers.
type Source struct {
	rnd *rand.Rand
}

// NewSource returns an instance of Source sampler backed by src.
func NewSource(src rand.Source) (*Source, error) {
	if src == nil {
		return nil, configErrorf("source should not be nil")
	}

	return &Source{
		rnd: rand.New(src),
	}, nil
}

// NewSeededSource returns an instance of Source sampler backed
// by a PCG generator initialized with seed.
func NewSeededSource(seed uint64) *Source {
	return &Source{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Sample returns the next n values of the underlying source.
func (s *Source) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	res := make([]float64, n)
	for i := range res {
		res[i] = s.rnd.Float64()
	}

	return res, nil
}
