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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/gomc/data"
	"github.com/fentec-project/gomc/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardNormalBounds() paramBounds {
	return paramBounds{
		meanLow:  -0.02,
		meanHigh: 0.02,
		varLow:   0.97,
		varHigh:  1.03,
	}
}

func TestBoxMuller(t *testing.T) {
	lcg, err := sample.NewLCGNumericalRecipes(1729)
	require.NoError(t, err)

	var tests = []struct {
		name    string
		uniform sample.Sampler
	}{
		{name: "Source", uniform: sample.NewSeededSource(2018)},
		{name: "LCG", uniform: lcg},
		{name: "Uniform", uniform: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testMoments(t, sample.NewBoxMuller(test.uniform), 100000, standardNormalBounds())
		})
	}
}

func TestBoxMuller_Pairs(t *testing.T) {
	s := sample.NewBoxMuller(sample.NewSeededSource(17))
	pairs, err := s.SamplePairs(50000)
	require.NoError(t, err)

	m := data.NewPairMatrix(pairs)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 50000, m.Cols())

	for i := 0; i < m.Rows(); i++ {
		me, v := m[i].Mean(), m[i].Variance()
		assert.InDelta(t, 0, me, 0.03, "mean of component %d", i)
		assert.InDelta(t, 1, v, 0.04, "variance of component %d", i)
	}

	// Z1 and Z2 of a pair are independent
	corr, err := m.Correlation(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, corr, 0.03)
}

func TestBoxMuller_OddCount(t *testing.T) {
	pairs, err := sample.NewBoxMuller(sample.NewSeededSource(99)).SamplePairs(3)
	require.NoError(t, err)
	flat := data.NewPairMatrix(pairs).Flatten()

	// the second value of the last pair is discarded
	res, err := sample.NewBoxMuller(sample.NewSeededSource(99)).Sample(5)
	require.NoError(t, err)
	assert.Equal(t, []float64(flat[:5]), res)
}

func TestBoxMuller_Transform(t *testing.T) {
	// U1 = 0 is redrawn together with its U2
	uniform := &sliceSampler{values: []float64{0, 0.3, 0.5, 0.25, 1, 0}}
	pairs, err := sample.NewBoxMuller(uniform).SamplePairs(2)
	require.NoError(t, err)

	r := math.Sqrt(2 * math.Ln2)
	assert.InDelta(t, 0, pairs[0][0], 1e-12)
	assert.InDelta(t, r, pairs[0][1], 1e-12)
	// U1 = 1 gives a zero radius
	assert.Equal(t, [2]float64{0, 0}, pairs[1])
}

func TestBoxMuller_Errors(t *testing.T) {
	// a generator with c = 0 seeded with 0 never leaves 0
	lcg, err := sample.NewLCG(5, 0, 7, 0)
	require.NoError(t, err)
	res, err := sample.NewBoxMuller(lcg).Sample(2)
	assert.ErrorIs(t, err, sample.ErrNonTermination)
	assert.Nil(t, res)

	res, err = sample.NewBoxMuller(&sliceSampler{values: []float64{1.5, 0.2}}).Sample(1)
	assert.ErrorIs(t, err, sample.ErrDomain)
	assert.Nil(t, res)

	res, err = sample.NewBoxMuller(&sliceSampler{values: []float64{0.5, math.NaN()}}).Sample(1)
	assert.ErrorIs(t, err, sample.ErrDomain)
	assert.Nil(t, res)

	res, err = sample.NewBoxMuller(&sliceSampler{values: []float64{0.5}}).Sample(1)
	assert.Error(t, err)
	assert.Nil(t, res)
}
