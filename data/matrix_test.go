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

package data

import (
	"testing"

	"github.com/fentec-project/gomc/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	sampler := sample.NewSeededSource(42)

	x, err := NewRandomMatrix(rows, cols, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}
	assert.True(t, x.CheckDims(rows, cols))
	assert.NoError(t, x.CheckFinite())

	// rows are filled in the order of generation
	flat, err := NewRandomVector(rows*cols, sample.NewSeededSource(42))
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		assert.Equal(t, flat[i*cols:(i+1)*cols], x[i])
	}

	var key [32]byte
	for i := range key {
		key[i] = byte(3 * i)
	}

	_, err = NewRandomDetMatrix(100, 100, &key)
	assert.Equal(t, err, nil)
}

func TestMatrix_Rows(t *testing.T) {
	m, _ := NewRandomMatrix(2, 3, sample.NewUniform())
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Cols(t *testing.T) {
	m, _ := NewRandomMatrix(2, 3, sample.NewUniform())
	assert.Equal(t, 3, m.Cols())
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Empty(t, m.Flatten())

	r, c := m.Dense().Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
}

func TestNewMatrix(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err)

	m, err := NewMatrix([]Vector{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.True(t, m.DimsMatch(Matrix{{0, 0}, {0, 0}}))
}

func TestMatrix_Pairs(t *testing.T) {
	m := NewPairMatrix([][2]float64{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	col, err := m.GetCol(1)
	require.NoError(t, err)
	assert.Equal(t, Vector{3, 4}, col)
	_, err = m.GetCol(3)
	assert.Error(t, err)

	assert.Equal(t, Vector{1, 2, 3, 4, 5, 6}, m.Flatten())
	assert.Equal(t, Matrix{{1, 2}, {3, 4}, {5, 6}}, m.Transpose())
	assert.Equal(t, Matrix{{2, 6, 10}, {4, 8, 12}}, m.Apply(func(x float64) float64 { return 2 * x }))

	d := m.Dense()
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 4.0, d.At(1, 1))
}

func TestMatrix_Correlation(t *testing.T) {
	m := Matrix{{1, 2, 3, 4}, {2, 4, 6, 8}, {4, 3, 2, 1}}

	corr, err := m.Correlation(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, corr, 1e-12)

	corr, err = m.Correlation(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, -1, corr, 1e-12)

	_, err = m.Correlation(0, 3)
	assert.Error(t, err)
}

func TestMatrix_BoxMullerPairs(t *testing.T) {
	pairs, err := sample.NewBoxMuller(sample.NewSeededSource(5)).SamplePairs(1000)
	require.NoError(t, err)

	m := NewPairMatrix(pairs)
	assert.NoError(t, m.CheckFinite())

	flat, err := sample.NewBoxMuller(sample.NewSeededSource(5)).Sample(2000)
	require.NoError(t, err)
	assert.Equal(t, Vector(flat), m.Flatten())
}
