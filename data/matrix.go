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
	"fmt"

	"github.com/fentec-project/gomc/sample"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j]. Matrices of samples keep one sample per column.
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Rows are filled one after another.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	v, err := NewRandomVector(rows*cols, sampler)
	if err != nil {
		return nil, err
	}

	return reshape(v, rows, cols)
}

// NewRandomDetMatrix returns a new Matrix instance
// with random elements sampled by a pseudo-random
// number generator. Elements are sampled from [0, 1) and key
// determines the pseudo-random generator.
func NewRandomDetMatrix(rows, cols int, key *[32]byte) (Matrix, error) {
	v, err := NewRandomDetVector(rows*cols, key)
	if err != nil {
		return nil, err
	}

	return reshape(v, rows, cols)
}

// NewPairMatrix returns a 2 x len(pairs) matrix in which
// the i-th column holds the i-th pair, e.g. a batch returned
// by sample.BoxMuller.SamplePairs.
func NewPairMatrix(pairs [][2]float64) Matrix {
	res := Matrix{make(Vector, len(pairs)), make(Vector, len(pairs))}
	for i, p := range pairs {
		res[0][i] = p[0]
		res[1][i] = p[1]
	}

	return res
}

func reshape(v Vector, rows, cols int) (Matrix, error) {
	rowVecs := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		rowVecs[i] = NewVector(v[(i * cols):((i + 1) * cols)])
	}

	return NewMatrix(rowVecs)
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, fmt.Errorf("column index exceeds matrix dimensions")
	}

	column := make(Vector, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return column, nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)

	return mT
}

// Flatten returns the elements of m column by column, which
// for a matrix of samples is the order of generation.
func (m Matrix) Flatten() Vector {
	res := make(Vector, 0, m.Rows()*m.Cols())
	for _, col := range m.Transpose() {
		res = append(res, col...)
	}

	return res
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(float64) float64) Matrix {
	res := make(Matrix, len(m))

	for i, vi := range m {
		res[i] = vi.Apply(f)
	}

	return res
}

// CheckFinite checks whether all matrix elements are finite.
func (m Matrix) CheckFinite() error {
	for _, v := range m {
		if err := v.CheckFinite(); err != nil {
			return err
		}
	}

	return nil
}

// Dense returns a copy of m as a gonum dense matrix.
func (m Matrix) Dense() *mat.Dense {
	if m.Rows() == 0 || m.Cols() == 0 {
		return &mat.Dense{}
	}

	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i, row := range m {
		d.SetRow(i, row)
	}

	return d
}

// Correlation returns the sample (Pearson) correlation of
// rows i and j of matrix m.
// It returns error if i or j exceeds the number of m's rows.
func (m Matrix) Correlation(i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= m.Rows() || j >= m.Rows() {
		return 0, fmt.Errorf("row index exceeds matrix dimensions")
	}

	return stat.Correlation(m[i], m[j], nil), nil
}
