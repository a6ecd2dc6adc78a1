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
	"math"
	"strconv"

	"github.com/fentec-project/gomc/internal"
	"github.com/fentec-project/gomc/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of float64 elements, typically a batch
// of samples in the order in which they were generated.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec, err := sampler.Sample(len)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate random vector")
	}

	return NewVector(vec), nil
}

// NewRandomDetVector returns a new Vector instance
// with (deterministic) random elements sampled by a pseudo-random
// number generator. Elements are sampled from [0, 1) and key
// determines the pseudo-random generator.
func NewRandomDetVector(len int, key *[32]byte) (Vector, error) {
	sampler, err := sample.NewUniformDet(key)
	if err != nil {
		return nil, err
	}

	return NewRandomVector(len, sampler)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := range vec {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	return v.Apply(func(vi float64) float64 {
		return x * vi
	})
}

// AddScalar adds a given scalar x to all elements of vector v.
// The result is returned in a new Vector.
func (v Vector) AddScalar(x float64) Vector {
	return v.Apply(func(vi float64) float64 {
		return vi + x
	})
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of same length")
	}

	sum := make(Vector, len(v))
	for i, c := range v {
		sum[i] = c + other[i]
	}

	return sum, nil
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of same length")
	}

	sub := make(Vector, len(v))
	for i, c := range v {
		sub[i] = c - other[i]
	}

	return sub, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	prod := 0.0
	for i, c := range v {
		prod += c * other[i]
	}

	return prod, nil
}

// CheckFinite checks whether all vector elements are finite.
// It returns error if at least one element is NaN or infinite.
func (v Vector) CheckFinite() error {
	if i := internal.FirstNonFinite(v); i >= 0 {
		return errors.Wrapf(sample.ErrDomain, "coordinate %d of a vector is %v", i, v[i])
	}

	return nil
}

// CheckBound checks whether the absolute values of all vector elements
// are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (v Vector) CheckBound(bound float64) error {
	for _, c := range v {
		if !(math.Abs(c) < bound) {
			return fmt.Errorf("all coordinates of a vector should be smaller than bound")
		}
	}

	return nil
}

// Mean returns the sample mean of the elements of v.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance of the elements of v.
// It is NaN for vectors with less than two elements.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// StdDev returns the sample standard deviation of the elements of v.
func (v Vector) StdDev() float64 {
	return stat.StdDev(v, nil)
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := ""
	for _, yi := range v {
		vStr = vStr + " " + strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return vStr
}
