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
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Uniform samples random values from the interval [0, 1)
// using the operating system's cryptographically secure
// random number generator.
type Uniform struct{}

// NewUniform returns an instance of the Uniform sampler.
func NewUniform() *Uniform {
	return &Uniform{}
}

// Sample returns n values uniformly distributed on [0, 1).
// Each value carries 53 random bits.
func (u *Uniform) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	randBytes := make([]byte, 8*n)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.Wrap(err, "error while sampling")
	}

	return bytesToUnit(randBytes), nil
}

// bytesToUnit converts each 8 bytes of b into a value from [0, 1)
// using the 53 most significant bits.
func bytesToUnit(b []byte) []float64 {
	res := make([]float64, len(b)/8)
	for i := range res {
		r := binary.LittleEndian.Uint64(b[8*i : 8*(i+1)])
		res[i] = float64(r>>11) * 0x1p-53
	}

	return res
}
