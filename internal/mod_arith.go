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

package internal

import "math/bits"

// MulAddMod calculates (a*x + c) mod m without overflow.
// All arguments must be non-negative and m must be positive.
func MulAddMod(a, x, c, m uint64) uint64 {
	hi, lo := bits.Mul64(a, x)
	lo, carry := bits.Add64(lo, c, 0)
	hi += carry

	return bits.Rem64(hi, lo, m)
}

// Ratio returns x/m as a float64 in [0, 1), for 0 <= x < m.
// When rounding would produce 1, the largest float64 below 1
// is returned instead.
func Ratio(x, m uint64) float64 {
	z := float64(x) / float64(m)
	if z >= 1 {
		return oneMinusEps
	}

	return z
}

var oneMinusEps = 1 - 0x1p-53
