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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// detBlockLen is the number of keystream bytes generated per nonce.
const detBlockLen = 512

// UniformDet samples (deterministic) pseudo-random values from
// the interval [0, 1). Values are derived from a salsa20 keystream,
// so the same key always yields the same sequence. The sequence
// continues across calls of Sample.
type UniformDet struct {
	key *[32]byte
	// counter is used as the nonce of the next keystream block
	counter uint64
	buf     []byte
}

// NewUniformDet returns an instance of the UniformDet sampler.
// The key determines the pseudo-random generator.
func NewUniformDet(key *[32]byte) (*UniformDet, error) {
	if key == nil {
		return nil, configErrorf("key should not be nil")
	}

	k := *key
	return &UniformDet{
		key: &k,
	}, nil
}

// Sample returns the next n values of the keystream,
// mapped to [0, 1).
func (u *UniformDet) Sample(n int) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}

	needed := 8 * n
	for len(u.buf) < needed {
		u.buf = append(u.buf, u.nextBlock()...)
	}
	res := bytesToUnit(u.buf[:needed])
	u.buf = u.buf[needed:]

	return res, nil
}

func (u *UniformDet) nextBlock() []byte {
	in := make([]byte, detBlockLen) // input is initialized to zeros
	out := make([]byte, detBlockLen)
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, u.counter)
	u.counter++

	salsa20.XORKeyStream(out, in, nonce, u.key)

	return out
}
