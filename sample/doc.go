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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface.
// Uniform values on [0, 1) are produced by LCG (a linear congruential
// generator), Uniform (crypto/rand), UniformDet (a keyed salsa20
// stream) or Source (any golang.org/x/exp/rand source). They are
// turned into values from other distributions by InverseTransform
// and BoxMuller. Any sampler can in turn serve as the proposal of
// a Rejection sampler or as the base of a NormalTransform, so
// samplers compose into pipelines.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill vector or matrix structures with
// the desired random data.
package sample
