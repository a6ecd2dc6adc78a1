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
	"github.com/pkg/errors"
)

// Errors returned by samplers. They are wrapped with additional
// context, so they should be matched with errors.Is or errors.Cause.
var (
	// ErrConfiguration is returned by constructors when they
	// are given invalid parameters. It is never returned by Sample.
	ErrConfiguration = errors.New("invalid sampler configuration")
	// ErrDomain is returned when a density, an inverse CDF or an
	// upstream sampler yields a value outside of its domain.
	ErrDomain = errors.New("value outside of the admissible domain")
	// ErrNonTermination is returned when a sampler gives up after
	// exhausting its maximal number of attempts.
	ErrNonTermination = errors.New("maximal number of attempts exceeded")
	// ErrInvalidCount is returned when a negative number of
	// samples is requested.
	ErrInvalidCount = errors.New("number of samples should be non-negative")
)

func configErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

func domainErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDomain, format, args...)
}

func nonTerminationErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNonTermination, format, args...)
}

func checkCount(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidCount, "requested %d samples", n)
	}

	return nil
}
