// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, it checks whether
// numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Float is a float number type constraint.
type Float interface {
	~float32 | ~float64
}

// Equal asserts that the given two numbers are about equal
// using a default tolerance of 1e-5 relative to the size of
// the expected value.
func Equal[T Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	tol := max(abs(expected)*1e-5, 1e-6)
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol), msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal
// using the given absolute tolerance value.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
