// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package fountain is a collection of rateless erasure coding libraries.
package fountain

import "github.com/dsnet/fountain/internal/errors"

// Errors returned by this library satisfy the Error interface.
var _ Error = errors.Error{}

// Error is the wrapper type for errors specific to this library.
type Error interface {
	error

	// FountainError is a marker method to indicate that the error came
	// from this library.
	FountainError()

	// IsInvalid reports whether the error is a result of the user
	// misusing the API, such as providing a malformed packet or an
	// improperly sized destination.
	IsInvalid() bool

	// IsCorrupted reports whether the error is a result of reading an
	// input stream that does not carry a valid packet.
	IsCorrupted() bool
}
