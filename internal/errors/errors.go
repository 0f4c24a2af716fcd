// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate errors.
//
// In idiomatic Go, it is an anti-pattern to use panics as a form of error
// passing. However, the decoder internals process each packet through
// several layers of validation and resolution, and threading explicit error
// returns through every layer bloats the logic with little benefit.
// As such, the internals use panics sparingly as a form of non-local exit,
// with the restriction that every exported entry point converts the panic
// back into an ordinary error with Recover.
package errors

import "strings"

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	Internal

	// Invalid indicates that this error is due to the user misusing the
	// API and is not the fault of the input stream.
	Invalid

	// Corrupted indicates that the input stream is corrupted.
	Corrupted

	// Closed indicates that the handler is closed.
	Closed
)

var codeMap = map[int]string{
	Unknown:   "unknown error",
	Internal:  "internal error",
	Invalid:   "invalid argument",
	Corrupted: "corrupted input",
	Closed:    "closed handler",
}

// Error is the wrapper type for errors specific to this library.
type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

func (e Error) FountainError()    {}
func (e Error) IsInternal() bool  { return e.Code == Internal }
func (e Error) IsInvalid() bool   { return e.Code == Invalid }
func (e Error) IsCorrupted() bool { return e.Code == Corrupted }
func (e Error) IsClosed() bool    { return e.Code == Closed }

func IsInternal(err error) bool  { return matchError(err, Internal) }
func IsInvalid(err error) bool   { return matchError(err, Invalid) }
func IsCorrupted(err error) bool { return matchError(err, Corrupted) }
func IsClosed(err error) bool    { return matchError(err, Closed) }

func matchError(err error, codes ...int) bool {
	if err, ok := err.(Error); ok {
		for _, c := range codes {
			if err.Code == c {
				return true
			}
		}
	}
	return false
}

// panicError distinguishes errors raised by Panic from stray panics so that
// Recover does not swallow genuine bugs.
type panicError struct{ error }

// Panic raises err as a non-local exit, to be caught by a deferred Recover.
func Panic(err error) {
	panic(panicError{err})
}

// Recover converts a panic raised by Panic back into an ordinary error.
// All other panics propagate.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case panicError:
		*err = ex.error
	default:
		panic(ex)
	}
}
