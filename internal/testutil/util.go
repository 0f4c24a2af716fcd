// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"encoding/hex"
	"io"
	"io/ioutil"
)

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFile returns the first n bytes of the named file, or the whole file
// if n is negative. A file shorter than n is replicated until it fills
// n bytes, with every copy XORed by an incrementing mask so that a
// pre-compression stage sees no exact whole-file repeats.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return input, nil
	}
	if len(input) >= n {
		return input[:n], nil
	}
	if len(input) == 0 {
		return nil, io.ErrNoProgress // Cannot replicate an empty file
	}

	output := make([]byte, n)
	var mask byte
	for i := range output {
		j := i % len(input)
		output[i] = input[j] ^ mask
		if j == len(input)-1 {
			mask++
		}
	}
	return output, nil
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}

// ResizeData resizes the input to be exactly n bytes long. If the input is
// longer than n, then it will be truncated. If the input is shorter than n,
// then it will be replicated until it matches n.
func ResizeData(input []byte, n int) []byte {
	if len(input) >= n {
		return input[:n]
	}
	if len(input) == 0 {
		return make([]byte, n)
	}

	output := make([]byte, n)
	for i := range output {
		output[i] = input[i%len(input)]
	}
	return output
}
