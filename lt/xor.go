// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

// xorBytes returns the bitwise XOR of a and b without mutating either.
// The result is as long as the longer input; the shorter input is treated
// as if zero-extended. Since x⊕0 = x, the tail of the longer input passes
// through unchanged.
func xorBytes(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	c := make([]byte, len(a))
	copy(c, a)
	for i, x := range b {
		c[i] ^= x
	}
	return c
}

// combine folds a sequence of byte slices under XOR and returns the result,
// which is as long as the longest input. It returns nil for an empty
// sequence. XOR is commutative and associative, so the fold order does not
// matter. Only the output slice is allocated.
func combine(bufs [][]byte) []byte {
	if len(bufs) == 0 {
		return nil
	}
	var n int
	for _, b := range bufs {
		if len(b) > n {
			n = len(b)
		}
	}
	c := make([]byte, n)
	copy(c, bufs[0])
	for _, b := range bufs[1:] {
		for i, x := range b {
			c[i] ^= x
		}
	}
	return c
}
