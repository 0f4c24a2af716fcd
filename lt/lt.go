// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lt implements the Luby Transform rateless erasure code.
package lt

import (
	"fmt"

	"github.com/dsnet/fountain/internal/errors"
)

// A Luby Transform code turns a payload of K equal-sized chunks into an
// unbounded stream of encoded packets. Each packet is the XOR of a
// pseudo-randomly chosen set of source chunks; the choice is derived
// entirely from a 32-bit seed carried in the packet, so a receiver that
// sees the seed reproduces the set without any side channel. Any
// sufficiently large subset of packets, in any order, reconstructs the
// payload through iterative peeling: a packet with a single unknown chunk
// reveals that chunk, which may reduce other packets to a single unknown,
// and so on until the payload is complete.
//
// Encoding stack per packet:
//	Degree draw          d ∈ [1, K]
//	Chunk index draws    d values in [0, K)
//	XOR combine          data = chunk[i0] ⊕ chunk[i1] ⊕ ... ⊕ chunk[i(d-1)]
//
// The degree is drawn uniformly. The Robust Soliton Distribution achieves
// lower reception overhead, but both peers of a transfer must use the same
// distribution, so changing it is a wire-breaking decision.
//
// References:
//	https://en.wikipedia.org/wiki/Luby_transform_code
//	M. Luby, "LT Codes", FOCS 2002

// DefaultChunkSize is the chunk size used when the configuration does not
// specify one. It should be chosen to fit the transport MTU.
const DefaultChunkSize = 1 << 10

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "lt", Msg: fmt.Sprintf(f, a...)}
}

func panicf(c int, f string, a ...interface{}) {
	errors.Panic(errorf(c, f, a...))
}

// ChunkCount returns the number of chunks that a payload of payloadSize
// bytes splits into using chunks of chunkSize bytes. The final chunk may be
// shorter than chunkSize. A zero chunkSize yields zero chunks.
func ChunkCount(payloadSize uint64, chunkSize uint32) int {
	if chunkSize == 0 {
		return 0
	}
	return int((payloadSize + uint64(chunkSize) - 1) / uint64(chunkSize))
}
