// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package lt

import (
	"bytes"
	"encoding/binary"

	"github.com/dsnet/fountain/lt"
)

// Fuzz round-trips the input through the codec under a packet budget.
// The first four bytes pick the seed and the fifth the chunk size, so the
// fuzzer explores transfer geometries as well as payloads.
func Fuzz(data []byte) int {
	if len(data) < 5 {
		return -1
	}
	seed := binary.BigEndian.Uint32(data[:4])
	chunkSize := uint32(data[4]%63) + 1
	payload := data[5:]

	we, err := lt.NewEncoder(payload, &lt.EncoderConfig{
		ChunkSize: chunkSize, Seed: seed, HasSeed: true,
	})
	if err != nil {
		panic(err)
	}
	dst := make([]byte, len(payload))
	rd, err := lt.NewDecoder(dst, &lt.DecoderConfig{
		PayloadSize: uint64(len(payload)), ChunkSize: chunkSize,
	})
	if err != nil {
		panic(err)
	}

	numChunks := lt.ChunkCount(uint64(len(payload)), chunkSize)
	budget := 64*numChunks + 64
	for i := 0; i < budget && !rd.Done(); i++ {
		p, err := we.ReadPacket()
		if err != nil {
			panic(err)
		}
		if err := rd.Push(p); err != nil {
			panic(err)
		}
	}
	if !rd.Done() {
		return 0 // Unlucky degree sequence; not an error
	}
	if !bytes.Equal(dst, payload) {
		panic("mismatching payload after decode")
	}
	return 1 // Favor inputs that decode within budget
}
