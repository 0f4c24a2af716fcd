// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Encoder emits an unbounded stream of encoded packets for a single source
// payload. The stream is lazy: each call to ReadPacket computes exactly one
// packet. Two Encoders over the same payload, seed, and chunk size emit
// identical streams.
//
// The source region is only read, never written, and must not change while
// the Encoder is in use. Not safe for concurrent use.
type Encoder struct {
	NumPackets int64 // Total number of packets emitted by ReadPacket

	src  chunkView
	rng  randGen // Stream of per-packet seeds
	seed uint32
}

type EncoderConfig struct {
	// ChunkSize is the size of each source chunk, and bounds the data size
	// of every packet. It must match on both sides of a transfer; each
	// packet carries it. If zero, DefaultChunkSize is used.
	ChunkSize uint32

	// Seed is the top-level seed that the per-packet seeds derive from.
	// It is only honored when HasSeed is set; otherwise a seed is drawn
	// from crypto/rand.
	Seed    uint32
	HasSeed bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// NewEncoder creates a new Encoder for the given source payload.
func NewEncoder(src []byte, conf *EncoderConfig) (*Encoder, error) {
	chunkSize := uint32(DefaultChunkSize)
	var seed uint32
	var hasSeed bool
	if conf != nil {
		if conf.ChunkSize > 0 {
			chunkSize = conf.ChunkSize
		}
		seed, hasSeed = conf.Seed, conf.HasSeed
	}
	if !hasSeed {
		var b [4]byte
		if _, err := rand.Read(b[:]); err != nil {
			return nil, err
		}
		seed = binary.BigEndian.Uint32(b[:])
	}

	we := new(Encoder)
	we.seed = seed
	we.src.size = chunkSize
	we.Reset(src)
	return we, nil
}

// Reset restarts the packet stream from the beginning over a new source
// payload, keeping the configured seed and chunk size.
func (we *Encoder) Reset(src []byte) {
	we.src.buf = src
	we.rng.init(we.seed)
	we.NumPackets = 0
}

// Seed returns the top-level seed driving the stream, whether configured
// or randomly drawn.
func (we *Encoder) Seed() uint32 {
	return we.seed
}

// ReadPacket computes and returns the next packet of the stream. The stream
// is infinite for a non-empty payload; for an empty payload it returns
// io.EOF immediately.
//
// Each packet consumes one per-packet seed from the top-level generator.
// The seed then determines the packet's degree and chunk set; see
// packetDraws for the exact derivation.
func (we *Encoder) ReadPacket() (Packet, error) {
	k := we.src.numChunks()
	if k == 0 {
		return Packet{}, io.EOF
	}

	seed := we.rng.Uint32()
	draws := packetDraws(seed, k)
	bufs := make([][]byte, len(draws))
	for i, j := range draws {
		bufs[i] = we.src.read(j)
	}

	we.NumPackets++
	return Packet{
		Seed:        seed,
		PayloadSize: uint64(len(we.src.buf)),
		ChunkSize:   we.src.size,
		Data:        combine(bufs),
	}, nil
}
