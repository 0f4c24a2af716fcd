// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

import (
	"encoding/binary"

	"github.com/dsnet/fountain/internal/errors"
)

// hdrSize is the serialized size of the packet fields preceding the data.
const hdrSize = 4 + 8 + 4

// Packet is a single encoded block. Its data is the XOR of the source
// chunks selected by Seed; the selection is reproduced on the receiving
// side from Seed alone. PayloadSize and ChunkSize describe the transfer the
// packet belongs to and must be identical across all packets of a transfer.
type Packet struct {
	Seed        uint32 // Seed that reproduces the packet's chunk set
	PayloadSize uint64 // Total size of the source payload
	ChunkSize   uint32 // Chunk size the payload was split with
	Data        []byte // XOR of the selected source chunks
}

// MarshalBinary serializes the packet as a 16-byte big-endian header
// (seed, payload size, chunk size) followed by the data. Framing the result
// on a wire is the caller's responsibility.
func (p Packet) MarshalBinary() ([]byte, error) {
	if p.ChunkSize == 0 {
		return nil, errorf(errors.Invalid, "zero chunk size")
	}
	if uint32(len(p.Data)) > p.ChunkSize {
		return nil, errorf(errors.Invalid, "data exceeds chunk size: %d > %d", len(p.Data), p.ChunkSize)
	}
	b := make([]byte, hdrSize+len(p.Data))
	binary.BigEndian.PutUint32(b[0:4], p.Seed)
	binary.BigEndian.PutUint64(b[4:12], p.PayloadSize)
	binary.BigEndian.PutUint32(b[12:16], p.ChunkSize)
	copy(b[hdrSize:], p.Data)
	return b, nil
}

// UnmarshalBinary deserializes a packet produced by MarshalBinary.
// The data is copied out of b.
func (p *Packet) UnmarshalBinary(b []byte) error {
	if len(b) < hdrSize {
		return errorf(errors.Corrupted, "truncated packet header: %d bytes", len(b))
	}
	seed := binary.BigEndian.Uint32(b[0:4])
	payloadSize := binary.BigEndian.Uint64(b[4:12])
	chunkSize := binary.BigEndian.Uint32(b[12:16])
	if chunkSize == 0 {
		return errorf(errors.Corrupted, "zero chunk size")
	}
	if uint32(len(b)-hdrSize) > chunkSize {
		return errorf(errors.Corrupted, "data exceeds chunk size: %d > %d", len(b)-hdrSize, chunkSize)
	}
	*p = Packet{
		Seed:        seed,
		PayloadSize: payloadSize,
		ChunkSize:   chunkSize,
		Data:        append([]byte(nil), b[hdrSize:]...),
	}
	return nil
}

// PacketReader is the interface for pulling packets off an encoded stream.
// ReadPacket returns io.EOF when the stream is exhausted.
type PacketReader interface {
	ReadPacket() (Packet, error)
}
