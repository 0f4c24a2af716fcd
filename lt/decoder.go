// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

import (
	"io"

	"github.com/dsnet/fountain/internal/errors"
)

// preparedPacket is a packet whose chunk set is known but which still has
// two or more unresolved chunks. The data is kept as received; chunks that
// resolve later are folded out only when the packet finally resolves, by
// re-evaluating the set against the resolved chunks at that time.
type preparedPacket struct {
	indices []int  // Effective chunk set, ascending
	data    []byte // Original packet data (owned copy)
}

// Decoder reconstructs a payload from encoded packets using iterative
// peeling. Packets arrive in any order and any subset large enough to
// cover the payload completes it; the Decoder itself has no notion of
// failure. If the packet source dries up early, the destination is simply
// left partially populated, which the caller observes through Done and
// NumResolved.
//
// The destination region is owned by the caller; the Decoder borrows
// exclusive mutable access for the duration of decoding. Each resolved
// chunk is written exactly once and never overwritten. Not safe for
// concurrent use.
type Decoder struct {
	NumPackets int64 // Total number of packets accepted by Push

	dst         chunkView
	payloadSize uint64
	inited      bool // Transfer parameters are known
	resolved    []bool
	numResolved int
	deferred    []preparedPacket
}

type DecoderConfig struct {
	// PayloadSize is the expected payload size and ChunkSize the expected
	// chunk size. If both are zero, the transfer parameters are adopted
	// from the first packet pushed; packets disagreeing with them are
	// rejected either way. A zero PayloadSize alongside a non-zero
	// ChunkSize declares an empty payload.
	PayloadSize uint64
	ChunkSize   uint32

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// NewDecoder creates a new Decoder writing into dst, which must be at
// least as long as the payload being transferred.
func NewDecoder(dst []byte, conf *DecoderConfig) (*Decoder, error) {
	rd := new(Decoder)
	var payloadSize uint64
	var chunkSize uint32
	if conf != nil {
		payloadSize, chunkSize = conf.PayloadSize, conf.ChunkSize
	}
	rd.Reset(dst)
	if payloadSize > 0 || chunkSize > 0 {
		if err := rd.init(payloadSize, chunkSize); err != nil {
			return nil, err
		}
	}
	return rd, nil
}

// Reset discards all decoding state and starts over against a new
// destination region. Transfer parameters are re-adopted from the next
// packet pushed.
func (rd *Decoder) Reset(dst []byte) {
	*rd = Decoder{dst: chunkView{buf: dst}}
}

func (rd *Decoder) init(payloadSize uint64, chunkSize uint32) error {
	if chunkSize == 0 {
		return errorf(errors.Invalid, "zero chunk size")
	}
	if payloadSize > uint64(len(rd.dst.buf)) {
		return errorf(errors.Invalid, "destination too short: %d < %d", len(rd.dst.buf), payloadSize)
	}
	rd.payloadSize = payloadSize
	rd.dst.buf = rd.dst.buf[:payloadSize]
	rd.dst.size = chunkSize
	rd.resolved = make([]bool, rd.dst.numChunks())
	rd.inited = true
	return nil
}

// Done reports whether every chunk of the payload has been resolved.
func (rd *Decoder) Done() bool {
	if !rd.inited {
		// Until a packet announces the transfer parameters, the only
		// payload known to be complete is an empty one.
		return len(rd.dst.buf) == 0
	}
	return rd.numResolved == len(rd.resolved)
}

// NumResolved returns the number of chunks recovered so far.
func (rd *Decoder) NumResolved() int {
	return rd.numResolved
}

// NumDeferred returns the number of packets held for later resolution.
func (rd *Decoder) NumDeferred() int {
	return len(rd.deferred)
}

// Push feeds one packet to the decoder. A packet that disagrees with the
// transfer parameters, or whose data exceeds the chunk size, is rejected
// with an Invalid error and leaves the decoder state untouched; the caller
// decides whether to keep pushing. Redundant packets are accepted and
// discarded.
func (rd *Decoder) Push(p Packet) (err error) {
	defer errors.Recover(&err)
	rd.verify(p)
	rd.NumPackets++
	if rd.Done() {
		return nil
	}

	idx := foldDraws(packetDraws(p.Seed, rd.dst.numChunks()))
	var unknown int
	for _, j := range idx {
		if !rd.resolved[j] {
			unknown++
		}
	}
	switch {
	case unknown == 0:
		// Redundant: every chunk in the set is already resolved (or the
		// set cancelled entirely), so the packet carries no information.
	case unknown == 1:
		rd.resolve(idx, p.Data)
		rd.cascade()
	default:
		rd.deferred = append(rd.deferred, preparedPacket{
			indices: idx,
			data:    append([]byte(nil), p.Data...),
		})
	}
	return nil
}

// verify checks p against the transfer parameters, adopting them from p if
// this is the first packet. It panics with an Invalid error on mismatch.
func (rd *Decoder) verify(p Packet) {
	if uint32(len(p.Data)) > p.ChunkSize {
		panicf(errors.Invalid, "data exceeds chunk size: %d > %d", len(p.Data), p.ChunkSize)
	}
	if !rd.inited {
		if err := rd.init(p.PayloadSize, p.ChunkSize); err != nil {
			errors.Panic(err)
		}
	}
	if p.PayloadSize != rd.payloadSize {
		panicf(errors.Invalid, "mismatching payload size: %d != %d", p.PayloadSize, rd.payloadSize)
	}
	if p.ChunkSize != rd.dst.size {
		panicf(errors.Invalid, "mismatching chunk size: %d != %d", p.ChunkSize, rd.dst.size)
	}
}

// resolve recovers the single unresolved chunk of the given set by folding
// every resolved chunk of the set out of data, and writes it to the
// destination. The caller guarantees exactly one unresolved chunk.
func (rd *Decoder) resolve(indices []int, data []byte) {
	x := make([]byte, len(data))
	copy(x, data)
	i := -1
	for _, j := range indices {
		if rd.resolved[j] {
			rd.dst.xorChunk(x, j)
		} else {
			i = j
		}
	}
	rd.dst.write(i, x)
	rd.resolved[i] = true
	rd.numResolved++
}

// cascade sweeps the deferred pool until a full pass resolves nothing.
// Each pass re-partitions every deferred packet against the current
// resolved set: packets down to one unresolved chunk resolve and are
// removed, packets down to zero are dropped as redundant.
func (rd *Decoder) cascade() {
	for progress := true; progress; {
		progress = false
		keep := rd.deferred[:0]
		for _, q := range rd.deferred {
			var unknown int
			for _, j := range q.indices {
				if !rd.resolved[j] {
					unknown++
				}
			}
			switch {
			case unknown == 0:
				// Redundant now; drop.
			case unknown == 1:
				rd.resolve(q.indices, q.data)
				progress = true
			default:
				keep = append(keep, q)
			}
		}
		rd.deferred = keep
	}
}

// Decode drains packets from r into dst until the payload is complete or
// the stream is exhausted, and returns the number of packets consumed.
// If the stream ends first, the error is io.ErrUnexpectedEOF and dst is
// left partially populated. Errors from r and from malformed packets are
// returned as is.
func Decode(dst []byte, r PacketReader) (int64, error) {
	rd, err := NewDecoder(dst, nil)
	if err != nil {
		return 0, err
	}
	for !rd.Done() {
		p, err := r.ReadPacket()
		if err == io.EOF {
			return rd.NumPackets, io.ErrUnexpectedEOF
		}
		if err != nil {
			return rd.NumPackets, err
		}
		if err := rd.Push(p); err != nil {
			return rd.NumPackets, err
		}
	}
	return rd.NumPackets, nil
}
