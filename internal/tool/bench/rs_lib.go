// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/reedsolomon"
)

// Reed-Solomon is the fixed-rate baseline: the packet count is decided up
// front and any numData survivors reconstruct. Each packet is framed as a
// 12-byte header (shard index, data shard count, total shard count)
// followed by the shard.

const rsHdrSize = 12

func init() {
	RegisterEncoder("rs", func(payload []byte, chunkSize, numPkts int) ([][]byte, error) {
		numData := (len(payload) + chunkSize - 1) / chunkSize
		numParity := numPkts - numData
		if numParity < 1 {
			numParity = 1
		}
		// The default Galois field caps the total shard count at 256.
		if numData+numParity > 256 {
			numParity = 256 - numData
		}
		enc, err := reedsolomon.New(numData, numParity)
		if err != nil {
			return nil, err
		}
		shards, err := enc.Split(payload)
		if err != nil {
			return nil, err
		}
		if err := enc.Encode(shards); err != nil {
			return nil, err
		}
		pkts := make([][]byte, len(shards))
		for i, s := range shards {
			b := make([]byte, rsHdrSize+len(s))
			binary.BigEndian.PutUint32(b[0:4], uint32(i))
			binary.BigEndian.PutUint32(b[4:8], uint32(numData))
			binary.BigEndian.PutUint32(b[8:12], uint32(len(shards)))
			copy(b[rsHdrSize:], s)
			pkts[i] = b
		}
		return pkts, nil
	})
	RegisterDecoder("rs", func(payloadSize, chunkSize int, pkts [][]byte) ([]byte, int, error) {
		if len(pkts) == 0 {
			if payloadSize == 0 {
				return nil, 0, nil
			}
			return nil, 0, io.ErrUnexpectedEOF
		}
		numData := int(binary.BigEndian.Uint32(pkts[0][4:8]))
		numTotal := int(binary.BigEndian.Uint32(pkts[0][8:12]))
		shards := make([][]byte, numTotal)
		var cnt int
		for _, b := range pkts {
			if cnt == numData {
				break // Any numData distinct shards reconstruct
			}
			i := int(binary.BigEndian.Uint32(b[0:4]))
			if shards[i] == nil {
				shards[i] = b[rsHdrSize:]
				cnt++
			}
		}
		enc, err := reedsolomon.New(numData, numTotal-numData)
		if err != nil {
			return nil, cnt, err
		}
		if err := enc.ReconstructData(shards); err != nil {
			return nil, cnt, err
		}
		var buf bytes.Buffer
		if err := enc.Join(&buf, shards, payloadSize); err != nil {
			return nil, cnt, err
		}
		return buf.Bytes(), cnt, nil
	})
}
