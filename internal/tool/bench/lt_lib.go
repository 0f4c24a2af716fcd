// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/dsnet/fountain/lt"
)

func init() {
	RegisterEncoder("lt", func(payload []byte, chunkSize, numPkts int) ([][]byte, error) {
		we, err := lt.NewEncoder(payload, &lt.EncoderConfig{
			ChunkSize: uint32(chunkSize), Seed: 0, HasSeed: true,
		})
		if err != nil {
			return nil, err
		}
		pkts := make([][]byte, 0, numPkts)
		for i := 0; i < numPkts; i++ {
			p, err := we.ReadPacket()
			if err == io.EOF {
				break // Empty payload
			}
			if err != nil {
				return nil, err
			}
			b, err := p.MarshalBinary()
			if err != nil {
				return nil, err
			}
			pkts = append(pkts, b)
		}
		return pkts, nil
	})
	RegisterDecoder("lt", func(payloadSize, chunkSize int, pkts [][]byte) ([]byte, int, error) {
		dst := make([]byte, payloadSize)
		rd, err := lt.NewDecoder(dst, nil)
		if err != nil {
			return nil, 0, err
		}
		var cnt int
		for _, b := range pkts {
			if rd.Done() {
				break
			}
			var p lt.Packet
			if err := p.UnmarshalBinary(b); err != nil {
				return nil, cnt, err
			}
			if err := rd.Push(p); err != nil {
				return nil, cnt, err
			}
			cnt++
		}
		if !rd.Done() {
			return nil, cnt, io.ErrUnexpectedEOF
		}
		return dst, cnt, nil
	})
}
