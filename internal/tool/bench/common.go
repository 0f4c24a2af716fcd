// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the behavior of erasure coding schemes with
// respect to encode speed, decode speed, and reception overhead.
package bench

import (
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/dsnet/fountain/internal/testutil"
)

// An Encoder encodes a payload into numPkts self-contained packets using
// chunks of chunkSize bytes. Rateless schemes emit exactly numPkts packets;
// fixed-rate schemes may emit fewer if numPkts exceeds what the scheme can
// represent.
type Encoder func(payload []byte, chunkSize, numPkts int) ([][]byte, error)

// A Decoder reconstructs a payload of payloadSize bytes from the packets
// that survived delivery, reporting how many packets it consumed.
type Decoder func(payloadSize, chunkSize int, pkts [][]byte) ([]byte, int, error)

// A Compressor wraps a writer with a compression stage, used to shrink a
// payload before erasure coding. A Decompressor reverses it.
type Compressor func(w io.Writer, lvl int) io.WriteCloser
type Decompressor func(r io.Reader) io.ReadCloser

var (
	Encoders      map[string]Encoder
	Decoders      map[string]Decoder
	Compressors   map[string]Compressor
	Decompressors map[string]Decompressor
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

func RegisterCompressor(name string, comp Compressor) {
	if Compressors == nil {
		Compressors = make(map[string]Compressor)
	}
	Compressors[name] = comp
}

func RegisterDecompressor(name string, decomp Decompressor) {
	if Decompressors == nil {
		Decompressors = make(map[string]Decompressor)
	}
	Decompressors[name] = decomp
}

// Drop simulates lossy delivery: it returns the surviving packets after
// uniformly dropping the given fraction, preserving relative order.
// The selection is deterministic for a given rand.
func Drop(pkts [][]byte, loss float64, rand *testutil.Rand) [][]byte {
	lost := make(map[int]bool)
	for _, i := range rand.Perm(len(pkts))[:int(loss*float64(len(pkts)))] {
		lost[i] = true
	}
	out := make([][]byte, 0, len(pkts))
	for i, p := range pkts {
		if !lost[i] {
			out = append(out, p)
		}
	}
	return out
}

// BenchmarkEncoder benchmarks a single encoder on the given payload and
// reports the result.
func BenchmarkEncoder(payload []byte, enc Encoder, chunkSize, numPkts int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := enc(payload, chunkSize, numPkts); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(payload)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on pre-encoded packets and
// reports the result.
func BenchmarkDecoder(payloadSize, chunkSize int, pkts [][]byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, _, err := dec(payloadSize, chunkSize, pkts); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(payloadSize))
		}
	})
}

// Overhead measures the reception efficiency of a scheme: it encodes the
// payload, drops the given loss fraction, decodes from the survivors, and
// returns consumed packets divided by the chunk count. Lower is better;
// 1.0 is the information-theoretic floor.
func Overhead(payload []byte, enc Encoder, dec Decoder, chunkSize, numPkts int, loss float64, rand *testutil.Rand) (float64, error) {
	pkts, err := enc(payload, chunkSize, numPkts)
	if err != nil {
		return 0, err
	}
	pkts = Drop(pkts, loss, rand)
	output, cnt, err := dec(len(payload), chunkSize, pkts)
	if err != nil {
		return 0, err
	}
	if string(output) != string(payload) {
		return 0, errMismatch
	}
	numChunks := (len(payload) + chunkSize - 1) / chunkSize
	return float64(cnt) / float64(numChunks), nil
}

var errMismatch = errors.New("mismatching payload after decode")
