// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

import (
	"bytes"
	"testing"
)

func TestChunkCount(t *testing.T) {
	var vectors = []struct {
		payloadSize uint64
		chunkSize   uint32
		output      int
	}{
		{0, 4, 0},
		{1, 4, 1},
		{10, 10, 1},
		{10, 1, 10},
		{11, 4, 3},
		{16, 4, 4},
		{113, 5, 23},
		{10, 0, 0},
	}

	for i, v := range vectors {
		if output := ChunkCount(v.payloadSize, v.chunkSize); output != v.output {
			t.Errorf("test %d, mismatching count: ChunkCount(%d, %d) = %d, want %d",
				i, v.payloadSize, v.chunkSize, output, v.output)
		}
	}
}

func TestChunkView(t *testing.T) {
	buf := []byte("abcdefghijk")
	cv := chunkView{buf: buf, size: 4}

	if got := cv.numChunks(); got != 3 {
		t.Fatalf("mismatching count: numChunks() = %d, want 3", got)
	}
	for i, want := range []string{"abcd", "efgh", "ijk"} {
		if got := cv.read(i); string(got) != want {
			t.Errorf("chunk %d, mismatching bytes: read() = %q, want %q", i, got, want)
		}
		if got, want := cv.chunkLen(i), len(want); got != want {
			t.Errorf("chunk %d, mismatching length: chunkLen() = %d, want %d", i, got, want)
		}
	}

	// The returned chunk is a copy; mutating it must not affect the region.
	b := cv.read(0)
	b[0] = 'z'
	if buf[0] != 'a' {
		t.Errorf("read() aliases the underlying region")
	}

	cv.write(1, []byte("EFGH"))
	if string(buf) != "abcdEFGHijk" {
		t.Errorf("mismatching bytes after write: %q, want %q", buf, "abcdEFGHijk")
	}

	// Writes past the end of the region are truncated.
	cv.write(2, []byte("IJKL"))
	if string(buf) != "abcdEFGHIJK" {
		t.Errorf("mismatching bytes after write: %q, want %q", buf, "abcdEFGHIJK")
	}
}

func TestChunkViewXor(t *testing.T) {
	cv := chunkView{buf: []byte("abcdefgh"), size: 4}
	x := []byte{0, 0, 0, 0}
	cv.xorChunk(x, 0)
	cv.xorChunk(x, 1)
	if want := xorBytes([]byte("abcd"), []byte("efgh")); !bytes.Equal(x, want) {
		t.Errorf("mismatching bytes: xorChunk() = %x, want %x", x, want)
	}

	// Chunk bytes beyond len(x) are ignored.
	x = []byte{0xff}
	cv.xorChunk(x, 1)
	if want := byte(0xff ^ 'e'); x[0] != want {
		t.Errorf("mismatching byte: %#02x, want %#02x", x[0], want)
	}
}
