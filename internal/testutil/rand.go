// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand is a deterministic source of pseudo-random test inputs. The tests
// derive payloads and packet delivery orders from it; unlike math/rand,
// its output never changes across Go releases, so the decode traces that
// those inputs produce stay fixed.
//
// The source is an AES block cipher run in counter mode: block i of the
// keystream is the encryption of i under a key derived from the seed.
type Rand struct {
	block cipher.Block
	ctr   uint64
	buf   [aes.BlockSize]byte // Current keystream block
	pos   int                 // Consumed bytes of buf
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	block, _ := aes.NewCipher(key[:])
	return &Rand{block: block, pos: aes.BlockSize}
}

// Bytes returns the next n bytes of the keystream.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	for bb := b; len(bb) > 0; {
		if r.pos == len(r.buf) {
			var ctr [aes.BlockSize]byte
			binary.LittleEndian.PutUint64(ctr[:], r.ctr)
			r.ctr++
			r.block.Encrypt(r.buf[:], ctr[:])
			r.pos = 0
		}
		cnt := copy(bb, r.buf[r.pos:])
		r.pos += cnt
		bb = bb[cnt:]
	}
	return b
}

// Intn returns a value in [0, n). Test inputs need determinism rather than
// exact uniformity, so plain modular reduction suffices.
func (r *Rand) Intn(n int) int {
	return int(binary.LittleEndian.Uint64(r.Bytes(8)) % uint64(n))
}

// Perm returns a permutation of [0, n), used to shuffle packet delivery.
func (r *Rand) Perm(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		m[i], m[j] = m[j], m[i]
	}
	return m
}
