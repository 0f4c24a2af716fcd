// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

import "sort"

// packetDraws reproduces the raw chunk index draws for the packet with the
// given seed. A generator seeded with the packet seed yields the degree
// less one as its first value; its second value, in [0, numChunks), seeds
// the nested generator that the index draws come from. Both sides of a
// transfer run this exact derivation, so the packet needs to carry nothing
// but the seed.
//
// Draws are taken with replacement. A chunk drawn twice cancels itself
// under XOR, so duplicates merely waste degree; foldDraws computes the set
// of chunks that actually survive into the packet data.
func packetDraws(seed uint32, numChunks int) []int {
	var rng, sub randGen
	rng.init(seed)
	d := rng.Intn(numChunks) + 1
	sub.init(uint32(rng.Intn(numChunks)))

	draws := make([]int, d)
	for i := range draws {
		draws[i] = sub.Intn(numChunks)
	}
	return draws
}

// foldDraws reduces raw draws to the effective chunk set: the indices drawn
// an odd number of times, in ascending order. The result may be empty if
// every draw cancelled.
func foldDraws(draws []int) []int {
	odd := make(map[int]bool, len(draws))
	for _, i := range draws {
		odd[i] = !odd[i]
	}
	idx := make([]int, 0, len(odd))
	for i, o := range odd {
		if o {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	return idx
}
