// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lt

import (
	"reflect"
	"testing"
)

// The vectors below are the reference output of the pinned generator; they
// match java.util.Random seeded with the same values. Any change that
// breaks them breaks wire compatibility.
func TestRandVectors(t *testing.T) {
	var vectors = []struct {
		seed   uint32
		bound  int
		output []int
	}{{
		seed: 42, bound: 100,
		output: []int{30, 63, 48, 84, 70, 25, 5, 18},
	}, {
		seed: 14, bound: 4,
		output: []int{2, 2, 3, 2, 1, 2},
	}, {
		seed: 0, bound: 16,
		output: []int{11, 13, 3, 9, 10, 4, 8, 1},
	}, {
		seed: 7, bound: 7,
		output: []int{3, 5, 4, 2, 5, 6, 5, 0},
	}}

	for i, v := range vectors {
		var rng randGen
		rng.init(v.seed)
		output := make([]int, len(v.output))
		for j := range output {
			output[j] = rng.Intn(v.bound)
		}
		if !reflect.DeepEqual(output, v.output) {
			t.Errorf("test %d, mismatching sequence: Intn(%d) = %v, want %v", i, v.bound, output, v.output)
		}
	}
}

func TestRandUint32(t *testing.T) {
	want := []uint32{3124862261, 234785527, 2934422497, 205897768}
	var rng randGen
	rng.init(42)
	for i, w := range want {
		if got := rng.Uint32(); got != w {
			t.Errorf("value %d, mismatching output: Uint32() = %d, want %d", i, got, w)
		}
	}
}

func TestRandRestart(t *testing.T) {
	for _, seed := range []uint32{0, 1, 14, 42, 1<<32 - 1} {
		var r1, r2 randGen
		r1.init(seed)
		r2.init(seed)
		for i := 0; i < 1000; i++ {
			if v1, v2 := r1.Uint32(), r2.Uint32(); v1 != v2 {
				t.Fatalf("seed %d, diverging sequences at %d: %d != %d", seed, i, v1, v2)
			}
		}

		// Restarting must replay the identical sequence.
		r1.init(seed)
		prefix := []uint32{r1.Uint32(), r1.Uint32(), r1.Uint32()}
		r1.init(seed)
		for i, w := range prefix {
			if got := r1.Uint32(); got != w {
				t.Fatalf("seed %d, mismatching replay at %d: %d != %d", seed, i, got, w)
			}
		}
	}
}

func TestRandBounds(t *testing.T) {
	var rng randGen
	rng.init(99)
	for _, bound := range []int{1, 2, 3, 7, 16, 23, 100} {
		for i := 0; i < 1000; i++ {
			if v := rng.Intn(bound); v < 0 || v >= bound {
				t.Fatalf("Intn(%d) = %d, out of range", bound, v)
			}
		}
	}
}
