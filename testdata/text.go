// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates text.txt. This test file approximates English prose so that
// the pre-compression stage of the benchmark tool has realistic input:
// word frequencies follow a rough Zipf curve and sentences have plausible
// lengths. Purely random data would make every compressor look useless.
package main

import "io/ioutil"
import "math/rand"

const (
	name = "text.txt"
	size = 1 << 18
)

var words = []string{
	"the", "of", "and", "a", "to", "in", "is", "was", "he", "for",
	"it", "with", "as", "his", "on", "be", "at", "by", "had", "not",
	"whale", "ship", "sea", "captain", "harpoon", "deck", "mast", "sail",
	"voyage", "ocean", "crew", "boat", "water", "wind", "storm", "wave",
}

func main() {
	var b []byte
	r := rand.New(rand.NewSource(0))

	randWord := func() string {
		// Favor early entries to approximate a Zipf distribution.
		i := r.Intn(len(words))
		j := r.Intn(len(words))
		if j < i {
			i = j
		}
		return words[i]
	}

	for len(b) < size {
		n := 5 + r.Intn(15) // Words per sentence
		for i := 0; i < n; i++ {
			w := randWord()
			if i == 0 {
				b = append(b, w[0]-'a'+'A')
				w = w[1:]
			}
			b = append(b, w...)
			if i < n-1 {
				b = append(b, ' ')
			}
		}
		b = append(b, '.', ' ')
	}

	if err := ioutil.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
