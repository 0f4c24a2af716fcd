// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare the behavior of multiple erasure coding
// schemes. Individual schemes are referred to by short names.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-schemes lt,rs               \
//		-sizes   1e4,1e5,1e6         \
//		-chunks  1024                \
//		-losses  0.0,0.1,0.3         \
//		-file    ../../../testdata/text.txt \
//		-precomp fl
//
//	BENCHMARK: overhead
//		benchmark            lt pkts/K       rs pkts/K
//		10KB:1024:0.0            1.70            1.00
//		10KB:1024:0.1            1.90            1.00
//		...
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dsnet/fountain/internal/testutil"
	"github.com/dsnet/fountain/internal/tool/bench"
	"github.com/dsnet/golib/strconv"
)

const (
	defaultSchemes = "lt,rs"
	defaultSizes   = "1e4,1e5,1e6"
	defaultChunks  = "1024"
	defaultLosses  = "0.0,0.1,0.3"
	defaultBudget  = 8.0 // Packets generated per chunk of payload
)

var (
	schemes []string
	sizes   []int
	chunks  []int
	losses  []float64
	file    string
	precomp string
	budget  float64
)

func main() {
	var flagSchemes, flagSizes, flagChunks, flagLosses string
	flag.StringVar(&flagSchemes, "schemes", defaultSchemes,
		"List of erasure coding schemes to benchmark")
	flag.StringVar(&flagSizes, "sizes", defaultSizes,
		"List of payload sizes to benchmark")
	flag.StringVar(&flagChunks, "chunks", defaultChunks,
		"List of chunk sizes to benchmark")
	flag.StringVar(&flagLosses, "losses", defaultLosses,
		"List of loss fractions to simulate")
	flag.StringVar(&file, "file", "",
		"Load payloads from this file (e.g. testdata/text.txt) instead of random bytes")
	flag.StringVar(&precomp, "precomp", "",
		"Pre-compress payloads with this compressor (fl, xz)")
	flag.Float64Var(&budget, "budget", defaultBudget,
		"Packets generated per chunk of payload")
	flag.Parse()

	for _, s := range strings.Split(flagSchemes, ",") {
		if bench.Encoders[s] == nil || bench.Decoders[s] == nil {
			fmt.Fprintf(os.Stderr, "unknown scheme: %s\n", s)
			os.Exit(1)
		}
		schemes = append(schemes, s)
	}
	for _, s := range strings.Split(flagSizes, ",") {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid size: %s\n", s)
			os.Exit(1)
		}
		sizes = append(sizes, int(n))
	}
	for _, s := range strings.Split(flagChunks, ",") {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid chunk size: %s\n", s)
			os.Exit(1)
		}
		chunks = append(chunks, int(n))
	}
	for _, s := range strings.Split(flagLosses, ",") {
		var f float64
		if _, err := fmt.Sscanf(s, "%f", &f); err != nil || f < 0 || f >= 1 {
			fmt.Fprintf(os.Stderr, "invalid loss fraction: %s\n", s)
			os.Exit(1)
		}
		losses = append(losses, f)
	}

	tsStart := time.Now()
	benchmarkOverhead()
	benchmarkRates()
	fmt.Println("RUNTIME:", time.Since(tsStart))
}

// payload produces the benchmark input for a given size, optionally
// shrunk by the configured pre-compressor. Without a corpus file the input
// is random bytes, which makes any pre-compressor a no-op; text-like input
// comes from -file (see testdata/text.go).
func payload(n int) []byte {
	var b []byte
	if file != "" {
		b = testutil.MustLoadFile(file, n)
	} else {
		b = testutil.NewRand(n).Bytes(n)
	}
	if precomp == "" {
		return b
	}
	comp, decomp := bench.Compressors[precomp], bench.Decompressors[precomp]
	if comp == nil || decomp == nil {
		fmt.Fprintf(os.Stderr, "unknown compressor: %s\n", precomp)
		os.Exit(1)
	}
	var buf bytes.Buffer
	zw := comp(&buf, 6)
	if _, err := zw.Write(b); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func benchmarkOverhead() {
	fmt.Println("BENCHMARK: overhead")
	printHeader("pkts/K")
	for _, n := range sizes {
		for _, c := range chunks {
			for _, loss := range losses {
				b := payload(n)
				numPkts := int(budget * float64((len(b)+c-1)/c))
				cells := make([]string, 0, len(schemes))
				for i, s := range schemes {
					rand := testutil.NewRand(i)
					ratio, err := bench.Overhead(b, bench.Encoders[s], bench.Decoders[s], c, numPkts, loss, rand)
					if err != nil {
						cells = append(cells, "fail")
						continue
					}
					cells = append(cells, fmt.Sprintf("%0.2f", ratio))
				}
				printRow(name(n, c, loss), cells)
			}
		}
	}
	fmt.Println()
}

func benchmarkRates() {
	fmt.Println("BENCHMARK: encRate")
	printHeader("MB/s")
	for _, n := range sizes {
		for _, c := range chunks {
			b := payload(n)
			numPkts := int(budget * float64((len(b)+c-1)/c))
			cells := make([]string, 0, len(schemes))
			for _, s := range schemes {
				r := bench.BenchmarkEncoder(b, bench.Encoders[s], c, numPkts)
				us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
				cells = append(cells, fmt.Sprintf("%0.2f", float64(r.Bytes)/us))
			}
			printRow(name(n, c, -1), cells)
		}
	}
	fmt.Println()

	fmt.Println("BENCHMARK: decRate")
	printHeader("MB/s")
	for _, n := range sizes {
		for _, c := range chunks {
			b := payload(n)
			numPkts := int(budget * float64((len(b)+c-1)/c))
			cells := make([]string, 0, len(schemes))
			for _, s := range schemes {
				pkts, err := bench.Encoders[s](b, c, numPkts)
				if err != nil {
					cells = append(cells, "fail")
					continue
				}
				r := bench.BenchmarkDecoder(len(b), c, pkts, bench.Decoders[s])
				us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
				cells = append(cells, fmt.Sprintf("%0.2f", float64(r.Bytes)/us))
			}
			printRow(name(n, c, -1), cells)
		}
	}
	fmt.Println()
}

func name(n, c int, loss float64) string {
	s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
	s = strings.Replace(s, ".00", "", -1) + "B:" + fmt.Sprint(c)
	if loss >= 0 {
		s += fmt.Sprintf(":%0.1f", loss)
	}
	return s
}

func printHeader(unit string) {
	cells := make([]string, 0, len(schemes))
	for _, s := range schemes {
		cells = append(cells, s+" "+unit)
	}
	printRow("benchmark", cells)
}

func printRow(label string, cells []string) {
	fmt.Printf("\t%-20s", label)
	for _, c := range cells {
		fmt.Printf("%16s", c)
	}
	fmt.Println()
}
