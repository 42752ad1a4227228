// Copyright (c) 2024 Roxana Aelenei
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command spongeduplexbench is a small demo/benchmark driver. It
// exercises rng, duplex and bench together and reports entropy,
// chi-square, UACI, NPCR, and correlation statistics over repeated
// random trials, at a scale appropriate for a library demo rather
// than a large research sweep. It is a fixed demo program, not a
// configurable CLI.
package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"log"

	"github.com/aeleneiroxana/spongeduplex/bench"
	"github.com/aeleneiroxana/spongeduplex/consts"
	"github.com/aeleneiroxana/spongeduplex/duplex"
	"github.com/aeleneiroxana/spongeduplex/rng"
)

const (
	trials        = 20
	adSize        = 256
	plainTextSize = 4096
	entropyMin    = 7.5
)

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		log.Fatalf("random generation error: %v\n", err)
	}
	return b
}

func main() {
	passed := 0

	for trial := 1; trial <= trials; trial++ {
		key, err := rng.Key()
		if err != nil {
			log.Fatalf("key generation error: %v\n", err)
		}

		iv, err := rng.IV()
		if err != nil {
			log.Fatalf("iv generation error: %v\n", err)
		}

		ad := randomBytes(adSize)
		plainText := randomBytes(plainTextSize)

		sealed, err := duplex.Seal(key, iv, ad, plainText)
		if err != nil {
			log.Fatalf("seal error: %v\n", err)
		}

		cipherText := sealed[:len(sealed)-consts.TAG_SIZE]

		ent := bench.Entropy(cipherText)
		chi := bench.ChiSquare(cipherText)
		uaci := bench.UACI(plainText, cipherText[:len(plainText)])
		npcr := bench.NPCR(plainText, cipherText[:len(plainText)])
		corr := bench.Correlation(plainText, cipherText[:len(plainText)])

		if ent > entropyMin {
			passed++
		}

		fmt.Printf("trial %2d: entropy=%.4f chi2=%.1f uaci=%.2f%% npcr=%.2f%% corr=%.4f\n",
			trial, ent, chi, uaci, npcr, corr)

		pt, ok, err := duplex.Open(key, iv, ad, sealed)
		if err != nil {
			log.Fatalf("open error: %v\n", err)
		}
		if !ok {
			log.Fatalf("trial %d: tag mismatch on round-trip\n", trial)
		}
		if len(pt) < len(plainText) {
			log.Fatalf("trial %d: round-trip plaintext too short\n", trial)
		}
	}

	fmt.Printf("entropy threshold pass rate: %.2f%%\n", (float64(passed)/float64(trials))*100.0)
}
