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

// Package bench is a statistical harness for measuring diagnostic
// properties of ciphertext output distributions — entropy, histogram
// uniformity, avalanche behavior between related streams — consuming
// duplex only through its public API.
package bench

import "math"

// Entropy returns the Shannon entropy of data in bits per byte.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	entropy := 0.0
	n := float64(len(data))
	for _, f := range freq {
		if f == 0 {
			continue
		}
		p := float64(f) / n
		entropy += p * math.Log2(p)
	}

	return -entropy
}

// ChiSquare returns the chi-square statistic of data's byte histogram
// against a uniform distribution over 256 values. Lower is more
// uniform.
func ChiSquare(data []byte) float64 {
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	expected := float64(len(data)) / 256.0
	chiSquare := 0.0
	for _, f := range freq {
		d := float64(f) - expected
		chiSquare += d * d / expected
	}

	return chiSquare
}

// UACI returns the unified average changing intensity between two
// equal-length byte streams, as a percentage.
func UACI(a, b []byte) float64 {
	if len(a) != len(b) {
		panic("bench: UACI operands must be the same length")
	}

	sum := 0.0
	for i := range a {
		sum += math.Abs(float64(a[i]) - float64(b[i]))
	}

	return (sum / (float64(len(a)) * 255.0)) * 100.0
}

// NPCR returns the number-of-pixels-change-rate (here: byte-change
// rate) between two equal-length byte streams, as a percentage.
func NPCR(a, b []byte) float64 {
	if len(a) != len(b) {
		panic("bench: NPCR operands must be the same length")
	}

	changed := 0.0
	for i := range a {
		if a[i] != b[i] {
			changed++
		}
	}

	return (changed / float64(len(a))) * 100.0
}

// Correlation returns the Pearson correlation coefficient between two
// equal-length byte streams.
func Correlation(a, b []byte) float64 {
	if len(a) != len(b) {
		panic("bench: Correlation operands must be the same length")
	}

	n := float64(len(a))
	var meanA, meanB float64
	for i := range a {
		meanA += float64(a[i])
		meanB += float64(b[i])
	}
	meanA /= n
	meanB /= n

	var varA, varB, cov float64
	for i := range a {
		da := float64(a[i]) - meanA
		db := float64(b[i]) - meanB
		varA += da * da
		varB += db * db
		cov += da * db
	}
	varA /= n
	varB /= n
	cov /= n

	return cov / math.Sqrt(varA*varB)
}
