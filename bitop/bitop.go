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

// Package bitop implements the bit/byte primitives the duplex
// construction is built from: componentwise XOR, the fixed-mask
// inversion, zero-fill, and MSB-first bit extraction.
//
// XOR and Invert read their inputs fully into a freshly allocated
// output rather than writing over a source span; Clear is the only
// function that mutates its argument in place.
package bitop

import "github.com/aeleneiroxana/spongeduplex/consts"

// XOR returns the componentwise XOR of two equal-length spans.
func XOR(a, b []byte) []byte {
	if len(a) != len(b) {
		panic("bitop: XOR operands must be the same length")
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out
}

// Invert returns x with every byte XORed against consts.INVERT_MASK.
func Invert(x []byte) []byte {
	out := make([]byte, len(x))
	for i, b := range x {
		out[i] = b ^ consts.INVERT_MASK
	}

	return out
}

// Clear zero-fills x in place.
func Clear(x []byte) {
	for i := range x {
		x[i] = 0
	}
}

// Bit returns bit i of b, numbered MSB-first (bit 0 is the MSB, bit 7
// is the LSB), as 0 or 1.
func Bit(b byte, i int) byte {
	return (b >> uint(7-i)) & 1
}
