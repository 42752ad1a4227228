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

// Package sbox implements the duplex construction's non-linear layer:
// a 4-bit substitution applied to the low nibble of a byte, and its
// state-wide application across the four sub-blocks of the duplex
// state via bit-position transposition.
//
// Unlike the Rijndael S-box this construction's substitution has no
// precomputed lookup table; it's a closed-form boolean formula over
// the low nibble, so Scalar recomputes it per call instead of indexing
// a table the way an AES S-box would.
package sbox

import (
	"github.com/aeleneiroxana/spongeduplex/bitop"
	"github.com/aeleneiroxana/spongeduplex/consts"
)

// Scalar applies the nibble substitution to the low nibble of b,
// zeroing the high nibble of the result. sbox_test.go lists the full
// truth table; DESIGN.md explains the bit-weight convention it assumes.
func Scalar(b byte) byte {
	x0 := bitop.Bit(b, 4)
	x1 := bitop.Bit(b, 5)
	x2 := bitop.Bit(b, 6)
	x3 := bitop.Bit(b, 7)

	y0 := x0 ^ x1 ^ x3 ^ 1
	y1 := x0 ^ x2 ^ x3
	y2 := x1 ^ x2 ^ x3
	y3 := x0

	return y0<<3 | y1<<2 | y2<<1 | y3
}

// merge packs msb's low nibble into the high nibble of the result and
// lsb's low nibble into the low nibble of the result.
func merge(msb, lsb byte) byte {
	return (msb << 4) | (lsb & 0x0F)
}

// ApplyState runs the state-wide S-box over state in place. state must
// be consts.STATE_SIZE bytes, logically four sub-blocks of
// consts.SUBBLOCK_SIZE bytes each.
func ApplyState(state []byte) {
	if len(state) != consts.STATE_SIZE {
		panic("sbox: state must be STATE_SIZE bytes")
	}

	n := consts.SUBBLOCK_SIZE
	w0 := state[0*n : 1*n]
	w1 := state[1*n : 2*n]
	w2 := state[2*n : 3*n]
	w3 := state[3*n : 4*n]

	for i := 0; i < n; i++ {
		var ans [8]byte
		for k := 0; k < 8; k++ {
			v0 := bitop.Bit(w0[i], k)
			v1 := bitop.Bit(w1[i], k)
			v2 := bitop.Bit(w2[i], k)
			v3 := bitop.Bit(w3[i], k)
			ans[k] = v0<<3 | v1<<2 | v2<<1 | v3
		}

		var answ [8]byte
		for k := 0; k < 8; k++ {
			answ[k] = Scalar(ans[k])
		}

		w0[i] = merge(answ[0], answ[1])
		w1[i] = merge(answ[2], answ[3])
		w2[i] = merge(answ[4], answ[5])
		w3[i] = merge(answ[6], answ[7])
	}
}
