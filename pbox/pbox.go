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

// Package pbox implements the duplex construction's diffusion layer:
// a data-dependent 4-way permutation of byte sub-blocks, and its
// state-wide application to every sliding 4-byte window of the state.
package pbox

import (
	"github.com/aeleneiroxana/spongeduplex/bitop"
	"github.com/aeleneiroxana/spongeduplex/consts"
)

// updatePermutation folds one trigger byte into a running 4-element
// permutation. The two override cases (all trigger bits set, or none)
// are checked after the four conditional swaps, so they take priority
// over whatever the swaps produced.
func updatePermutation(x byte, v *[4]int) {
	if bitop.Bit(x, 5)^bitop.Bit(x, 1) != 0 {
		v[0], v[2] = v[2], v[0]
	}
	if bitop.Bit(x, 6)^bitop.Bit(x, 2) != 0 {
		v[1], v[3] = v[3], v[1]
	}
	if bitop.Bit(x, 7)^bitop.Bit(x, 3) != 0 {
		v[0], v[1] = v[1], v[0]
	}
	if bitop.Bit(x, 4)^bitop.Bit(x, 0) != 0 {
		v[2], v[3] = v[3], v[2]
	}

	switch x {
	case consts.ALL_TRIGGERS:
		*v = [4]int{3, 1, 0, 2}
	case 0x00:
		*v = [4]int{0, 2, 3, 1}
	}
}

// ShuffleBytes splits src into four equal sub-blocks, derives a
// permutation of them from the first byte of each sub-block (each
// trigger byte evaluated left-to-right, so later triggers see the
// already-updated permutation), and returns the sub-blocks
// concatenated in the permuted order. len(src) must be a multiple of
// 4.
func ShuffleBytes(src []byte) []byte {
	n := len(src)
	if n%4 != 0 {
		panic("pbox: ShuffleBytes input length must be a multiple of 4")
	}

	b := n / 4
	v := [4]int{0, 1, 2, 3}
	for _, idx := range [4]int{0, b, 2 * b, 3 * b} {
		updatePermutation(src[idx], &v)
	}

	dst := make([]byte, n)
	copy(dst[0*b:1*b], src[v[0]*b:v[0]*b+b])
	copy(dst[1*b:2*b], src[v[1]*b:v[1]*b+b])
	copy(dst[2*b:3*b], src[v[2]*b:v[2]*b+b])
	copy(dst[3*b:4*b], src[v[3]*b:v[3]*b+b])

	return dst
}

// ApplyState runs the state-wide P-box over state in place: for every
// position i, the 4-byte cyclic window starting at i is shuffled and
// written back. Iterations run in ascending i and are sequential, so
// later windows observe the writes of earlier ones.
func ApplyState(state []byte) {
	if len(state) != consts.STATE_SIZE {
		panic("pbox: state must be STATE_SIZE bytes")
	}

	n := consts.STATE_SIZE
	for i := 0; i < n; i++ {
		word := [4]byte{
			state[i],
			state[(i+1)%n],
			state[(i+2)%n],
			state[(i+3)%n],
		}

		shuffled := ShuffleBytes(word[:])

		state[i] = shuffled[0]
		state[(i+1)%n] = shuffled[1]
		state[(i+2)%n] = shuffled[2]
		state[(i+3)%n] = shuffled[3]
	}
}
