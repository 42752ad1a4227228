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

// Package consts defines constant values used by the sponge-duplex
// construction.
package consts

const (
	// Total size of the duplex state in bytes.
	STATE_SIZE = 80

	// Size of the rate portion of the state (the part visible to
	// AD/plaintext/ciphertext).
	BITRATE = 32

	// Size of the hidden capacity portion of the state.
	CAPACITY = STATE_SIZE - BITRATE

	// Size of the key and IV in bytes.
	KEY_SIZE = 16
	IV_SIZE  = 16

	// Size of the authentication tag in bytes.
	TAG_SIZE = 16

	// Width of one S-box/P-box sub-block (state split four ways).
	SUBBLOCK_SIZE = STATE_SIZE / 4

	// Sentinel byte appended by Pad before the zero run.
	PAD_SENTINEL = 0x80

	// XOR mask used by Invert. Equal to KEY_SIZE*8-1.
	INVERT_MASK = KEY_SIZE*8 - 1

	// All-triggers-set sentinel recognized by updatePermutation.
	ALL_TRIGGERS = INVERT_MASK

	// Bounds of the round-count oracle.
	MIN_ROUNDS = 8
	MAX_ROUNDS = 20
)
