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

// Package padding implements the duplex construction's sentinel
// padding: a single 0x80 sentinel byte followed by zero fill up to
// the next block boundary.
package padding

import "github.com/aeleneiroxana/spongeduplex/consts"

// Pad appends consts.PAD_SENTINEL and then zero bytes until the
// length is a multiple of consts.BITRATE. At least one byte (the
// sentinel) is always appended, even when len(x) is already a
// multiple of the bitrate.
func Pad(x []byte) []byte {
	padded := make([]byte, len(x), len(x)+consts.BITRATE)
	copy(padded, x)

	padded = append(padded, consts.PAD_SENTINEL)
	for len(padded)%consts.BITRATE != 0 {
		padded = append(padded, 0x00)
	}

	return padded
}

// Unpad reverses Pad: it strips the trailing zero run and the
// sentinel byte beneath it. It panics if x does not end in a valid
// padding run, which cannot happen for any x produced by Pad.
func Unpad(x []byte) []byte {
	i := len(x)
	for i > 0 && x[i-1] == 0x00 {
		i--
	}

	if i == 0 || x[i-1] != consts.PAD_SENTINEL {
		panic("padding: input is not validly padded")
	}

	out := make([]byte, i-1)
	copy(out, x[:i-1])
	return out
}
