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

package padding

import (
	"bytes"
	"testing"

	"github.com/aeleneiroxana/spongeduplex/consts"
)

func TestPadLength(t *testing.T) {
	for n := 0; n < 96; n++ {
		x := make([]byte, n)
		padded := Pad(x)

		if len(padded) <= n {
			t.Fatalf("Pad(%d bytes) produced %d bytes, want strictly longer", n, len(padded))
		}
		if len(padded)%consts.BITRATE != 0 {
			t.Fatalf("Pad(%d bytes) produced %d bytes, not a multiple of %d", n, len(padded), consts.BITRATE)
		}
	}
}

func TestPadAlwaysAddsSentinelEvenOnExactMultiple(t *testing.T) {
	x := make([]byte, consts.BITRATE)
	padded := Pad(x)

	if len(padded) != 2*consts.BITRATE {
		t.Fatalf("Pad of an exact-multiple input added %d bytes, want a full extra block", len(padded)-len(x))
	}
	if padded[consts.BITRATE] != consts.PAD_SENTINEL {
		t.Fatalf("Pad did not start the new block with the sentinel: %x", padded[consts.BITRATE])
	}
}

func TestPadPrefixUnchanged(t *testing.T) {
	x := []byte("hello, sponge")
	padded := Pad(x)

	if !bytes.Equal(padded[:len(x)], x) {
		t.Fatalf("Pad altered the original bytes: got %x, want prefix %x", padded[:len(x)], x)
	}
}

func TestUnpadRoundTrip(t *testing.T) {
	for n := 0; n < 96; n++ {
		x := make([]byte, n)
		for i := range x {
			x[i] = byte(i + 1)
		}

		got := Unpad(Pad(x))
		if !bytes.Equal(got, x) {
			t.Fatalf("Unpad(Pad(x)) = %x, want %x", got, x)
		}
	}
}
