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

package round

import (
	"bytes"
	"testing"

	"github.com/aeleneiroxana/spongeduplex/consts"
)

func TestCountRange(t *testing.T) {
	for trial := 0; trial < 512; trial++ {
		data := make([]byte, 64)
		for i := range data {
			data[i] = byte(trial*31 + i*17)
		}

		for _, blockSize := range []int{1, 2, 4, 8} {
			c := Count(data, blockSize)
			if c < consts.MIN_ROUNDS || c > consts.MAX_ROUNDS {
				t.Fatalf("Count(..., %d) = %d, want in [%d, %d]", blockSize, c, consts.MIN_ROUNDS, consts.MAX_ROUNDS)
			}
		}
	}
}

func TestCountAllZero(t *testing.T) {
	data := make([]byte, 32)
	if c := Count(data, 1); c != consts.MIN_ROUNDS {
		t.Fatalf("Count of all-zero data = %d, want %d", c, consts.MIN_ROUNDS)
	}
}

func TestFRunsExactRoundCount(t *testing.T) {
	state := make([]byte, consts.STATE_SIZE)
	for i := range state {
		state[i] = byte(i * 3)
	}

	zeroRounds := append([]byte(nil), state...)
	F(zeroRounds, 0)
	if !bytes.Equal(zeroRounds, state) {
		t.Fatal("F with rounds=0 must not modify the state")
	}

	oneRound := append([]byte(nil), state...)
	F(oneRound, 1)

	twoRounds := append([]byte(nil), state...)
	F(twoRounds, 1)
	F(twoRounds, 1)

	twoInOneCall := append([]byte(nil), state...)
	F(twoInOneCall, 2)

	if !bytes.Equal(twoRounds, twoInOneCall) {
		t.Fatal("F(rounds=2) must equal two sequential F(rounds=1) calls")
	}
}
