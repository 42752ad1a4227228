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

// Package round implements the duplex construction's round function f
// (an S-box layer followed by a P-box layer) and the round-count
// oracle that derives its iteration count from live data.
package round

import (
	"github.com/aeleneiroxana/spongeduplex/consts"
	"github.com/aeleneiroxana/spongeduplex/pbox"
	"github.com/aeleneiroxana/spongeduplex/sbox"
)

// F applies sbox then pbox to state, rounds times, in place. There is
// no trailing half-round: each of the rounds iterations runs both
// steps.
func F(state []byte, rounds int) {
	for i := 0; i < rounds; i++ {
		sbox.ApplyState(state)
		pbox.ApplyState(state)
	}
}

// Count sums every blockSize-th byte of data and folds the sum into
// [consts.MIN_ROUNDS, consts.MAX_ROUNDS].
//
// The round count is derived from live data by design: it is not a
// compile-time constant, and reimplementations must not hoist it to
// one.
func Count(data []byte, blockSize int) int {
	sum := 0
	for i := 0; i < len(data); i += blockSize {
		sum += int(data[i])
	}

	return (sum % 13) + consts.MIN_ROUNDS
}
