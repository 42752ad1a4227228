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

package rng

import (
	"bytes"
	"testing"

	"github.com/aeleneiroxana/spongeduplex/consts"
)

func TestKeySize(t *testing.T) {
	k, err := Key()
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if len(k) != consts.KEY_SIZE {
		t.Fatalf("len(Key()) = %d, want %d", len(k), consts.KEY_SIZE)
	}
}

func TestIVSize(t *testing.T) {
	iv, err := IV()
	if err != nil {
		t.Fatalf("IV: %v", err)
	}
	if len(iv) != consts.IV_SIZE {
		t.Fatalf("len(IV()) = %d, want %d", len(iv), consts.IV_SIZE)
	}
}

func TestKeyIsNotReused(t *testing.T) {
	a, err := Key()
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	b, err := Key()
	if err != nil {
		t.Fatalf("Key: %v", err)
	}

	if bytes.Equal(a, b) {
		t.Fatal("two consecutive Key() calls returned identical bytes")
	}
}
