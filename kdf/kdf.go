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

// Package kdf derives a (key, IV) pair for the duplex construction
// from a passphrase, for callers that don't already hold 16 uniformly
// random bytes of each. A passphrase is stretched with a salted,
// iterated PBKDF2 pass rather than hashed once, since passphrases
// carry far less entropy per byte than a random key.
package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/aeleneiroxana/spongeduplex/consts"
)

// Iterations is the PBKDF2 round count used by DeriveKeyIV.
const Iterations = 100000

// DeriveKeyIV stretches passphrase and salt into a
// (consts.KEY_SIZE, consts.IV_SIZE) pair. The same
// (passphrase, salt) always yields the same (key, iv); callers that
// need a fresh IV per message should generate a random salt per call.
func DeriveKeyIV(passphrase, salt []byte) (key, iv []byte) {
	material := pbkdf2.Key(passphrase, salt, Iterations, consts.KEY_SIZE+consts.IV_SIZE, sha256.New)
	return material[:consts.KEY_SIZE], material[consts.KEY_SIZE:]
}
