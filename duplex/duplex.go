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

// Package duplex implements a keyed sponge-duplex session: one struct
// owning key material and the mutable working state, with a method
// per construction phase — init, AD absorption, encrypt, decrypt, tag
// derivation.
package duplex

import (
	"crypto/subtle"

	"github.com/pkg/errors"

	"github.com/aeleneiroxana/spongeduplex/bitop"
	"github.com/aeleneiroxana/spongeduplex/consts"
	"github.com/aeleneiroxana/spongeduplex/padding"
	"github.com/aeleneiroxana/spongeduplex/pbox"
	"github.com/aeleneiroxana/spongeduplex/round"
)

// Session owns one duplex state and the key it was initialized with.
// It is not safe for concurrent use; the state is a single mutable
// resource exclusively owned by the session that created it.
type Session struct {
	key   [consts.KEY_SIZE]byte
	state [consts.STATE_SIZE]byte

	adAbsorbed bool
}

// New derives a fresh session from key and iv, each exactly
// consts.KEY_SIZE / consts.IV_SIZE bytes, and runs the initial
// permutation over the derived state.
func New(key, iv []byte) (*Session, error) {
	if len(key) != consts.KEY_SIZE {
		return nil, errors.Errorf("duplex: key must be %d bytes, got %d", consts.KEY_SIZE, len(key))
	}
	if len(iv) != consts.IV_SIZE {
		return nil, errors.Errorf("duplex: iv must be %d bytes, got %d", consts.IV_SIZE, len(iv))
	}

	s := &Session{}
	copy(s.key[:], key)

	niv := bitop.Invert(iv)
	sk := pbox.ShuffleBytes(key)
	kxv := bitop.XOR(key, iv)

	copy(s.state[0:16], key)
	copy(s.state[16:32], niv)
	copy(s.state[32:48], sk)
	copy(s.state[48:64], iv)
	copy(s.state[64:80], kxv)

	rounds := round.Count(s.state[:], 2)
	round.F(s.state[:], rounds)

	return s, nil
}

// AbsorbAD absorbs associated data into the duplex state. It may be
// called at most once per session, before the first Encrypt/Decrypt
// call; ad is padded internally.
func (s *Session) AbsorbAD(ad []byte) error {
	if s.adAbsorbed {
		return errors.New("duplex: AbsorbAD already called on this session")
	}
	s.adAbsorbed = true

	padded := padding.Pad(ad)
	for i := 0; i < len(padded); i += consts.BITRATE {
		block := padded[i : i+consts.BITRATE]
		rate := bitop.XOR(s.state[0:consts.BITRATE], block)
		copy(s.state[0:consts.BITRATE], rate)

		rounds := round.Count(block, 1)
		round.F(s.state[:], rounds)
	}

	return nil
}

// roundsFromCapacity reads the round-count oracle from the
// capacity-adjacent rate window S[CAPACITY:CAPACITY+BITRATE), the
// shared source both Encrypt and Decrypt use to pick a round count
// for their post-block permutation.
func (s *Session) roundsFromCapacity() int {
	return round.Count(s.state[consts.CAPACITY:consts.CAPACITY+consts.BITRATE], 1)
}

// auxBlock derives one 16-byte auxiliary block from the current state
// by XORing the key against S[BITRATE:BITRATE+16).
func (s *Session) auxBlock() []byte {
	return bitop.XOR(s.key[:], s.state[consts.BITRATE:consts.BITRATE+16])
}

// Encrypt streams plaintext through the duplex, returning the
// ciphertext (the same length as the padded plaintext) and the
// session's auxiliary stream for this call, which Tag consumes.
// AbsorbAD (even with empty AD) must be called first.
func (s *Session) Encrypt(plaintext []byte) (ciphertext, aux []byte, err error) {
	if !s.adAbsorbed {
		return nil, nil, errors.New("duplex: Encrypt called before AbsorbAD")
	}

	padded := padding.Pad(plaintext)
	ciphertext = make([]byte, 0, len(padded))
	aux = make([]byte, 0, 16*(len(padded)/consts.BITRATE))

	for i := 0; i < len(padded); i += consts.BITRATE {
		block := padded[i : i+consts.BITRATE]

		newRate := bitop.XOR(s.state[0:consts.BITRATE], block)
		copy(s.state[0:consts.BITRATE], newRate)

		ctBlock := make([]byte, consts.BITRATE)
		copy(ctBlock, s.state[0:consts.BITRATE])
		ciphertext = append(ciphertext, ctBlock...)

		round.F(s.state[:], s.roundsFromCapacity())
		aux = append(aux, s.auxBlock()...)
	}

	return ciphertext, aux, nil
}

// Decrypt streams ciphertext through the duplex, returning the
// recovered (still-padded) plaintext and the session's auxiliary
// stream, mirroring Encrypt's bookkeeping. Unlike Encrypt, the rate is
// overwritten with the ciphertext block rather than XORed into; this
// asymmetry is essential to round-trip correctness. len(ciphertext)
// must be a multiple of consts.BITRATE (the trailing tag must already
// be stripped by the caller).
func (s *Session) Decrypt(ciphertext []byte) (plaintext, aux []byte, err error) {
	if !s.adAbsorbed {
		return nil, nil, errors.New("duplex: Decrypt called before AbsorbAD")
	}
	if len(ciphertext)%consts.BITRATE != 0 {
		return nil, nil, errors.Errorf("duplex: ciphertext length %d is not a multiple of %d", len(ciphertext), consts.BITRATE)
	}

	plaintext = make([]byte, 0, len(ciphertext))
	aux = make([]byte, 0, 16*(len(ciphertext)/consts.BITRATE))

	for i := 0; i < len(ciphertext); i += consts.BITRATE {
		block := ciphertext[i : i+consts.BITRATE]

		ptBlock := bitop.XOR(s.state[0:consts.BITRATE], block)
		plaintext = append(plaintext, ptBlock...)

		copy(s.state[0:consts.BITRATE], block)

		round.F(s.state[:], s.roundsFromCapacity())
		aux = append(aux, s.auxBlock()...)
	}

	return plaintext, aux, nil
}

// Tag finalizes the duplex state and folds the shuffled auxiliary
// stream into the final tag. It consumes aux (the caller should
// discard it afterward) and must be called exactly once, after the
// last Encrypt or Decrypt call of the session.
func (s *Session) Tag(aux []byte) [consts.TAG_SIZE]byte {
	round.F(s.state[:], round.Count(s.state[:16], 1))

	shuffledAux := pbox.ShuffleBytes(aux)

	var tag [consts.TAG_SIZE]byte
	copy(tag[:], bitop.XOR(s.state[consts.BITRATE:consts.BITRATE+consts.TAG_SIZE], shuffledAux[:consts.TAG_SIZE]))

	return tag
}

// ValidTag reports whether two tags are equal, comparing in
// data-independent time.
func ValidTag(a, b [consts.TAG_SIZE]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Seal runs AbsorbAD(ad), Encrypt(plaintext), and Tag in sequence on a
// fresh session and returns the ciphertext with the tag appended.
func Seal(key, iv, ad, plaintext []byte) ([]byte, error) {
	s, err := New(key, iv)
	if err != nil {
		return nil, err
	}

	if err := s.AbsorbAD(ad); err != nil {
		return nil, err
	}

	ct, aux, err := s.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	tag := s.Tag(aux)
	return append(ct, tag[:]...), nil
}

// Open runs AbsorbAD(ad), Decrypt, and Tag on a fresh session against
// a sealed buffer produced by Seal, splitting off the trailing tag
// itself. It returns the recovered padded plaintext and whether the
// recomputed tag matches the one embedded in sealed. Callers must
// check ok before trusting plaintext.
func Open(key, iv, ad, sealed []byte) (plaintext []byte, ok bool, err error) {
	if len(sealed) < consts.TAG_SIZE {
		return nil, false, errors.New("duplex: sealed input shorter than a tag")
	}

	ct := sealed[:len(sealed)-consts.TAG_SIZE]
	var wantTag [consts.TAG_SIZE]byte
	copy(wantTag[:], sealed[len(sealed)-consts.TAG_SIZE:])

	s, err := New(key, iv)
	if err != nil {
		return nil, false, err
	}

	if err := s.AbsorbAD(ad); err != nil {
		return nil, false, err
	}

	pt, aux, err := s.Decrypt(ct)
	if err != nil {
		return nil, false, err
	}

	gotTag := s.Tag(aux)
	return pt, ValidTag(gotTag, wantTag), nil
}
