//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kerl

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when an absorb or squeeze buffer's
// length is not a nonnegative multiple of TritHashLength.
var ErrInvalidLength = errors.New("kerl: trit slice length must be a multiple of 243")

// Sponge is the capability Kerl implements: a stateful object that
// absorbs and squeezes fixed-length chunks of some item type, plus a
// reset operation. Kerl is the only implementor in this module, but
// callers that only need the capability should depend on the
// interface rather than the concrete type.
type Sponge interface {
	Absorb(items []Trit) error
	Squeeze(out []Trit) error
	Reset()
}

// Kerl is a ternary sponge hash specialized to Keccak-384 parameters.
// It is single-owner and mutable: two distinct Kerl values may run on
// separate goroutines with no coordination, but a single value must
// not be mutated concurrently.
type Kerl struct {
	sponge *spongeState
}

var _ Sponge = (*Kerl)(nil)

// New constructs a fresh Kerl: Keccak-384, delimiter 0x01, rate 104
// bytes.
func New() *Kerl {
	return &Kerl{sponge: newKeccak384Sponge()}
}

// Absorb encodes each 243-trit chunk of trits to 48 bytes and
// updates the sponge. trits.len() must be a multiple of
// TritHashLength; no permutation is forced between chunks beyond what
// the sponge's rate implies.
func (k *Kerl) Absorb(trits []Trit) error {
	if len(trits)%TritHashLength != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, len(trits))
	}
	for _, t := range trits {
		if !validTrit(t) {
			return fmt.Errorf("kerl: invalid trit value %d", t)
		}
	}

	var chunk [TritHashLength]Trit
	var buf [ByteLength]byte

	for offset := 0; offset < len(trits); offset += TritHashLength {
		copy(chunk[:], trits[offset:offset+TritHashLength])
		encodeTrits(&chunk, &buf)
		k.sponge.update(buf[:])
	}
	return nil
}

// Squeeze fills out with output trits, one TritHashLength chunk at a
// time. Each chunk runs the chained-squeeze ritual: pad, permute,
// squeeze 48 bytes, reset to a fresh Keccak-384, decode the bytes to
// trits, bit-invert the (now little-endian) bytes and absorb them
// into the freshly-reset sponge. This primes the next squeeze call
// with a non-trivial continuation state; it is not plain sponge
// squeezing.
func (k *Kerl) Squeeze(out []Trit) error {
	if len(out)%TritHashLength != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, len(out))
	}

	var buf [ByteLength]byte
	var chunk [TritHashLength]Trit

	for offset := 0; offset < len(out); offset += TritHashLength {
		k.sponge.pad()
		k.sponge.fillBlock()
		k.sponge.squeeze(buf[:])
		k.Reset()

		decodeTrits(&buf, &chunk)
		copy(out[offset:offset+TritHashLength], chunk[:])

		for i := range buf {
			buf[i] ^= 0xFF
		}
		k.sponge.update(buf[:])
	}
	return nil
}

// Reset replaces the internal sponge with a fresh Keccak-384 state.
func (k *Kerl) Reset() {
	k.sponge = newKeccak384Sponge()
}

// Clone returns a deep copy of k: the 200-byte permutation state,
// offset, rate and delimiter.
func (k *Kerl) Clone() *Kerl {
	cp := *k.sponge
	return &Kerl{sponge: &cp}
}
