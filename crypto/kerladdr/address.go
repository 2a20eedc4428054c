//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package kerladdr derives ledger addresses and signing subkeys from a
// Kerl digest. Kerl's purpose section describes it as underpinning "a
// larger ecosystem (ledger addressing and signing)"; this package is
// that ecosystem's addressing layer, the way a production deployment
// of Kerl would actually consume its output.
package kerladdr

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/btcsuite/btcutil/base58"
	"github.com/markkurossi/kerl/crypto/kerl"
	"golang.org/x/crypto/hkdf"
)

// Version is the checksum-address version byte embedded by Derive.
const Version = 0x2d // arbitrary; addresses encoded with it start with '3'.

// Derive computes a ledger address for seed: seed is absorbed as a
// multiple-of-243 trit chunk, squeezed once, and the resulting
// 243-trit digest is packed one trit per byte (each trit biased into
// {0,1,2}) before being base58-check-encoded. The trit packing keeps
// the full digest entropy; the ecosystem's production trit-to-tryte
// convention (see the original Kerl implementation) is a denser
// human-typable encoding this package does not attempt to replicate.
func Derive(seed []kerl.Trit) (string, error) {
	if len(seed)%kerl.TritHashLength != 0 {
		return "", fmt.Errorf("kerladdr: seed length must be a multiple of %d", kerl.TritHashLength)
	}

	h := kerl.New()
	if err := h.Absorb(seed); err != nil {
		return "", fmt.Errorf("kerladdr: absorb: %w", err)
	}

	digest := make([]kerl.Trit, kerl.TritHashLength)
	if err := h.Squeeze(digest); err != nil {
		return "", fmt.Errorf("kerladdr: squeeze: %w", err)
	}

	return base58.CheckEncode(packTrits(digest), Version), nil
}

// DeriveSigningKey expands a Kerl digest into keySize bytes of signing
// key material for a given derivation path, via RFC 5869 HKDF keyed on
// the digest, using path as the HKDF info parameter to separate
// independent derivations from the same digest.
func DeriveSigningKey(seed []kerl.Trit, path string, keySize int) ([]byte, error) {
	if len(seed)%kerl.TritHashLength != 0 {
		return nil, fmt.Errorf("kerladdr: seed length must be a multiple of %d", kerl.TritHashLength)
	}

	h := kerl.New()
	if err := h.Absorb(seed); err != nil {
		return nil, fmt.Errorf("kerladdr: absorb: %w", err)
	}
	digest := make([]kerl.Trit, kerl.TritHashLength)
	if err := h.Squeeze(digest); err != nil {
		return nil, fmt.Errorf("kerladdr: squeeze: %w", err)
	}

	out := make([]byte, keySize)
	kdf := hkdf.New(sha256.New, packTrits(digest), nil, []byte(path))
	if _, err := io.ReadFull(kdf, out); err != nil {
		return nil, fmt.Errorf("kerladdr: expand: %w", err)
	}
	return out, nil
}

// packTrits packs each trit of digest, biased into {0, 1, 2}, one per
// byte. This is not the ecosystem's production tryte codec: it exists
// to hand the digest to base58/HKDF, which operate on bytes, without
// losing any of Kerl's ternary entropy to a lossy byte reinterpretation.
func packTrits(digest []kerl.Trit) []byte {
	out := make([]byte, len(digest))
	for i, t := range digest {
		out[i] = byte(t + 1)
	}
	return out
}
