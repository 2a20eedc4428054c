//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/markkurossi/kerl/crypto/kerl"
)

func TestSealHeaderRoundTrip(t *testing.T) {
	hdr := &sealHeader{
		Magic:     sealMagic,
		BlockSize: 4096,
		PlainSize: 123456789,
	}
	for i := range hdr.Nonce {
		hdr.Nonce[i] = byte(i + 1)
	}

	got, err := parseSealHeader(hdr.Bytes())
	if err != nil {
		t.Fatalf("parseSealHeader: %v", err)
	}
	if *got != *hdr {
		t.Fatalf("round trip = %+v, want %+v", got, hdr)
	}
}

func TestSealHeaderBytesLength(t *testing.T) {
	hdr := &sealHeader{Magic: sealMagic}
	if len(hdr.Bytes()) != sealHdrSize {
		t.Fatalf("Bytes() length = %d, want %d", len(hdr.Bytes()), sealHdrSize)
	}
}

func TestParseSealHeaderRejectsBadMagic(t *testing.T) {
	hdr := &sealHeader{Magic: 0xdeadbeef, BlockSize: 4096}
	if _, err := parseSealHeader(hdr.Bytes()); err == nil {
		t.Fatalf("expected an error for a bad magic value")
	}
}

func TestParseSealHeaderRejectsTruncatedInput(t *testing.T) {
	if _, err := parseSealHeader(make([]byte, sealHdrSize-1)); err == nil {
		t.Fatalf("expected an error for a truncated header")
	}
}

func TestBlockNonceDiffersBySequence(t *testing.T) {
	var base [12]byte
	for i := range base {
		base[i] = byte(i)
	}

	n0 := blockNonce(base, 0)
	n1 := blockNonce(base, 1)
	if n0 == n1 {
		t.Fatalf("distinct sequence numbers produced the same nonce")
	}
}

func TestBlockNonceDeterministic(t *testing.T) {
	var base [12]byte
	base[0] = 0xAB

	a := blockNonce(base, 42)
	b := blockNonce(base, 42)
	if a != b {
		t.Fatalf("blockNonce is not deterministic")
	}
}

func TestBlockNonceLeavesBaseUntouched(t *testing.T) {
	var base [12]byte
	copy(base[:], []byte("deadbeefcafe"))
	want := base

	blockNonce(base, 7)
	if base != want {
		t.Fatalf("blockNonce mutated its base argument")
	}
}

func TestPassphraseToTritsDeterministic(t *testing.T) {
	a := passphraseToTrits("correct horse battery staple")
	b := passphraseToTrits("correct horse battery staple")
	if len(a) != kerl.TritHashLength {
		t.Fatalf("passphraseToTrits length = %d, want %d", len(a), kerl.TritHashLength)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("passphraseToTrits is not deterministic at trit %d", i)
		}
	}
}

func TestPassphraseToTritsDiffersByInput(t *testing.T) {
	a := passphraseToTrits("passphrase one")
	b := passphraseToTrits("passphrase two")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct passphrases produced the same trit vector")
	}
}

func TestPassphraseToTritsLastTritZero(t *testing.T) {
	trits := passphraseToTrits("anything")
	if trits[kerl.TritHashLength-1] != 0 {
		t.Fatalf("last trit = %d, want 0", trits[kerl.TritHashLength-1])
	}
}

func TestSealKeyMatchesChaCha20Poly1305KeySize(t *testing.T) {
	key, err := sealKey("a test passphrase")
	if err != nil {
		t.Fatalf("sealKey: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("sealKey length = %d, want 32", len(key))
	}
}

func TestSealUnsealRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := dir + "/plain.txt"
	sealedPath := dir + "/sealed.bin"
	outPath := dir + "/unsealed.txt"

	plain := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 200)
	if err := os.WriteFile(inPath, plain, 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	key, err := sealKey("a test passphrase")
	if err != nil {
		t.Fatalf("sealKey: %v", err)
	}

	if err := seal(inPath, sealedPath, key, 256); err != nil {
		t.Fatalf("seal: %v", err)
	}
	if err := unseal(sealedPath, outPath, key); err != nil {
		t.Fatalf("unseal: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("unsealed content does not match original")
	}
}
