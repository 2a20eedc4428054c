//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// The kerlseal utility seals and unseals files with a key derived
// from a Kerl digest of a passphrase. It replaces raw key files with
// a derivation users can actually remember, while keeping the
// block-by-block chacha20poly1305 sealing scheme a filesystem import
// tool needs.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/kerl/crypto/kerl"
	"github.com/markkurossi/kerl/crypto/kerladdr"
	"golang.org/x/crypto/chacha20poly1305"
)

var bo = binary.BigEndian

const (
	sealMagic    = 0x4b53_4c31 // "KSL1"
	sealHdrSize  = 4 + 2 + 8 + 12
	keyDerivPath = "kerlseal/v1"
)

// sealHeader precedes the ciphertext of a sealed file.
type sealHeader struct {
	Magic     uint32
	BlockSize uint16
	PlainSize uint64
	Nonce     [12]byte
}

func (h *sealHeader) Bytes() []byte {
	var buf [sealHdrSize]byte
	bo.PutUint32(buf[0:], h.Magic)
	bo.PutUint16(buf[4:], h.BlockSize)
	bo.PutUint64(buf[6:], h.PlainSize)
	copy(buf[14:], h.Nonce[:])
	return buf[:]
}

func parseSealHeader(data []byte) (*sealHeader, error) {
	if len(data) < sealHdrSize {
		return nil, fmt.Errorf("kerlseal: truncated header")
	}
	h := &sealHeader{
		Magic:     bo.Uint32(data[0:]),
		BlockSize: bo.Uint16(data[4:]),
		PlainSize: bo.Uint64(data[6:]),
	}
	copy(h.Nonce[:], data[14:sealHdrSize])
	if h.Magic != sealMagic {
		return nil, fmt.Errorf("kerlseal: bad magic %08x", h.Magic)
	}
	return h, nil
}

func main() {
	pass := flag.String("pass", "", "sealing passphrase")
	in := flag.String("in", "", "input file")
	out := flag.String("out", "", "output file")
	bs := flag.Int("bs", 4096, "block size")
	flag.Parse()

	if len(*pass) == 0 {
		log.Fatalf("passphrase not specified")
	}
	if len(*in) == 0 || len(*out) == 0 {
		log.Fatalf("usage: kerlseal -pass ... -in ... -out ... seal/unseal")
	}
	if len(flag.Args()) == 0 {
		log.Fatalf("usage: kerlseal seal/unseal")
	}

	key, err := sealKey(*pass)
	if err != nil {
		log.Fatalf("could not derive sealing key: %s", err)
	}

	switch flag.Args()[0] {
	case "seal":
		if err := seal(*in, *out, key, *bs); err != nil {
			log.Fatalf("could not seal file: %s", err)
		}
	case "unseal":
		if err := unseal(*in, *out, key); err != nil {
			log.Fatalf("could not unseal file: %s", err)
		}
	default:
		log.Fatalf("invalid command: %s", flag.Args()[0])
	}
}

// sealKey derives a chacha20poly1305 key from a passphrase by first
// expanding the passphrase into a Kerl digest and then deriving a
// signing-sized subkey from it, the same way kerladdr derives ledger
// signing keys.
func sealKey(passphrase string) ([]byte, error) {
	trits := passphraseToTrits(passphrase)
	return kerladdr.DeriveSigningKey(trits, keyDerivPath, chacha20poly1305.KeySize)
}

// passphraseToTrits stretches passphrase into a balanced-ternary
// vector long enough to absorb: one sha256 block per 243-trit chunk,
// each byte folded into a trit via byte%3-1, with the chunk's final
// trit cleared per Kerl's chunking rule.
func passphraseToTrits(passphrase string) []kerl.Trit {
	trits := make([]kerl.Trit, kerl.TritHashLength)
	digest := sha256.Sum256([]byte(passphrase))
	for i := 0; i < kerl.TritHashLength-1; i++ {
		trits[i] = kerl.Trit(digest[i%len(digest)]%3) - 1
	}
	trits[kerl.TritHashLength-1] = 0
	return trits
}

func seal(inPath, outPath string, key []byte, blockSize int) error {
	if blockSize <= chacha20poly1305.Overhead {
		return fmt.Errorf("block size must exceed cipher overhead %d", chacha20poly1305.Overhead)
	}

	fi, err := os.Stat(inPath)
	if err != nil {
		return err
	}
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	hdr := &sealHeader{
		Magic:     sealMagic,
		BlockSize: uint16(blockSize),
		PlainSize: uint64(fi.Size()),
	}
	if _, err := rand.Read(hdr.Nonce[:]); err != nil {
		return err
	}
	if _, err := out.Write(hdr.Bytes()); err != nil {
		return err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return err
	}

	var aad [12]byte
	bo.PutUint64(aad[4:], hdr.PlainSize)

	buf := make([]byte, blockSize)
	for i := 0; ; i++ {
		n, err := in.Read(buf[:blockSize-chacha20poly1305.Overhead])
		if n == 0 {
			break
		}
		if err != nil {
			return err
		}

		nonce := blockNonce(hdr.Nonce, uint64(i))
		bo.PutUint32(aad[0:], uint32(i))

		cipher := aead.Seal(buf[:0], nonce[:], buf[:n], aad[:])
		if _, err := out.Write(cipher); err != nil {
			return err
		}
	}
	return nil
}

func unseal(inPath, outPath string, key []byte) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var hdrbuf [sealHdrSize]byte
	if _, err := in.Read(hdrbuf[:]); err != nil {
		return err
	}
	hdr, err := parseSealHeader(hdrbuf[:])
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return err
	}

	var aad [12]byte
	bo.PutUint64(aad[4:], hdr.PlainSize)

	buf := make([]byte, int(hdr.BlockSize))
	for i := 0; ; i++ {
		n, err := in.Read(buf)
		if n == 0 {
			break
		}
		if err != nil {
			return err
		}

		nonce := blockNonce(hdr.Nonce, uint64(i))
		bo.PutUint32(aad[0:], uint32(i))

		plain, err := aead.Open(buf[:0], nonce[:], buf[:n], aad[:])
		if err != nil {
			return err
		}
		if _, err := out.Write(plain); err != nil {
			return err
		}
	}
	return nil
}

// blockNonce derives a per-block nonce by XORing the file's random
// base nonce with the big-endian block sequence number.
func blockNonce(base [12]byte, seq uint64) [12]byte {
	nonce := base
	var seqBytes [8]byte
	bo.PutUint64(seqBytes[:], seq)
	for i := range seqBytes {
		nonce[4+i] ^= seqBytes[i]
	}
	return nonce
}
