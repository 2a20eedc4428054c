//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kerl

import "encoding/binary"

// Trit is a single ternary digit in {-1, 0, +1}.
type Trit int8

// validTrit reports whether t is a legal trit value.
func validTrit(t Trit) bool {
	return t >= -1 && t <= 1
}

// encodeTrits converts one 243-trit chunk into its 48-byte signed
// bigint encoding. trits[242] is ignored and treated as 0, per the
// invariant that the last trit of a chunk is always zero.
//
// The accumulator is kept as 12 little-endian limbs throughout and
// only serialized to bytes (little-endian, then reversed to
// big-endian for Keccak) at the very end; this avoids the
// host-endianness dependence of reinterpreting a byte buffer as
// limbs in place.
func encodeTrits(trits *[TritHashLength]Trit, out *[ByteLength]byte) {
	var base [limbCount]uint32

	allMinus1 := true
	for _, t := range trits[:TritHashLength-1] {
		if t != -1 {
			allMinus1 = false
			break
		}
	}

	if allMinus1 {
		// The most negative chunk sits exactly at -HALF_3, which the
		// Horner loop below cannot reach without an extra ULP of
		// asymmetry in the centering step. Its two's-complement
		// negation is computed directly instead.
		base = half3
		bigNot(base[:])
		addSmall(base[:], 1)
	} else {
		size := 1
		for i := TritHashLength - 2; i >= 0; i-- {
			size = mulSmall(base[:], size, radix)
			used := addSmall(base[:], uint32(trits[i]+1))
			if used > size {
				size = used
			}
		}

		if !bigIsZero(base[:]) {
			if bigCmp(half3[:], base[:]) <= 0 {
				bigSub(base[:], half3[:])
			} else {
				var tmp [limbCount]uint32 = half3
				bigSub(tmp[:], base[:])
				bigNot(tmp[:])
				addSmall(tmp[:], 1)
				base = tmp
			}
		}
	}

	for i, limb := range base {
		binary.LittleEndian.PutUint32(out[i*4:], limb)
	}
	reverseBytes(out[:])
}

// decodeTrits converts one 48-byte signed bigint encoding back into a
// 243-trit chunk. bytes is reversed in place to little-endian order
// as a side effect: Kerl's chained-squeeze construction re-seeds the
// sponge with the bit-inverted little-endian bytes, so the reversal
// is exposed to the caller rather than hidden in a local copy.
func decodeTrits(bytes *[ByteLength]byte, trits *[TritHashLength]Trit) {
	trits[TritHashLength-1] = 0

	reverseBytes(bytes[:])

	var base [limbCount]uint32
	for i := range base {
		base[i] = binary.LittleEndian.Uint32(bytes[i*4:])
	}

	if bigIsZero(base[:]) {
		for i := range trits {
			trits[i] = 0
		}
		return
	}

	flip := false
	if base[limbCount-1]>>31 == 0 {
		bigAdd(base[:], half3[:])
	} else {
		bigNot(base[:])
		if bigCmp(base[:], half3[:]) > 0 {
			bigSub(base[:], half3[:])
			flip = true
		} else {
			addSmall(base[:], 1)
			var tmp [limbCount]uint32 = half3
			bigSub(tmp[:], base[:])
			base = tmp
		}
	}

	for i := 0; i < TritHashLength-1; i++ {
		var rem uint32
		for j := limbCount - 1; j >= 0; j-- {
			lhs := (uint64(rem) << 32) | uint64(base[j])
			base[j] = uint32(lhs / radix)
			rem = uint32(lhs % radix)
		}
		trits[i] = Trit(rem) - 1
	}

	if flip {
		for i := range trits {
			trits[i] = -trits[i]
		}
	}
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
