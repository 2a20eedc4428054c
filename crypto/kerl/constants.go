//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kerl

// TritHashLength is the number of trits in one Kerl absorb/squeeze
// chunk. The last trit of every chunk is always 0.
const TritHashLength = 243

// ByteLength is the size, in bytes, of the signed bigint encoding of
// one trit chunk.
const ByteLength = 48

// limbCount is the number of 32-bit limbs in a BigInt12.
const limbCount = 12

// radix is the base of the balanced ternary polynomial evaluated by
// the codec.
const radix = 3

// keccak384Rate is the sponge rate, in bytes, for Keccak-384:
// 200 - 384*2/8 = 200 - 96 = 104.
const keccak384Rate = 104

// keccak384Delim is the pre-standardization Keccak delimiter. SHA-3
// uses 0x06; this is the original Keccak delimiter 0x01.
const keccak384Delim = 0x01

// half3 is HALF_3 = floor(3^242 / 2), the constant that centers the
// balanced-ternary polynomial onto signed bigint space. Limbs are
// little-endian (half3[0] is least significant).
var half3 = [limbCount]uint32{
	0xa5ce8964, 0x9f007669, 0x1484504f, 0x3ade00d9, 0x0c24486e, 0x50979d57,
	0x79a4c702, 0x48bbae36, 0xa9f6808b, 0xaa06a805, 0xa87fabdf, 0x5e69ebef,
}
