//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kerl

import "math/bits"

// rhoOffsets and piLanes are the FIPS-202 rotation offsets and lane
// permutation indices, applied together in the combined rho/pi step.
var rhoOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piLanes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// roundConstants are the 24 iota round constants.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakF1600 applies the Keccak-f[1600] permutation to the 25-lane
// state in place, running all 24 rounds of theta, rho, pi, chi and
// iota.
func keccakF1600(a *[25]uint64) {
	for round := 0; round < 24; round++ {
		// Theta: column parity, then mix across columns.
		var c [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// Rho and pi: rotate each lane and permute lane positions,
		// chained through a single scalar pipeline starting at a[1].
		last := a[1]
		for i := 0; i < 24; i++ {
			lane := piLanes[i]
			tmp := a[lane]
			a[lane] = bits.RotateLeft64(last, rhoOffsets[i])
			last = tmp
		}

		// Chi: the sole nonlinear step, row by row.
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			copy(row[:], a[y:y+5])
			for x := 0; x < 5; x++ {
				a[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// Iota: mix in the round constant.
		a[0] ^= roundConstants[round]
	}
}
