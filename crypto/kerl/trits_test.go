//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kerl

import (
	"math/rand"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		var in [TritHashLength]Trit
		for j := 0; j < TritHashLength-1; j++ {
			in[j] = Trit(r.Intn(3) - 1)
		}
		in[TritHashLength-1] = 0

		var buf [ByteLength]byte
		encodeTrits(&in, &buf)

		var out [TritHashLength]Trit
		decodeTrits(&buf, &out)

		if in != out {
			t.Fatalf("round trip %d failed:\nin:  %v\nout: %v", i, in, out)
		}
	}
}

func TestCodecAllZero(t *testing.T) {
	var in [TritHashLength]Trit
	var buf [ByteLength]byte
	encodeTrits(&in, &buf)

	var out [TritHashLength]Trit
	decodeTrits(&buf, &out)
	if in != out {
		t.Fatalf("all-zero round trip failed: %v", out)
	}
}

func TestCodecAllMinusOneSpecialCase(t *testing.T) {
	var in [TritHashLength]Trit
	for i := 0; i < TritHashLength-1; i++ {
		in[i] = -1
	}

	// Expected: two's complement negation of HALF_3, byte-reversed to
	// big-endian, computed independently of the Horner path.
	want := half3
	bigNot(want[:])
	addSmall(want[:], 1)

	var wantBytes [ByteLength]byte
	for i, limb := range want {
		wantBytes[i*4] = byte(limb)
		wantBytes[i*4+1] = byte(limb >> 8)
		wantBytes[i*4+2] = byte(limb >> 16)
		wantBytes[i*4+3] = byte(limb >> 24)
	}
	reverseBytes(wantBytes[:])

	var got [ByteLength]byte
	encodeTrits(&in, &got)

	if got != wantBytes {
		t.Fatalf("all-minus-one special case = %x, want %x", got, wantBytes)
	}

	// And it must still round trip.
	var out [TritHashLength]Trit
	decodeTrits(&got, &out)
	if in != out {
		t.Fatalf("all-minus-one round trip failed: %v", out)
	}
}

func TestCodecLastTritAlwaysZero(t *testing.T) {
	var in [TritHashLength]Trit
	in[0] = 1
	in[TritHashLength-1] = 1 // must be ignored by the codec

	var buf [ByteLength]byte
	encodeTrits(&in, &buf)

	var out [TritHashLength]Trit
	decodeTrits(&buf, &out)
	if out[TritHashLength-1] != 0 {
		t.Fatalf("decoded trit 242 = %d, want 0", out[TritHashLength-1])
	}
}
