//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package kerl

import "encoding/binary"

// spongeState is a padded, multi-rate Keccak sponge. Its byte view is
// derived explicitly from the 25 little-endian lanes with
// encoding/binary rather than by aliasing the lane array as bytes, so
// behavior does not depend on host endianness.
type spongeState struct {
	a      [25]uint64
	offset int
	rate   int
	delim  byte
}

func newKeccak384Sponge() *spongeState {
	return &spongeState{
		rate:  keccak384Rate,
		delim: keccak384Delim,
	}
}

// bytes returns the sponge state's current 200-byte little-endian
// lane view.
func (s *spongeState) bytes() [200]byte {
	var out [200]byte
	for i, lane := range s.a {
		binary.LittleEndian.PutUint64(out[i*8:], lane)
	}
	return out
}

// setBytes reloads the sponge state's lanes from a 200-byte
// little-endian view produced by bytes.
func (s *spongeState) setBytes(b [200]byte) {
	for i := range s.a {
		s.a[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
}

// update XORs input into the state starting at the current offset,
// running the permutation every time a full rate-sized block has been
// absorbed.
func (s *spongeState) update(input []byte) {
	ip := 0
	l := len(input)
	rate := s.rate - s.offset
	offset := s.offset

	for l >= rate {
		buf := s.bytes()
		xorInto(buf[offset:offset+rate], input[ip:ip+rate])
		s.setBytes(buf)
		keccakF1600(&s.a)

		ip += rate
		l -= rate
		rate = s.rate
		offset = 0
	}

	buf := s.bytes()
	xorInto(buf[offset:offset+l], input[ip:ip+l])
	s.setBytes(buf)
	s.offset = offset + l
}

// pad XORs the delimiter byte at the current offset and the final
// padding bit at the end of the rate. If the two land on the same
// byte, they are XORed together.
func (s *spongeState) pad() {
	buf := s.bytes()
	buf[s.offset] ^= s.delim
	buf[s.rate-1] ^= 0x80
	s.setBytes(buf)
}

// fillBlock runs the permutation and resets the offset to the start
// of the rate.
func (s *spongeState) fillBlock() {
	keccakF1600(&s.a)
	s.offset = 0
}

// squeeze copies rate-sized chunks out of the state, running the
// permutation between chunks. The final partial chunk is copied with
// no trailing permutation.
func (s *spongeState) squeeze(output []byte) {
	op := 0
	l := len(output)

	for l >= s.rate {
		buf := s.bytes()
		copy(output[op:op+s.rate], buf[:s.rate])
		keccakF1600(&s.a)

		op += s.rate
		l -= s.rate
	}

	buf := s.bytes()
	copy(output[op:op+l], buf[:l])
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
