// Package lea implements the LEA-128/192/256 block cipher and its CTR
// keystream mode. LEA is an ARX (add-rotate-xor) cipher operating on
// 128-bit blocks as four 32-bit little-endian words.
package lea

import "math/bits"

const (
	// BlockSize is the LEA block size in bytes, for every variant.
	BlockSize = 16

	// KeySize128 is the LEA-128 key size in bytes.
	KeySize128 = 16
	// KeySize192 is the LEA-192 key size in bytes.
	KeySize192 = 24
	// KeySize256 is the LEA-256 key size in bytes.
	KeySize256 = 32

	rounds128 = 24
	rounds192 = 28
	rounds256 = 32
)

// delta holds the eight round constants used by the key schedule.
var delta = [8]uint32{
	0xC3EFE9DB, 0x44626B02, 0x79E27C8A, 0x78DF30EC,
	0x715EA49E, 0xC785DA0A, 0xE04EF22A, 0xE5C40957,
}

// forward sub-round index patterns, cycled once per round.
var fwdPattern = [4][4]int{{3, 2, 1, 0}, {0, 3, 2, 1}, {1, 0, 3, 2}, {2, 1, 0, 3}}

// inverse sub-round index patterns, cycled once per round.
var invPattern = [4][4]int{{0, 1, 2, 3}, {3, 0, 1, 2}, {2, 3, 0, 1}, {1, 2, 3, 0}}

func rotl(x uint32, n uint) uint32 { return bits.RotateLeft32(x, int(n)) }
func rotr(x uint32, n uint) uint32 { return bits.RotateLeft32(x, -int(n)) }

// getu32le reads a little-endian 32-bit word from b.
func getu32le(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// putu32le writes w into b as a little-endian 32-bit word.
func putu32le(b []byte, w uint32) {
	b[0] = byte(w)
	b[1] = byte(w >> 8)
	b[2] = byte(w >> 16)
	b[3] = byte(w >> 24)
}

// expandKey128 derives the 144-word round-key table for a 16-byte key.
func expandKey128(key []byte) []uint32 {
	t := [4]uint32{getu32le(key[0:4]), getu32le(key[4:8]), getu32le(key[8:12]), getu32le(key[12:16])}
	rk := make([]uint32, 6*rounds128)

	for i := 0; i < rounds128; i++ {
		m := i % 4
		t[0] = rotl(t[0]+rotl(delta[m], uint(i+0)), 1)
		t[1] = rotl(t[1]+rotl(delta[m], uint(i+1)), 3)
		t[2] = rotl(t[2]+rotl(delta[m], uint(i+2)), 6)
		t[3] = rotl(t[3]+rotl(delta[m], uint(i+3)), 11)

		rk[6*i+0] = t[0]
		rk[6*i+1] = t[1]
		rk[6*i+2] = t[2]
		rk[6*i+3] = t[1]
		rk[6*i+4] = t[3]
		rk[6*i+5] = t[1]
	}
	zeroWords(t[:])
	return rk
}

// expandKey192 derives the 168-word round-key table for a 24-byte key.
func expandKey192(key []byte) []uint32 {
	t := [6]uint32{
		getu32le(key[0:4]), getu32le(key[4:8]), getu32le(key[8:12]),
		getu32le(key[12:16]), getu32le(key[16:20]), getu32le(key[20:24]),
	}
	shifts := [6]uint{1, 3, 6, 11, 13, 17}
	rk := make([]uint32, 6*rounds192)

	for i := 0; i < rounds192; i++ {
		m := i % 6
		for k := 0; k < 6; k++ {
			t[k] = rotl(t[k]+rotl(delta[m], uint(i+k)), shifts[k])
		}
		for k := 0; k < 6; k++ {
			rk[6*i+k] = t[k]
		}
	}
	zeroWords(t[:])
	return rk
}

// expandKey256 derives the 192-word round-key table for a 32-byte key.
func expandKey256(key []byte) []uint32 {
	var t [8]uint32
	for w := 0; w < 8; w++ {
		t[w] = getu32le(key[w*4 : w*4+4])
	}
	shifts := [6]uint{1, 3, 6, 11, 13, 17}
	rk := make([]uint32, 6*rounds256)

	for i := 0; i < rounds256; i++ {
		m := i % 8
		for k := 0; k < 6; k++ {
			idx := (6*i + k) % 8
			t[idx] = rotl(t[idx]+rotl(delta[m], uint(i+k)), shifts[k])
			rk[6*i+k] = t[idx]
		}
	}
	zeroWords(t[:])
	return rk
}

// encryptBlock runs the forward ARX rounds over x in place using rk.
func encryptBlock(x *[4]uint32, rk []uint32, numRounds int) {
	for i := 0; i < numRounds; i++ {
		p := &fwdPattern[i%4]
		a, b, c, d := p[0], p[1], p[2], p[3]
		base := 6 * i
		x[a] = rotr((x[b]^rk[base+4])+(x[a]^rk[base+5]), 3)
		x[b] = rotr((x[c]^rk[base+2])+(x[b]^rk[base+3]), 5)
		x[c] = rotl((x[d]^rk[base+0])+(x[c]^rk[base+1]), 9)
	}
}

// decryptBlock runs the inverse ARX rounds over x in place using rk.
func decryptBlock(x *[4]uint32, rk []uint32, numRounds int) {
	t := numRounds*6 - 1
	for i := 0; i < numRounds; i++ {
		p := &invPattern[i%4]
		a, b, c, d := p[0], p[1], p[2], p[3]
		base := 6 * i
		x[a] = rotr(x[a], 9) - (x[d] ^ rk[t-5-base]) ^ rk[t-4-base]
		x[b] = rotl(x[b], 5) - (x[a] ^ rk[t-3-base]) ^ rk[t-2-base]
		x[c] = rotl(x[c], 3) - (x[b] ^ rk[t-1-base]) ^ rk[t-base]
	}
}
