package lea

import "crypto/cipher"

// Cipher holds the expanded round-key table for one LEA key. A Cipher is
// immutable after construction and safe for concurrent use by multiple
// goroutines, since Encrypt/Decrypt only read the round-key table.
//
// Cipher implements crypto/cipher.Block, so it composes with any standard
// library or third-party mode (CCM, GCM, ...) that only needs a fixed
// block size plus Encrypt/Decrypt; this package implements neither mode
// itself.
type Cipher struct {
	rk     []uint32
	rounds int
}

var _ cipher.Block = (*Cipher)(nil)

// New128 creates a LEA-128 cipher from a 16-byte key.
func New128(key []byte) (*Cipher, error) {
	if len(key) != KeySize128 {
		return nil, KeySizeError(len(key))
	}
	return &Cipher{rk: expandKey128(key), rounds: rounds128}, nil
}

// New192 creates a LEA-192 cipher from a 24-byte key.
func New192(key []byte) (*Cipher, error) {
	if len(key) != KeySize192 {
		return nil, KeySizeError(len(key))
	}
	return &Cipher{rk: expandKey192(key), rounds: rounds192}, nil
}

// New256 creates a LEA-256 cipher from a 32-byte key.
func New256(key []byte) (*Cipher, error) {
	if len(key) != KeySize256 {
		return nil, KeySizeError(len(key))
	}
	return &Cipher{rk: expandKey256(key), rounds: rounds256}, nil
}

// NewCipher creates a LEA cipher whose variant is selected by key length
// (16 => LEA-128, 24 => LEA-192, 32 => LEA-256).
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case KeySize128:
		return New128(key)
	case KeySize192:
		return New192(key)
	case KeySize256:
		return New256(key)
	default:
		return nil, KeySizeError(len(key))
	}
}

// BlockSize returns the LEA block size, always 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("lea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lea: output not full block")
	}

	x := [4]uint32{getu32le(src[0:4]), getu32le(src[4:8]), getu32le(src[8:12]), getu32le(src[12:16])}
	encryptBlock(&x, c.rk, c.rounds)
	putu32le(dst[0:4], x[0])
	putu32le(dst[4:8], x[1])
	putu32le(dst[8:12], x[2])
	putu32le(dst[12:16], x[3])
}

// Decrypt decrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("lea: input not full block")
	}
	if len(dst) < BlockSize {
		panic("lea: output not full block")
	}

	x := [4]uint32{getu32le(src[0:4]), getu32le(src[4:8]), getu32le(src[8:12]), getu32le(src[12:16])}
	decryptBlock(&x, c.rk, c.rounds)
	putu32le(dst[0:4], x[0])
	putu32le(dst[4:8], x[1])
	putu32le(dst[8:12], x[2])
	putu32le(dst[12:16], x[3])
}

// Close zeroizes the round-key table. The Cipher must not be used after
// Close returns.
func (c *Cipher) Close() error {
	zeroWords(c.rk)
	return nil
}
