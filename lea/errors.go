package lea

import "fmt"

// KeySizeError reports an invalid key length passed to a constructor.
// LEA keys must be 16, 24, or 32 bytes (LEA-128/192/256).
type KeySizeError int

// Error returns the error message for KeySizeError.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("lea: invalid key size %d, key must be 16, 24, or 32 bytes", int(k))
}

// NonceSizeError reports an invalid nonce length passed to NewCTR.
// The CTR nonce doubles as the initial counter and must be exactly
// one block (16 bytes) long.
type NonceSizeError int

// Error returns the error message for NonceSizeError.
func (n NonceSizeError) Error() string {
	return fmt.Sprintf("lea: invalid nonce size %d, nonce must be %d bytes", int(n), BlockSize)
}
