package lea

import "encoding/hex"

// Concrete end-to-end test vectors, hex-decoded once at init so the
// individual test files can reference plain []byte values.
var (
	vec128Key = mustHex("0F1E2D3C4B5A69788796A5B4C3D2E1F0")
	vec128PT  = mustHex("101112131415161718191A1B1C1D1E1F")
	vec128CT  = mustHex("9FC84E3528C6C6185532C7A704648BFD")

	vec192Key = mustHex("0F1E2D3C4B5A69788796A5B4C3D2E1F0F0E1D2C3B4A59687")
	vec192PT  = mustHex("202122232425262728292A2B2C2D2E2F")
	vec192CT  = mustHex("6FB95E325AAD1B878CDCF5357674C6F2")

	vec256Key = mustHex("0F1E2D3C4B5A69788796A5B4C3D2E1F0F0E1D2C3B4A5968778695A4B3C2D1E0F")
	vec256PT  = mustHex("303132333435363738393A3B3C3D3E3F")
	vec256CT  = mustHex("D651AFF647B189C13A8900CA27F9E197")

	vecCTRKey   = mustHex("0F1E2D3C4B5A69788796A5B4C3D2E1F0")
	vecCTRNonce = mustHex("0102030405060708090A0B0C0D0E0F10")
	vecCTRPT    = mustHex("1011121314151617" +
		"18191A1B1C1D1E1F" +
		"2021222324252627" +
		"28292A2B2C2D2E2F" +
		"3031323334353637" +
		"38393A3B3C3D3E3F")
	vecCTRCT = mustHex("73B12DA44DFA061399" +
		"0AE8C147875662FB56" +
		"C3EFBFDB23FE2A0113" +
		"8B3A692B4A9C47AE10" +
		"646C38D5BD80BA62F6" +
		"B2A0FB")

	// LEA-128-CCM sanity vector from the spec (nonce size 8). CCM itself is
	// an external collaborator (spec §1) and is not implemented or
	// exercised by this module; kept here so a future CCM wrapper has a
	// known-good vector to validate against.
	vecCCMKey   = mustHex("670FD286DF283C662DB864A681B9AB35")
	vecCCMNonce = mustHex("E59E054A7E8B5840")
	vecCCMPT    = mustHex("0EC526A3BE686C8B")
	vecCCMCT    = mustHex("90B7618D8A50723C")
	vecCCMTag   = mustHex("E3E985F0D9A59DB0B7B4EF63194D62FB")
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
