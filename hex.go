package oid

import (
	"encoding/hex"
	"fmt"
)

// encodeHex renders b as lowercase hex, two characters per byte.
func encodeHex(b []byte) string { return hex.EncodeToString(b) }

// decodeHexInto decodes s into dst, which must be exactly len(s)/2 bytes.
//
// Only lowercase digits are accepted: the display form is lowercase, and an
// id must have exactly one textual spelling.
func decodeHexInto(dst []byte, s string) error {
	if len(s) != 2*len(dst) {
		return fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidLength, 2*len(dst), len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%w: byte %q at offset %d", ErrInvalidHex, c, i)
		}
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return nil
}
