// Package hexenc converts digests to and from hexadecimal text.
//
// Encoded text is exactly two characters per byte, with no terminator or
// separators.
package hexenc

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrLength is returned by Decode when the text is not exactly twice the
// requested number of bytes.
var ErrLength = errors.New("hexenc: text length must be twice the output length")

// ErrOddLength is returned by DecodeAny when the text has an odd number of
// characters.
var ErrOddLength = errors.New("hexenc: text has an odd number of characters")

// Encode returns the lowercase hex form of b.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeUpper returns the uppercase hex form of b.
func EncodeUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Decode parses exactly 2*n hex characters of either case into n bytes.
func Decode(s string, n int) ([]byte, error) {
	if n < 0 || len(s) != 2*n {
		return nil, ErrLength
	}
	out := make([]byte, n)
	if _, err := hex.Decode(out, []byte(s)); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAny parses hex text of any even length.
func DecodeAny(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	return Decode(s, len(s)/2)
}
