package cryptobreak

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode"
)

// HexToBase64 re-encodes a hex string as standard base64.
func HexToBase64(input string) (string, error) {
	b, err := DecodeHex(input)
	if err != nil {
		return "", err
	}
	return EncodeBase64(b), nil
}

// DecodeHex parses a hex string. Odd lengths and non-hex characters are
// errors.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// EncodeHex returns the lower-case hex encoding of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeBase64 parses standard base64 text. Whitespace such as line breaks
// is ignored and trailing '=' padding is optional.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

// EncodeBase64 returns the padded standard base64 encoding of b.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
