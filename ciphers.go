package cryptobreak

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/twofish"
)

// ErrUnknownCipher is returned by LookupCipher for an unregistered name.
var ErrUnknownCipher = errors.New("cryptobreak: unknown cipher")

var ciphers = map[string]NewCipherFunc{
	"aes": aes.NewCipher,
	"twofish": func(key []byte) (cipher.Block, error) {
		return twofish.NewCipher(key)
	},
	// 8 byte blocks.
	"blowfish": func(key []byte) (cipher.Block, error) {
		return blowfish.NewCipher(key)
	},
}

// LookupCipher returns the block cipher constructor registered as name.
func LookupCipher(name string) (NewCipherFunc, error) {
	fn, ok := ciphers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCipher, name)
	}
	return fn, nil
}

// Ciphers lists the registered cipher names in sorted order.
func Ciphers() []string {
	names := make([]string, 0, len(ciphers))
	for name := range ciphers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
