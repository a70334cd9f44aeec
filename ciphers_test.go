package cryptobreak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCipher(t *testing.T) {
	tests := []struct {
		name      string
		blockSize int
	}{
		{"aes", 16},
		{"blowfish", 8},
		{"twofish", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := LookupCipher(tt.name)
			require.NoError(t, err)
			c, err := fn([]byte("YELLOW SUBMARINE"))
			require.NoError(t, err)
			assert.Equal(t, tt.blockSize, c.BlockSize())
		})
	}

	_, err := LookupCipher("rot13")
	assert.ErrorIs(t, err, ErrUnknownCipher)
	assert.Contains(t, err.Error(), "rot13")
}

func TestCiphers(t *testing.T) {
	assert.Equal(t, []string{"aes", "blowfish", "twofish"}, Ciphers())
}
