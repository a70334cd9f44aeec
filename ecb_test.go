package cryptobreak

import (
	"bytes"
	"crypto/aes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectECB(t *testing.T) {
	tests := []struct {
		name      string
		in        []byte
		blocksize int
		want      bool
	}{
		{"empty", nil, 4, false},
		{"distinct", []byte("abcdefghijkl"), 4, false},
		{"adjacent repeat", []byte("abcdabcd"), 4, true},
		{"distant repeat", []byte("abcdefghijklabcd"), 4, true},
		{"offset repeat only", []byte("xabcdabc"), 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectECB(tt.in, tt.blocksize))
		})
	}

	assert.Panics(t, func() { DetectECB([]byte("abcde"), 4) })
}

func TestDetectECBCiphertext(t *testing.T) {
	e := NewEngine(aes.NewCipher)
	key := []byte("YELLOW SUBMARINE")
	plaintext := bytes.Repeat([]byte("YELLOW SUBMARINE"), 2)

	ct, err := e.EncryptECB(plaintext, key)
	require.NoError(t, err)
	assert.True(t, DetectECB(ct, 16))

	ct, err = e.EncryptCBC(plaintext, key, make([]byte, 16))
	require.NoError(t, err)
	assert.False(t, DetectECB(ct, 16))
}

func TestDetectMode(t *testing.T) {
	rnd := rand.New(rand.NewSource(218))
	e := NewEngine(aes.NewCipher)

	seen := map[CipherMode]int{}
	for i := 0; i < 100; i++ {
		o, err := NewModeOracle(rnd, e)
		require.NoError(t, err)
		assert.Equal(t, o.Mode(), DetectMode(o.Encrypt, 16), "oracle %d", i)
		seen[o.Mode()]++
	}
	assert.NotZero(t, seen[ECB])
	assert.NotZero(t, seen[CBC])
}

func TestCipherModeString(t *testing.T) {
	assert.Equal(t, "ECB", ECB.String())
	assert.Equal(t, "CBC", CBC.String())
}
