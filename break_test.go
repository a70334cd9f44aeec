package cryptobreak

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allBytes contains every byte value, so it is invalid UTF-8 under any
// single-byte key.
func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestBreakSingleByteXOR(t *testing.T) {
	in := decodeHex(t, "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")

	c, err := BreakSingleByteXOR(in, EnglishScorer())
	require.NoError(t, err)
	assert.Equal(t, "Cooking MC's like a pound of bacon", string(c.Plaintext))
	assert.Equal(t, byte('X'), c.Key)
	assert.Greater(t, c.Score, 0.0)
}

func TestBreakSingleByteXORNoCandidate(t *testing.T) {
	_, err := BreakSingleByteXOR(allBytes(), EnglishScorer())
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestBreakSingleByteXORTies(t *testing.T) {
	// Every key decodes the empty string to an equal score; the first wins.
	c, err := BreakSingleByteXOR(nil, EnglishScorer())
	require.NoError(t, err)
	assert.Equal(t, byte(0), c.Key)
	assert.Zero(t, c.Score)
}

func TestDetectSingleByteXOR(t *testing.T) {
	lines := [][]byte{
		allBytes(),
		SingleByteXOR([]byte("zzzz qqqq xxxx"), 0x07),
		SingleByteXOR([]byte("Now that the party is jumping\n"), 0x35),
		decodeHex(t, "0e3647e8592d35514a081243582536ed3de6734059001e3f535ce6271032"),
	}

	c, i, err := DetectSingleByteXOR(lines, EnglishScorer())
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, "Now that the party is jumping\n", string(c.Plaintext))

	_, _, err = DetectSingleByteXOR([][]byte{allBytes()}, EnglishScorer())
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		keySize int
		want    [][]byte
	}{
		{"exact", []byte{1, 2, 3, 4, 5, 6}, 3, [][]byte{{1, 4}, {2, 5}, {3, 6}}},
		{"short tail", []byte{1, 2, 3, 4, 5}, 3, [][]byte{{1, 4}, {2, 5}, {3}}},
		{"single column", []byte{1, 2, 3}, 1, [][]byte{{1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transpose(tt.in, tt.keySize))
		})
	}
}

func TestBreakRepeatingKeyXOR(t *testing.T) {
	plaintext := readFile(t, "testdata/english.txt")
	ciphertext := RepeatingKeyXOR(plaintext, []byte("ICE"))

	key, err := BreakRepeatingKeyXOR(ciphertext, 3, EnglishScorer())
	require.NoError(t, err)
	assert.Equal(t, "ICE", string(key))
}

func TestBreakRepeatingKeyXORColumnFailure(t *testing.T) {
	// Column 0 is text, column 1 can never decode.
	var ciphertext []byte
	for _, b := range allBytes() {
		ciphertext = append(ciphertext, 'a', b)
	}

	_, err := BreakRepeatingKeyXOR(ciphertext, 2, EnglishScorer())
	assert.ErrorIs(t, err, ErrNoCandidate)
	assert.Contains(t, err.Error(), "column 1")

	_, err = BreakRepeatingKeyXOR([]byte("ab"), 3, EnglishScorer())
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestCrackRepeatingKeyXOR(t *testing.T) {
	plaintext := readFile(t, "testdata/english.txt")
	rnd := rand.New(rand.NewSource(6))
	secret := randomBytes(rnd, 11)
	ciphertext := RepeatingKeyXOR(plaintext, secret)

	key, recovered, err := CrackRepeatingKeyXOR(ciphertext, DefaultKeySizeRange, EnglishScorer())
	require.NoError(t, err)
	assert.Equal(t, secret, key)
	assert.Equal(t, string(plaintext), string(recovered))

	_, _, err = CrackRepeatingKeyXOR([]byte("short"), DefaultKeySizeRange, EnglishScorer())
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}
