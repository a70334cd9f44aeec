package cryptobreak

import (
	"errors"
	"fmt"
)

// ErrNoCandidate is returned when no key produces decodable text.
var ErrNoCandidate = errors.New("cryptobreak: no decodable candidate")

// Candidate is a scored guess at a single-byte XOR key.
type Candidate struct {
	Score     float64
	Key       byte
	Plaintext []byte
}

// BreakSingleByteXOR tries all 256 single-byte keys against ciphertext and
// returns the one whose plaintext scores highest. On equal scores the
// smaller key wins. Candidates the scorer rejects as non-text are skipped;
// if every key is rejected ErrNoCandidate is returned.
func BreakSingleByteXOR(ciphertext []byte, s Scorer) (Candidate, error) {
	var (
		best  Candidate
		found bool
	)
	// Use an integer as the loop variable to avoid overflow.
	for i := 0; i <= 0xff; i++ {
		candidate := SingleByteXOR(ciphertext, byte(i))
		score, err := s.Score(candidate)
		if errors.Is(err, ErrNotText) {
			continue
		} else if err != nil {
			return Candidate{}, err
		}
		if !found || score > best.Score {
			best = Candidate{Score: score, Key: byte(i), Plaintext: candidate}
			found = true
		}
	}
	if !found {
		return Candidate{}, ErrNoCandidate
	}
	return best, nil
}

// DetectSingleByteXOR finds the line most likely to be single-byte XOR
// encrypted English and returns its best candidate along with its index.
// Lines with no decodable candidate are ignored.
func DetectSingleByteXOR(lines [][]byte, s Scorer) (Candidate, int, error) {
	var (
		best  Candidate
		index = -1
	)
	for i, line := range lines {
		c, err := BreakSingleByteXOR(line, s)
		if errors.Is(err, ErrNoCandidate) {
			continue
		} else if err != nil {
			return Candidate{}, -1, fmt.Errorf("line %d: %w", i, err)
		}
		if index < 0 || c.Score > best.Score {
			best, index = c, i
		}
	}
	if index < 0 {
		return Candidate{}, -1, ErrNoCandidate
	}
	return best, index, nil
}

// Transpose cuts ciphertext into keySize blocks and makes a column out of
// the first byte of every block, another out of the second byte, and so on.
// A short final block only contributes to the leading columns.
func Transpose(ciphertext []byte, keySize int) [][]byte {
	blocks := Blocks(ciphertext, keySize)
	columns := make([][]byte, keySize)
	for c := range columns {
		columns[c] = make([]byte, 0, len(blocks))
		for _, b := range blocks {
			if c < len(b) {
				columns[c] = append(columns[c], b[c])
			}
		}
	}
	return columns
}

// BreakRepeatingKeyXOR recovers a repeating XOR key of a known size. Every
// key position is broken independently as a single-byte XOR.
func BreakRepeatingKeyXOR(ciphertext []byte, keySize int, s Scorer) ([]byte, error) {
	if keySize <= 0 || keySize > len(ciphertext) {
		return nil, fmt.Errorf("break repeating key: key size %d: %w", keySize, ErrCiphertextTooShort)
	}
	key := make([]byte, keySize)
	for i, column := range Transpose(ciphertext, keySize) {
		c, err := BreakSingleByteXOR(column, s)
		if err != nil {
			return nil, fmt.Errorf("break repeating key: column %d: %w", i, err)
		}
		key[i] = c.Key
	}
	return key, nil
}

// CrackRepeatingKeyXOR estimates the key size within r, recovers the key
// and returns it together with the decrypted plaintext.
func CrackRepeatingKeyXOR(ciphertext []byte, r KeySizeRange, s Scorer) (key, plaintext []byte, err error) {
	keySize, err := EstimateKeySize(ciphertext, r)
	if err != nil {
		return nil, nil, err
	}
	key, err = BreakRepeatingKeyXOR(ciphertext, keySize, s)
	if err != nil {
		return nil, nil, err
	}
	return key, RepeatingKeyXOR(ciphertext, key), nil
}
