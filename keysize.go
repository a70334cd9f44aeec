package cryptobreak

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrCiphertextTooShort is returned when there is not enough ciphertext
	// to evaluate any candidate key size.
	ErrCiphertextTooShort = errors.New("cryptobreak: ciphertext too short")
	// ErrInvalidKeySizeRange is returned for an empty or non-positive range.
	ErrInvalidKeySizeRange = errors.New("cryptobreak: invalid key size range")
)

// sampleBlocks is the number of leading blocks compared for each key size.
const sampleBlocks = 4

// KeySizeRange is the inclusive range of key sizes to search.
type KeySizeRange struct {
	Min, Max int
}

// DefaultKeySizeRange covers the usual repeating XOR key lengths.
var DefaultKeySizeRange = KeySizeRange{Min: 2, Max: 40}

// KeySize is a candidate key size and its normalized edit distance.
type KeySize struct {
	Size     int
	Distance float64
}

// RankKeySizes scores every key size in r by the Hamming distance between
// all ordered pairs of the first four keysize blocks, divided by the key
// size. Sizes needing more than len(ciphertext) bytes are skipped. The
// result is ordered best (smallest distance) first; ties keep the smaller
// size first.
func RankKeySizes(ciphertext []byte, r KeySizeRange) ([]KeySize, error) {
	if r.Min < 1 || r.Max < r.Min {
		return nil, fmt.Errorf("key size estimation: %d..%d: %w", r.Min, r.Max, ErrInvalidKeySizeRange)
	}

	var results []KeySize
	for keysize := r.Min; keysize <= r.Max; keysize++ {
		if len(ciphertext) < sampleBlocks*keysize {
			continue
		}
		var blocks [sampleBlocks][]byte
		for i := range blocks {
			blocks[i] = ciphertext[i*keysize : (i+1)*keysize]
		}
		dist := 0
		for i := range blocks {
			for j := range blocks {
				dist += HammingDistance(blocks[i], blocks[j])
			}
		}
		results = append(results, KeySize{keysize, float64(dist) / float64(keysize)})
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("key size estimation: %d bytes: %w", len(ciphertext), ErrCiphertextTooShort)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return results, nil
}

// EstimateKeySize returns the most likely repeating XOR key size in r.
func EstimateKeySize(ciphertext []byte, r KeySizeRange) (int, error) {
	results, err := RankKeySizes(ciphertext, r)
	if err != nil {
		return 0, err
	}
	return results[0].Size, nil
}
