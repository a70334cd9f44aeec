package cryptobreak

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

var (
	// ErrBlockSizeNotFound is returned when the ciphertext length never
	// jumps within AttackConfig.MaxBlockSize extra input bytes.
	ErrBlockSizeNotFound = errors.New("cryptobreak: block size not found")
	// ErrBlockSizeMismatch is returned when the repeated-block distance
	// disagrees with the block size found from ciphertext lengths.
	ErrBlockSizeMismatch = errors.New("cryptobreak: block size mismatch")
	// ErrNotECB is returned when the oracle does not leak repeated blocks.
	ErrNotECB = errors.New("cryptobreak: oracle is not using ECB mode")
)

// AttackConfig tunes the byte-at-a-time attack.
type AttackConfig struct {
	// Filler is the byte used for all attacker-controlled padding.
	Filler byte
	// Workers is the number of goroutines querying the oracle while
	// building each dictionary. Values below 2 query sequentially.
	Workers int
	// MaxBlockSize bounds the block size search.
	MaxBlockSize int
	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

// DefaultAttackConfig queries sequentially and finds block sizes up to 64.
var DefaultAttackConfig = AttackConfig{
	Filler:       'A',
	Workers:      1,
	MaxBlockSize: 64,
}

// Attack recovers the unknown suffix an ECB oracle appends to its input,
// one byte at a time. The oracle must keep the same key and suffix for
// every call; if it does not, the recovered bytes are silently wrong.
type Attack struct {
	oracle OracleFunc
	cfg    AttackConfig
	log    *log.Logger
}

// NewAttack prepares an attack on oracle.
func NewAttack(oracle OracleFunc, cfg AttackConfig) *Attack {
	if cfg.MaxBlockSize <= 0 {
		cfg.MaxBlockSize = DefaultAttackConfig.MaxBlockSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Attack{oracle: oracle, cfg: cfg, log: logger}
}

func (a *Attack) filler(n int) []byte {
	return bytes.Repeat([]byte{a.cfg.Filler}, n)
}

// DiscoverBlockSize grows the input one byte at a time until the
// ciphertext gets longer. The size of the jump is the block size. Since
// padding always adds at least one byte, the input length n that causes
// the jump exactly fills the last block, so the suffix is the original
// ciphertext length minus n.
func (a *Attack) DiscoverBlockSize() (blockSize, suffixLen int, err error) {
	initLen := len(a.oracle([]byte{}))
	for n := 1; n <= a.cfg.MaxBlockSize; n++ {
		if l := len(a.oracle(a.filler(n))); l > initLen {
			blockSize, suffixLen = l-initLen, initLen-n
			a.log.Printf("block size %d, suffix length %d", blockSize, suffixLen)
			return blockSize, suffixLen, nil
		}
	}
	return 0, 0, fmt.Errorf("%w within %d bytes", ErrBlockSizeNotFound, a.cfg.MaxBlockSize)
}

// ConfirmECB checks that four blocks of identical input come back as
// repeated ciphertext blocks, and that the repetition period measured by
// Hamming distance agrees with blockSize.
func (a *Attack) ConfirmECB(blockSize int) error {
	out := a.oracle(a.filler(sampleBlocks * blockSize))
	if len(out)%blockSize != 0 || !DetectECB(out, blockSize) {
		return ErrNotECB
	}
	period, err := EstimateKeySize(out, KeySizeRange{Min: 1, Max: blockSize})
	if err != nil {
		return err
	}
	if period != blockSize {
		return fmt.Errorf("%w: %d by length, %d by distance", ErrBlockSizeMismatch, blockSize, period)
	}
	return nil
}

// RecoverSuffix decrypts up to suffixLen bytes of the unknown suffix. For
// byte i the input is shortened so that byte i is the last byte of a block
// whose other bytes are already known, and that block is looked up in a
// dictionary of all 256 possible endings. Recovery stops when suffixLen
// bytes are known or a block is missing from the dictionary.
//
// When suffixLen is too large the first padding byte, 0x01, still matches
// and the byte after it misses, since the padding then reads 0x02 0x02. On
// a miss a trailing 0x01 is therefore dropped.
func (a *Attack) RecoverSuffix(blockSize, suffixLen int) []byte {
	recovered := make([]byte, 0, suffixLen)
	for len(recovered) < suffixLen {
		b, ok := a.recoverByte(blockSize, recovered)
		if !ok {
			a.log.Printf("no dictionary match at byte %d of %d", len(recovered), suffixLen)
			if n := len(recovered); n > 0 && recovered[n-1] == 0x01 {
				recovered = recovered[:n-1]
			}
			break
		}
		recovered = append(recovered, b)
	}
	a.log.Printf("recovered %d bytes", len(recovered))
	return recovered
}

func (a *Attack) recoverByte(bs int, recovered []byte) (byte, bool) {
	i := len(recovered)
	filler := a.filler(bs - 1 - i%bs)

	// The bs-1 bytes preceding byte i in the oracle's plaintext.
	known := append(append([]byte{}, filler...), recovered...)
	dict := a.dictionary(known[len(known)-(bs-1):], bs)

	blk := i / bs
	out := a.oracle(filler)
	b, ok := dict[string(out[blk*bs:(blk+1)*bs])]
	return b, ok
}

// dictionary maps the first ciphertext block of window | b to b, for every
// byte b.
func (a *Attack) dictionary(window []byte, bs int) map[string]byte {
	dict := make(map[string]byte, 256)
	if a.cfg.Workers < 2 {
		probe := append(append([]byte{}, window...), 0)
		for c := 0; c <= 0xff; c++ {
			probe[bs-1] = byte(c)
			fp := string(a.oracle(probe)[:bs])
			if _, ok := dict[fp]; !ok {
				dict[fp] = byte(c)
			}
		}
		return dict
	}

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		candidates = make(chan byte)
	)
	for w := 0; w < a.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			probe := append(append([]byte{}, window...), 0)
			for c := range candidates {
				probe[bs-1] = c
				fp := string(a.oracle(probe)[:bs])
				mu.Lock()
				if _, ok := dict[fp]; !ok {
					dict[fp] = c
				}
				mu.Unlock()
			}
		}()
	}
	for c := 0; c <= 0xff; c++ {
		candidates <- byte(c)
	}
	close(candidates)
	wg.Wait()
	return dict
}

// Recover runs the whole attack: block size discovery, ECB confirmation and
// suffix recovery.
func (a *Attack) Recover() ([]byte, error) {
	bs, suffixLen, err := a.DiscoverBlockSize()
	if err != nil {
		return nil, fmt.Errorf("block size: %w", err)
	}
	if err := a.ConfirmECB(bs); err != nil {
		return nil, fmt.Errorf("mode: %w", err)
	}
	return a.RecoverSuffix(bs, suffixLen), nil
}
