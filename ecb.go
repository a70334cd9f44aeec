package cryptobreak

import (
	"bytes"
)

type CipherMode int

const (
	ECB CipherMode = iota
	CBC
)

func (m CipherMode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	}
	return "CipherMode(?)"
}

// DetectECB reports whether any blocksize block of data appears more than
// once.
func DetectECB(data []byte, blocksize int) bool {
	if blocksize <= 0 || len(data)%blocksize != 0 {
		panic("Data not a multiple of the block size")
	}
	seen := make(map[string]struct{})
	for i := 0; i < len(data); i += blocksize {
		cand := string(data[i : i+blocksize])
		if _, ok := seen[cand]; ok {
			return true
		}
		seen[cand] = struct{}{}
	}
	return false
}

// DetectMode feeds the oracle enough identical bytes to fill two aligned
// blocks.
func DetectMode(oracle OracleFunc, blocksize int) CipherMode {
	in := bytes.Repeat([]byte{'A'}, 3*blocksize+blocksize-1)
	if DetectECB(oracle(in), blocksize) {
		return ECB
	}
	return CBC
}
