package cryptobreak

import (
	"bytes"
)

// Pad returns a copy of data padded up to the next multiple of blocksize.
// Every pad byte holds the number of pad bytes added. Padding is always
// added: already aligned input gets a whole extra block.
func Pad(data []byte, blocksize int) []byte {
	if blocksize < 1 || blocksize > 255 {
		panic("Cannot represent padding amount in a byte")
	}
	pad := blocksize - (len(data) % blocksize)
	out := make([]byte, len(data), len(data)+pad)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(pad)}, pad)...)
}

// Unpad strips as many trailing bytes as the value of the last byte. The
// pad bytes themselves are not checked. A count longer than the data
// leaves nothing.
func Unpad(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	n := len(data) - int(data[len(data)-1])
	if n < 0 {
		n = 0
	}
	out := make([]byte, n)
	copy(out, data)
	return out
}
