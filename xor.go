package cryptobreak

import (
	"math/bits"
)

func XOR(a, b []byte) []byte {
	if len(a) != len(b) {
		panic("Unequal length buffers")
	}
	x := make([]byte, len(a))
	for i := range a {
		x[i] = a[i] ^ b[i]
	}
	return x
}

func SingleByteXOR(a []byte, b byte) []byte {
	x := make([]byte, len(a))
	for i := range a {
		x[i] = a[i] ^ b
	}
	return x
}

func RepeatingKeyXOR(in []byte, key []byte) []byte {
	if len(key) == 0 {
		panic("Empty key")
	}
	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ key[i%len(key)]
	}
	return out
}

// HammingDistance computes the number of differing bits between two byte
// arrays.
func HammingDistance(a, b []byte) int {
	if len(a) != len(b) {
		panic("Unequal length inputs")
	}
	distance := 0
	for i := range a {
		distance += bits.OnesCount8(a[i] ^ b[i])
	}

	return distance
}

// The chunks alias data.
func Blocks(data []byte, size int) [][]byte {
	if size <= 0 {
		panic("Invalid block size")
	}
	blocks := make([][]byte, 0, (len(data)+size-1)/size)
	for len(data) > size {
		blocks = append(blocks, data[:size:size])
		data = data[size:]
	}
	if len(data) > 0 {
		blocks = append(blocks, data)
	}
	return blocks
}
