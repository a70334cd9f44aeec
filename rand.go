package cryptobreak

import (
	crand "crypto/rand"
	"math/big"
)

// Randomness supplies the random keys, IVs and lengths used to build
// oracles. A *math/rand.Rand satisfies it, which makes oracles reproducible
// from a seed.
type Randomness interface {
	Read(p []byte) (n int, err error)
	// Intn returns a number in [0, n).
	Intn(n int) int
}

type CryptoRandomness struct{}

func (CryptoRandomness) Read(p []byte) (int, error) {
	return crand.Read(p)
}

func (CryptoRandomness) Intn(n int) int {
	choice, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("Not enough randomness")
	}
	return int(choice.Int64())
}

func randomBytes(rnd Randomness, n int) []byte {
	buf := make([]byte, n)
	if _, err := rnd.Read(buf); err != nil {
		panic(err)
	}
	return buf
}
