package cryptobreak

// OracleFunc represents a function that returns the encrypted contents of in
// under some secret state.
type OracleFunc func(in []byte) []byte

// keySize is the key length used by the oracles, AES-128 sized.
const keySize = 16

// NewECBOracle returns an oracle computing ECB(in | suffix) under a random
// key that is fixed for the lifetime of the oracle. The oracle is safe for
// concurrent use.
func NewECBOracle(rnd Randomness, e *Engine, suffix []byte) (OracleFunc, error) {
	key := randomBytes(rnd, keySize)
	// Fail now on a key the cipher rejects rather than on every call.
	if _, err := e.cipher(key); err != nil {
		return nil, err
	}
	secret := append([]byte(nil), suffix...)

	return func(in []byte) []byte {
		body := make([]byte, 0, len(in)+len(secret))
		body = append(append(body, in...), secret...)
		out, err := e.EncryptECB(body, key)
		if err != nil {
			panic(err)
		}
		return out
	}, nil
}

// ModeOracle encrypts prefix | in | suffix in either ECB or CBC mode. The
// mode, key, IV and the random 5-10 byte prefix and suffix are chosen once
// when the oracle is built.
type ModeOracle struct {
	engine         *Engine
	mode           CipherMode
	key, iv        []byte
	prefix, suffix []byte
}

// NewModeOracle builds a ModeOracle from rnd.
func NewModeOracle(rnd Randomness, e *Engine) (*ModeOracle, error) {
	o := &ModeOracle{
		engine: e,
		prefix: randomBytes(rnd, rnd.Intn(6)+5),
		suffix: randomBytes(rnd, rnd.Intn(6)+5),
		key:    randomBytes(rnd, keySize),
	}
	c, err := e.cipher(o.key)
	if err != nil {
		return nil, err
	}
	o.iv = randomBytes(rnd, c.BlockSize())
	if rnd.Intn(2) == 0 {
		o.mode = ECB
	} else {
		o.mode = CBC
	}
	return o, nil
}

// Mode returns the mode the oracle encrypts with.
func (o *ModeOracle) Mode() CipherMode {
	return o.mode
}

// Encrypt is the oracle function.
func (o *ModeOracle) Encrypt(in []byte) []byte {
	body := make([]byte, 0, len(o.prefix)+len(in)+len(o.suffix))
	body = append(append(append(body, o.prefix...), in...), o.suffix...)

	var (
		out []byte
		err error
	)
	if o.mode == ECB {
		out, err = o.engine.EncryptECB(body, o.key)
	} else {
		out, err = o.engine.EncryptCBC(body, o.key, o.iv)
	}
	if err != nil {
		panic(err)
	}
	return out
}
