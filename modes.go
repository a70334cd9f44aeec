package cryptobreak

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

var (
	// ErrNotBlockAligned is returned when ciphertext is not a whole number
	// of blocks.
	ErrNotBlockAligned = errors.New("cryptobreak: input is not a multiple of the block size")
	// ErrInvalidIV is returned when the IV is not exactly one block long.
	ErrInvalidIV = errors.New("cryptobreak: IV must be one block long")
)

// NewCipherFunc creates a fixed-block cipher keyed with key, such as
// aes.NewCipher.
type NewCipherFunc func(key []byte) (cipher.Block, error)

// Engine runs the ECB and CBC chaining modes over a block cipher. It never
// looks inside the cipher itself.
type Engine struct {
	newCipher NewCipherFunc
}

// NewEngine returns an Engine that keys its block cipher with fn.
func NewEngine(fn NewCipherFunc) *Engine {
	return &Engine{newCipher: fn}
}

func (e *Engine) cipher(key []byte) (cipher.Block, error) {
	c, err := e.newCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptobreak: key: %w", err)
	}
	return c, nil
}

// EncryptECB pads plaintext and encrypts every block independently.
func (e *Engine) EncryptECB(plaintext, key []byte) ([]byte, error) {
	c, err := e.cipher(key)
	if err != nil {
		return nil, err
	}
	body := Pad(plaintext, c.BlockSize())
	encryptECB(body, body, c)
	return body, nil
}

// DecryptECB decrypts every block independently and strips the padding.
func (e *Engine) DecryptECB(ciphertext, key []byte) ([]byte, error) {
	c, err := e.cipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%c.BlockSize() != 0 {
		return nil, fmt.Errorf("decrypt ECB: %d bytes: %w", len(ciphertext), ErrNotBlockAligned)
	}
	body := make([]byte, len(ciphertext))
	decryptECB(body, ciphertext, c)
	return Unpad(body), nil
}

// EncryptCBC pads plaintext and encrypts it in CBC mode. iv is not modified.
func (e *Engine) EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	c, err := e.cipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != c.BlockSize() {
		return nil, fmt.Errorf("encrypt CBC: %d byte IV: %w", len(iv), ErrInvalidIV)
	}
	body := Pad(plaintext, c.BlockSize())
	encryptCBC(body, body, iv, c)
	return body, nil
}

// DecryptCBC decrypts CBC ciphertext and strips the padding. iv is not
// modified.
func (e *Engine) DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	c, err := e.cipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != c.BlockSize() {
		return nil, fmt.Errorf("decrypt CBC: %d byte IV: %w", len(iv), ErrInvalidIV)
	}
	if len(ciphertext)%c.BlockSize() != 0 {
		return nil, fmt.Errorf("decrypt CBC: %d bytes: %w", len(ciphertext), ErrNotBlockAligned)
	}
	body := make([]byte, len(ciphertext))
	decryptCBC(body, ciphertext, iv, c)
	return Unpad(body), nil
}

func checkBlocks(out, in []byte, bs int) {
	if len(out) != len(in) {
		panic("Unequal length buffers")
	}
	if len(in)%bs != 0 {
		panic("Input not a multiple of the block size")
	}
}

func encryptECB(out, in []byte, cipher cipher.Block) {
	bs := cipher.BlockSize()
	checkBlocks(out, in, bs)

	for i := 0; i < len(in); i += bs {
		cipher.Encrypt(out[i:i+bs], in[i:i+bs])
	}
}

func decryptECB(out, in []byte, cipher cipher.Block) {
	bs := cipher.BlockSize()
	checkBlocks(out, in, bs)

	for i := 0; i < len(in); i += bs {
		cipher.Decrypt(out[i:i+bs], in[i:i+bs])
	}
}

// out and in may be the same buffer.
func encryptCBC(out, in, iv []byte, cipher cipher.Block) {
	bs := cipher.BlockSize()
	checkBlocks(out, in, bs)
	if len(iv) != bs {
		panic("IV incorrect length")
	}

	prev := iv
	for i := 0; i < len(in); i += bs {
		scratch := XOR(in[i:i+bs], prev)
		cipher.Encrypt(out[i:i+bs], scratch)
		prev = out[i : i+bs]
	}
}

// out and in may be the same buffer.
func decryptCBC(out, in, iv []byte, cipher cipher.Block) {
	bs := cipher.BlockSize()
	checkBlocks(out, in, bs)
	if len(iv) != bs {
		panic("IV incorrect length")
	}

	prev := make([]byte, bs)
	copy(prev, iv)
	block := make([]byte, bs)
	for i := 0; i < len(in); i += bs {
		// Keep the ciphertext block before out overwrites it.
		copy(block, in[i:i+bs])
		cipher.Decrypt(out[i:i+bs], block)
		copy(out[i:i+bs], XOR(out[i:i+bs], prev))
		copy(prev, block)
	}
}
