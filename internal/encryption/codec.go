package encryption

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/toxicbishop/Crypt-Vault/internal/aes256"
	"github.com/toxicbishop/Crypt-Vault/internal/digest"
)

// DeriveKey turns a password into a 32-byte AES-256 key by hashing it
// once with SHA-256. No salt and no iteration count: the scheme is kept
// byte-compatible with existing ciphertexts, and any strengthening would
// be an explicit format change.
func DeriveKey(password string) []byte {
	sum := digest.Sum256([]byte(password))

	return sum[:]
}

// Codec performs AES-256-CBC encryption and decryption with PKCS#7
// padding. It bundles one immutable key schedule with a random source;
// a Codec is constructed once per password and is safe for concurrent
// use across files.
type Codec struct {
	cipher *aes256.Cipher
	random RandomSource
}

// NewCodec derives a key from the password and expands it, using the
// default crypto/rand IV source.
func NewCodec(password string) (*Codec, error) {
	return NewCodecWithRandom(password, CryptoRand())
}

// NewCodecWithRandom is NewCodec with an explicit random source.
func NewCodecWithRandom(password string, random RandomSource) (*Codec, error) {
	cipher, err := aes256.NewCipher(DeriveKey(password))
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &Codec{cipher: cipher, random: random}, nil
}

// Encrypt pads the plaintext, draws a fresh random IV and chains the
// blocks in CBC mode. The output layout is IV ‖ blocks; the IV is not
// secret and is never reused across calls.
func (c *Codec) Encrypt(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, aes256.BlockSize)

	iv := make([]byte, aes256.BlockSize)
	if err := c.random.Fill(iv); err != nil {
		return nil, fmt.Errorf("generating IV: %w", err)
	}

	ciphertext := make([]byte, 0, aes256.BlockSize+len(padded))
	ciphertext = append(ciphertext, iv...)

	prev := make([]byte, aes256.BlockSize)
	copy(prev, iv)

	block := make([]byte, aes256.BlockSize)

	for i := 0; i < len(padded); i += aes256.BlockSize {
		for j := 0; j < aes256.BlockSize; j++ {
			block[j] = padded[i+j] ^ prev[j]
		}

		c.cipher.EncryptBlock(block, block)

		ciphertext = append(ciphertext, block...)
		copy(prev, block)
	}

	return ciphertext, nil
}

// Decrypt validates the layout, reverses the CBC chaining and strips the
// padding. The chain variable follows the original ciphertext blocks,
// not the decrypted ones.
func (c *Codec) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 2*aes256.BlockSize || (len(ciphertext)-aes256.BlockSize)%aes256.BlockSize != 0 {
		return nil, ErrCiphertextLength
	}

	prev := ciphertext[:aes256.BlockSize]
	plaintext := make([]byte, 0, len(ciphertext)-aes256.BlockSize)
	block := make([]byte, aes256.BlockSize)

	for i := aes256.BlockSize; i < len(ciphertext); i += aes256.BlockSize {
		c.cipher.DecryptBlock(block, ciphertext[i:i+aes256.BlockSize])

		for j := 0; j < aes256.BlockSize; j++ {
			block[j] ^= prev[j]
		}

		plaintext = append(plaintext, block...)
		prev = ciphertext[i : i+aes256.BlockSize]
	}

	return pkcs7Unpad(plaintext)
}

// EncryptText encrypts a string and returns the ciphertext as lowercase
// hex, two characters per byte.
func (c *Codec) EncryptText(text string) (string, error) {
	ciphertext, err := c.Encrypt([]byte(text))
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(ciphertext), nil
}

// DecryptText decodes a hex ciphertext and decrypts it back to a string.
func (c *Codec) DecryptText(hexCiphertext string) (string, error) {
	ciphertext, err := hex.DecodeString(strings.TrimSpace(hexCiphertext))
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	plaintext, err := c.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
