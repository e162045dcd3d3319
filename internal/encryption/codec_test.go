package encryption_test

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/toxicbishop/Crypt-Vault/internal/aes256"
	"github.com/toxicbishop/Crypt-Vault/internal/encryption"
)

// fixedRandom always fills with the same bytes, making encryption
// deterministic for cross-checks against the standard library.
type fixedRandom struct{ b byte }

func (f fixedRandom) Fill(dst []byte) error {
	for i := range dst {
		dst[i] = f.b
	}

	return nil
}

// failingRandom simulates an unavailable random source.
type failingRandom struct{}

func (failingRandom) Fill([]byte) error {
	return encryption.ErrRandomSource
}

func TestDeriveKey(t *testing.T) {
	t.Parallel()

	key := encryption.DeriveKey("password")

	const want = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got := hex.EncodeToString(key); got != want {
		t.Errorf("DeriveKey(\"password\") = %s, want %s", got, want)
	}
}

// TestRoundTrip encrypts and decrypts byte sequences of assorted lengths,
// including empty input.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodec("correct horse battery staple")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	rng := rand.New(rand.NewSource(7)) //nolint:gosec // deterministic test data

	for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 33, 255, 1000} {
		plaintext := make([]byte, size)
		rng.Read(plaintext)

		ciphertext, err := codec.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%d bytes): %v", size, err)
		}

		wantLen := aes256.BlockSize + (size/aes256.BlockSize+1)*aes256.BlockSize
		if len(ciphertext) != wantLen {
			t.Fatalf("Encrypt(%d bytes) produced %d bytes, want %d", size, len(ciphertext), wantLen)
		}

		decrypted, err := codec.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt(%d bytes): %v", size, err)
		}

		if !bytes.Equal(decrypted, plaintext) {
			t.Fatalf("round trip mismatch at length %d", size)
		}
	}
}

// TestEncryptAgainstStandardLibrary pins the full pipeline (key
// derivation, padding, chaining) against crypto/cipher CBC with an
// injected deterministic IV.
func TestEncryptAgainstStandardLibrary(t *testing.T) {
	t.Parallel()

	const password = "hunter2"

	codec, err := encryption.NewCodecWithRandom(password, fixedRandom{b: 0x5a})
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	plaintext := []byte("attack at dawn, bring snacks")

	got, err := codec.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	key := sha256.Sum256([]byte(password))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		t.Fatalf("creating reference cipher: %v", err)
	}

	iv := bytes.Repeat([]byte{0x5a}, aes256.BlockSize)

	padLen := aes256.BlockSize - len(plaintext)%aes256.BlockSize
	padded := append(append([]byte(nil), plaintext...), bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	want := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(want, padded)
	want = append(iv, want...)

	if !bytes.Equal(got, want) {
		t.Errorf("Encrypt = %x, want %x", got, want)
	}
}

// TestNonDeterministicIVs: identical inputs must yield distinct
// ciphertexts that both decrypt to the same plaintext.
func TestNonDeterministicIVs(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodec("swordfish")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	plaintext := []byte("same message twice")

	first, err := codec.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("first Encrypt: %v", err)
	}

	second, err := codec.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("second Encrypt: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("two encryptions produced identical ciphertexts")
	}

	for _, ciphertext := range [][]byte{first, second} {
		decrypted, err := codec.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}

		if !bytes.Equal(decrypted, plaintext) {
			t.Error("decryption did not recover the plaintext")
		}
	}
}

// TestDecryptRejectsBadLengths covers the wrong-length taxonomy.
func TestDecryptRejectsBadLengths(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodec("pw")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	for _, size := range []int{0, 1, 16, 31, 33, 47} {
		if _, err := codec.Decrypt(make([]byte, size)); !errors.Is(err, encryption.ErrCiphertextLength) {
			t.Errorf("Decrypt(%d bytes) = %v, want ErrCiphertextLength", size, err)
		}
	}
}

// TestTamperSensitivity flips every byte of a valid ciphertext in turn;
// decryption must fail or produce a different plaintext, never silently
// return the original.
func TestTamperSensitivity(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodec("integrity matters")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	plaintext := []byte("0123456789abcdef0123456789abcdef tail")

	ciphertext, err := codec.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	for i := range ciphertext {
		tampered := append([]byte(nil), ciphertext...)
		tampered[i] ^= 0x01

		decrypted, err := codec.Decrypt(tampered)
		if err != nil {
			continue // rejected outright, which is fine
		}

		if bytes.Equal(decrypted, plaintext) {
			t.Fatalf("flipping byte %d went unnoticed", i)
		}
	}
}

// TestWrongPassword: decrypting with another key must not recover the
// plaintext.
func TestWrongPassword(t *testing.T) {
	t.Parallel()

	encryptor, err := encryption.NewCodec("right password")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	decryptor, err := encryption.NewCodec("wrong password")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	plaintext := []byte("for your eyes only")

	ciphertext, err := encryptor.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	decrypted, err := decryptor.Decrypt(ciphertext)
	if err == nil && bytes.Equal(decrypted, plaintext) {
		t.Error("wrong password recovered the plaintext")
	}
}

// TestRandomSourceFailure: encryption aborts cleanly when no IV can be
// produced.
func TestRandomSourceFailure(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodecWithRandom("pw", failingRandom{})
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	if _, err := codec.Encrypt([]byte("data")); !errors.Is(err, encryption.ErrRandomSource) {
		t.Errorf("Encrypt with failing source = %v, want ErrRandomSource", err)
	}
}

// TestTextRoundTrip exercises the hex text mode.
func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodec("text mode")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	const message = "héllo, wörld"

	encoded, err := codec.EncryptText(message)
	if err != nil {
		t.Fatalf("EncryptText: %v", err)
	}

	for _, r := range encoded {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			t.Fatalf("ciphertext contains non-lowercase-hex character %q", r)
		}
	}

	decoded, err := codec.DecryptText(encoded)
	if err != nil {
		t.Fatalf("DecryptText: %v", err)
	}

	if decoded != message {
		t.Errorf("DecryptText = %q, want %q", decoded, message)
	}
}

// TestDecryptTextRejectsInvalidHex covers non-hex input to text mode.
func TestDecryptTextRejectsInvalidHex(t *testing.T) {
	t.Parallel()

	codec, err := encryption.NewCodec("pw")
	if err != nil {
		t.Fatalf("creating codec: %v", err)
	}

	if _, err := codec.DecryptText("not hex at all"); err == nil {
		t.Error("DecryptText accepted invalid hex")
	}
}
