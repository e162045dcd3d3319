package encryption

import "errors"

var (
	// ErrRandomSource is returned when the secure random source cannot
	// produce an IV; encryption is aborted.
	ErrRandomSource = errors.New("random source unavailable")
	// ErrCiphertextLength is returned when decrypt input is shorter than
	// IV plus one block, or not block-aligned.
	ErrCiphertextLength = errors.New("invalid ciphertext length")
	// ErrInvalidPadding is returned when the PKCS#7 padding check fails
	// after decryption, typically a wrong password or a corrupted file.
	ErrInvalidPadding = errors.New("invalid padding")
)
