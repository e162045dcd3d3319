// Package encryption implements the AES-256-CBC codec and the file
// processor built on it.
//
// The persisted ciphertext layout is IV (16 bytes) followed by one or
// more encrypted 16-byte blocks; a valid ciphertext is therefore at
// least 32 bytes long and block-aligned past the IV. Text mode uses the
// same layout, hex-encoded.
//
// Keys are derived from passwords by a single SHA-256 hash (see
// DeriveKey) and expanded once per Codec. Failures are reported through
// the package sentinels ErrRandomSource, ErrCiphertextLength and
// ErrInvalidPadding; a padding failure is indistinguishable from a wrong
// password by design.
package encryption
