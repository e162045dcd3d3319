package encryption

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource supplies cryptographically secure random bytes for IV
// generation. Implementations must be safe for repeated and concurrent
// use; platform selection happens here rather than at the call sites.
type RandomSource interface {
	// Fill overwrites b entirely with random bytes, or reports failure.
	Fill(b []byte) error
}

// CryptoRand returns the default RandomSource backed by the operating
// system's CSPRNG via crypto/rand.
func CryptoRand() RandomSource {
	return cryptoRand{}
}

type cryptoRand struct{}

func (cryptoRand) Fill(b []byte) error {
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return nil
}
