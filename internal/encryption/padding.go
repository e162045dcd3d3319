package encryption

import (
	"bytes"

	"github.com/toxicbishop/Crypt-Vault/internal/aes256"
)

// pkcs7Pad pads data to a multiple of the block size. The pad length is
// always in [1,16]: already-aligned input receives a full padding block.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padText := bytes.Repeat([]byte{byte(padding)}, padding)

	return append(data, padText...)
}

// pkcs7Unpad removes PKCS#7 padding. It returns ErrInvalidPadding unless
// the input is non-empty and block-aligned, the final byte p is in [1,16],
// and the last p bytes all equal p.
func pkcs7Unpad(data []byte) ([]byte, error) {
	length := len(data)
	if length == 0 || length%aes256.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padding := int(data[length-1])
	if padding < 1 || padding > aes256.BlockSize {
		return nil, ErrInvalidPadding
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, ErrInvalidPadding
		}
	}

	return data[:length-padding], nil
}
