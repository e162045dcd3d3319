// Package aes256 implements the AES-256 block cipher from FIPS 197.
//
// The cipher operates on single 16-byte blocks; chaining, padding and IV
// handling live in the encryption package. A Cipher is immutable once
// constructed and safe for concurrent use.
package aes256

import "fmt"

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// rounds is the number of rounds for a 256-bit key (Nr).
	rounds = 14
	// keyWords is the key length in 32-bit words (Nk).
	keyWords = 8
	// scheduleWords is the expanded schedule length in 32-bit words.
	scheduleWords = 4 * (rounds + 1)
)

// Cipher holds the expanded round-key schedule for one key. The schedule
// is derived once by NewCipher and never mutated afterwards; key rotation
// means constructing a new Cipher.
type Cipher struct {
	roundKeys [4 * scheduleWords]byte
}

// NewCipher expands a 32-byte key into the 15-round schedule.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("aes256: invalid key size %d, want %d", len(key), KeySize)
	}

	c := &Cipher{}
	c.expandKey(key)

	return c, nil
}

// expandKey implements the FIPS 197 key schedule for Nk=8: every eighth
// word gets RotWord+SubWord+Rcon, the fourth word in between gets SubWord
// only, and each new word is XORed with the word eight positions back.
func (c *Cipher) expandKey(key []byte) {
	copy(c.roundKeys[:KeySize], key)

	for i := keyWords; i < scheduleWords; i++ {
		var temp [4]byte
		copy(temp[:], c.roundKeys[(i-1)*4:])

		switch {
		case i%keyWords == 0:
			t := temp[0]
			temp[0] = sbox[temp[1]] ^ rcon[i/keyWords]
			temp[1] = sbox[temp[2]]
			temp[2] = sbox[temp[3]]
			temp[3] = sbox[t]
		case i%keyWords == 4:
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
		}

		for j := range temp {
			c.roundKeys[i*4+j] = c.roundKeys[(i-keyWords)*4+j] ^ temp[j]
		}
	}
}

// EncryptBlock encrypts exactly one 16-byte block from src into dst.
// dst and src may overlap.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes256: input not a full block")
	}

	state := loadState(src)

	c.addRoundKey(&state, 0)

	for round := 1; round < rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		c.addRoundKey(&state, round)
	}

	subBytes(&state)
	shiftRows(&state)
	c.addRoundKey(&state, rounds)

	storeState(dst, &state)
}

// DecryptBlock decrypts exactly one 16-byte block from src into dst.
// dst and src may overlap.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("aes256: input not a full block")
	}

	state := loadState(src)

	c.addRoundKey(&state, rounds)

	for round := rounds - 1; round > 0; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		c.addRoundKey(&state, round)
		invMixColumns(&state)
	}

	invShiftRows(&state)
	invSubBytes(&state)
	c.addRoundKey(&state, 0)

	storeState(dst, &state)
}

// state is the 4×4 byte matrix of FIPS 197, indexed [row][column].
// Blocks load into it column-major.
type state [4][4]byte

func loadState(src []byte) state {
	var s state

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] = src[col*4+row]
		}
	}

	return s
}

func storeState(dst []byte, s *state) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[col*4+row] = s[row][col]
		}
	}
}

func (c *Cipher) addRoundKey(s *state, round int) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] ^= c.roundKeys[round*BlockSize+col*4+row]
		}
	}
}

func subBytes(s *state) {
	for row := range s {
		for col := range s[row] {
			s[row][col] = sbox[s[row][col]]
		}
	}
}

func invSubBytes(s *state) {
	for row := range s {
		for col := range s[row] {
			s[row][col] = invSbox[s[row][col]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func shiftRows(s *state) {
	for row := 1; row < 4; row++ {
		var rotated [4]byte
		for col := 0; col < 4; col++ {
			rotated[col] = s[row][(col+row)%4]
		}
		s[row] = rotated
	}
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s *state) {
	for row := 1; row < 4; row++ {
		var rotated [4]byte
		for col := 0; col < 4; col++ {
			rotated[(col+row)%4] = s[row][col]
		}
		s[row] = rotated
	}
}

// mixColumns multiplies each column by the MDS matrix {02,03,01,01}.
func mixColumns(s *state) {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		s[1][col] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		s[2][col] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		s[3][col] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

// invMixColumns multiplies each column by the inverse matrix {0e,0b,0d,09}.
func invMixColumns(s *state) {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := s[0][col], s[1][col], s[2][col], s[3][col]

		s[0][col] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		s[1][col] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		s[2][col] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		s[3][col] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
}

// xtime multiplies by x in GF(2^8), reducing modulo x^8+x^4+x^3+x+1.
func xtime(x byte) byte {
	if x&0x80 != 0 {
		return x<<1 ^ 0x1b
	}

	return x << 1
}

// gmul is shift-and-add polynomial multiplication in GF(2^8).
func gmul(a, b byte) byte {
	var p byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		a = xtime(a)
		b >>= 1
	}

	return p
}
