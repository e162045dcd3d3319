// Package digest implements the SHA-256 hash function from FIPS 180-4.
//
// The implementation is deliberately self-contained: the same digest is
// used both for file hashing and as the password-to-key derivation step,
// and the ciphertext format depends on it being byte-exact.
package digest

import (
	"encoding/binary"
	"math/bits"
)

// Size is the length of a SHA-256 digest in bytes.
const Size = 32

// blockSize is the compression function input length in bytes.
const blockSize = 64

// k holds the 64 round constants (first 32 bits of the fractional parts
// of the cube roots of the first 64 primes).
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sum256 returns the SHA-256 digest of data. It is a pure function with
// no retained state.
func Sum256(data []byte) [Size]byte {
	h := [8]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}

	msg := pad(data)
	for off := 0; off < len(msg); off += blockSize {
		compress(&h, msg[off:off+blockSize])
	}

	var sum [Size]byte
	for i, word := range h {
		binary.BigEndian.PutUint32(sum[i*4:], word)
	}

	return sum
}

// pad appends the Merkle–Damgård strengthening: a 0x80 byte, zeros up to
// 56 mod 64, then the original length in bits as a 64-bit big-endian value.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	msg := make([]byte, len(data), len(data)+blockSize+8)
	copy(msg, data)
	msg = append(msg, 0x80)

	for len(msg)%blockSize != 56 {
		msg = append(msg, 0x00)
	}

	var length [8]byte
	binary.BigEndian.PutUint64(length[:], bitLen)

	return append(msg, length[:]...)
}

// compress folds one 64-byte block into the running hash state.
func compress(h *[8]uint32, block []byte) {
	var w [64]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	for i := 16; i < 64; i++ {
		w[i] = gamma1(w[i-2]) + w[i-7] + gamma0(w[i-15]) + w[i-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		t1 := hh + sigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := sigma0(a) + maj(a, b, c)
		hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

func rotr(x uint32, n int) uint32 { return bits.RotateLeft32(x, -n) }

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func sigma0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }
func sigma1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }
func gamma0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3) }
func gamma1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10) }
