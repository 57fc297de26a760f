// Package md5 implements the MD5 message-digest algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken and should only be used for checksum
// compatibility with existing tools and file formats.
package md5

import (
	"encoding/binary"

	"github.com/guilt/refsum/pkg/bitops"
)

// Size of an MD5 digest in bytes.
const Size = 16

// BlockSize of MD5 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// sine holds the 64 additive constants T[i] = floor(2^32 * abs(sin(i+1))).
var sine = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shifts holds the per-step rotate amounts, sixteen per round.
var shifts = [64]uint{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	state := [4]uint32{init0, init1, init2, init3}
	length := uint64(len(data))

	for len(data) >= BlockSize {
		compress(&state, data[:BlockSize])
		data = data[BlockSize:]
	}

	// Pad with a 1 bit, zeros to 56 mod 64, then the bit length little-endian.
	var tmp [2 * BlockSize]byte
	n := copy(tmp[:], data)
	tmp[n] = 0x80
	pad := BlockSize
	if n >= BlockSize-8 {
		pad = 2 * BlockSize
	}
	binary.LittleEndian.PutUint64(tmp[pad-8:], length<<3)
	for off := 0; off < pad; off += BlockSize {
		compress(&state, tmp[off:off+BlockSize])
	}

	var digest [Size]byte
	for i, word := range state {
		binary.LittleEndian.PutUint32(digest[i*4:], word)
	}
	return digest
}

// compress applies the 64-step compression function to one block.
func compress(state *[4]uint32, block []byte) {
	var m [16]uint32
	for i := range m {
		m[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}
		a, b, c, d = d, b+bitops.RotateLeft32(a+f+m[g]+sine[i], shifts[i]), b, c
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
}
