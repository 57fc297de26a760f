// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS 180-4.
//
// SHA-1 is cryptographically broken and should only be used for checksum
// compatibility with existing tools and file formats.
package sha1

import (
	"encoding/binary"

	"github.com/guilt/refsum/pkg/bitops"
)

// Size of a SHA-1 digest in bytes.
const Size = 20

// BlockSize of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

// Round constants, one per quartile of the 80 rounds.
const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) [Size]byte {
	state := [5]uint32{init0, init1, init2, init3, init4}
	length := uint64(len(data))

	for len(data) >= BlockSize {
		compress(&state, data[:BlockSize])
		data = data[BlockSize:]
	}

	// Pad with a 1 bit, zeros to 56 mod 64, then the bit length big-endian.
	var tmp [2 * BlockSize]byte
	n := copy(tmp[:], data)
	tmp[n] = 0x80
	pad := BlockSize
	if n >= BlockSize-8 {
		pad = 2 * BlockSize
	}
	binary.BigEndian.PutUint64(tmp[pad-8:], length<<3)
	for off := 0; off < pad; off += BlockSize {
		compress(&state, tmp[off:off+BlockSize])
	}

	var digest [Size]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(digest[i*4:], word)
	}
	return digest
}

// compress applies the 80-round compression function to one block.
func compress(state *[5]uint32, block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bitops.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = k0
		case i < 40:
			f = b ^ c ^ d
			k = k1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}
		t := bitops.RotateLeft32(a, 5) + f + e + w[i] + k
		a, b, c, d, e = t, a, bitops.RotateLeft32(b, 30), c, d
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
}
