// Package sha3 implements the SHA-3 fixed-output hashes and the SHAKE
// extendable-output functions as defined in FIPS 202, built on the
// Keccak-f[1600] permutation and a byte-oriented sponge.
package sha3

import "encoding/binary"

// Digest sizes in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// Sponge rates in bytes. Rate plus capacity is always 200 bytes (1600 bits);
// a larger capacity trades throughput for security margin.
const (
	Rate224      = 144
	Rate256      = 136
	Rate384      = 104
	Rate512      = 72
	RateShake128 = 168
	RateShake256 = 136
)

// Domain-separation suffixes appended to the message ahead of the sponge
// padding, distinguishing SHA-3 from SHAKE on the shared permutation.
const (
	suffixSHA3  = 0x06
	suffixShake = 0x1f
)

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) [Size224]byte {
	var digest [Size224]byte
	copy(digest[:], sponge(Rate224, suffixSHA3, data, Size224))
	return digest
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	var digest [Size256]byte
	copy(digest[:], sponge(Rate256, suffixSHA3, data, Size256))
	return digest
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) [Size384]byte {
	var digest [Size384]byte
	copy(digest[:], sponge(Rate384, suffixSHA3, data, Size384))
	return digest
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	var digest [Size512]byte
	copy(digest[:], sponge(Rate512, suffixSHA3, data, Size512))
	return digest
}

// SumShake128 returns n bytes of SHAKE128 output for data.
// n must not be negative.
func SumShake128(data []byte, n int) []byte {
	return sponge(RateShake128, suffixShake, data, n)
}

// SumShake256 returns n bytes of SHAKE256 output for data.
// n must not be negative.
func SumShake256(data []byte, n int) []byte {
	return sponge(RateShake256, suffixShake, data, n)
}

// sponge absorbs data at the given rate with the given domain suffix, then
// squeezes n bytes of output.
func sponge(rate int, suffix byte, data []byte, n int) []byte {
	if n < 0 {
		panic("sha3: negative output length")
	}

	// Multi-rate padding: the suffix, zeros to a rate multiple, and a final
	// 1 bit. When only one byte of room is left the suffix and the final bit
	// share it.
	padded := make([]byte, len(data)+rate-len(data)%rate)
	copy(padded, data)
	padded[len(data)] = suffix
	padded[len(padded)-1] |= 0x80

	var a state
	for off := 0; off < len(padded); off += rate {
		a.xorIn(padded[off : off+rate])
		a.permute()
	}

	out := make([]byte, n)
	for off := 0; off < n; off += rate {
		chunk := out[off:]
		if len(chunk) > rate {
			chunk = chunk[:rate]
		}
		a.copyOut(chunk)
		if off+rate < n {
			a.permute()
		}
	}
	return out
}

// xorIn absorbs one rate-sized block into the front of the state. The state
// serializes lane-major (lane index x+5y), little-endian per lane.
func (a *state) xorIn(block []byte) {
	for i := 0; i < len(block)/8; i++ {
		a[i%5][i/5] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
}

// copyOut serializes the front of the state into out, truncating the final
// lane as needed.
func (a *state) copyOut(out []byte) {
	var lane [8]byte
	for i := 0; i*8 < len(out); i++ {
		binary.LittleEndian.PutUint64(lane[:], a[i%5][i/5])
		copy(out[i*8:], lane[:])
	}
}
