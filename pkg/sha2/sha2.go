// Package sha2 implements the SHA-2 family (SHA-224, SHA-256, SHA-384 and
// SHA-512) as defined in FIPS 180-4.
//
// One compression core serves both word widths; the 32-bit and 64-bit
// instantiations differ only in their parameter blocks, and the truncated
// variants differ only in initial vector and output length.
package sha2

import (
	"encoding/binary"

	"github.com/guilt/refsum/pkg/bitops"
)

// Digest sizes in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// Block sizes in bytes.
const (
	BlockSize256 = 64
	BlockSize512 = 128
)

// word constrains the compression core to the two SHA-2 word widths.
type word interface {
	~uint32 | ~uint64
}

// rotations holds the three amounts of a Σ function (rotate, rotate, rotate)
// or a σ schedule function (rotate, rotate, shift).
type rotations [3]uint

// params fixes everything that distinguishes one word width from the other.
// The 224/384 variants reuse these with their own initial vectors.
type params[W word] struct {
	blockSize int
	wordSize  int
	lenSize   int // width of the trailing bit-length field in bytes
	rounds    int
	k         []W
	sig0      rotations
	sig1      rotations
	sum0      rotations
	sum1      rotations
	rotr      func(W, uint) W
}

var params256 = &params[uint32]{
	blockSize: BlockSize256,
	wordSize:  4,
	lenSize:   8,
	rounds:    64,
	k:         k256[:],
	sig0:      rotations{7, 18, 3},
	sig1:      rotations{17, 19, 10},
	sum0:      rotations{2, 13, 22},
	sum1:      rotations{6, 11, 25},
	rotr:      bitops.RotateRight32,
}

var params512 = &params[uint64]{
	blockSize: BlockSize512,
	wordSize:  8,
	lenSize:   16,
	rounds:    80,
	k:         k512[:],
	sig0:      rotations{1, 8, 7},
	sig1:      rotations{19, 61, 6},
	sum0:      rotations{28, 34, 39},
	sum1:      rotations{14, 18, 41},
	rotr:      bitops.RotateRight64,
}

// Sum224 returns the SHA-224 digest of data: the full SHA-256 compression with
// the SHA-224 initial vector, truncated to seven words at serialization.
func Sum224(data []byte) [Size224]byte {
	var digest [Size224]byte
	sum(params256, iv224, data, digest[:])
	return digest
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size256]byte {
	var digest [Size256]byte
	sum(params256, iv256, data, digest[:])
	return digest
}

// Sum384 returns the SHA-384 digest of data: the full SHA-512 compression with
// the SHA-384 initial vector, truncated to six words at serialization.
func Sum384(data []byte) [Size384]byte {
	var digest [Size384]byte
	sum(params512, iv384, data, digest[:])
	return digest
}

// Sum512 returns the SHA-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	var digest [Size512]byte
	sum(params512, iv512, data, digest[:])
	return digest
}

// sum runs the Merkle-Damgård loop over data and serializes as many state
// words into out as fit, which is where the 224/384 truncation happens.
func sum[W word](p *params[W], iv [8]W, data []byte, out []byte) {
	state := iv
	length := uint64(len(data))

	for len(data) >= p.blockSize {
		compress(p, &state, data[:p.blockSize])
		data = data[p.blockSize:]
	}

	// Pad with a 1 bit, zeros, then the bit length big-endian. The upper half
	// of a 128-bit length field stays zero: inputs are byte slices, so the bit
	// length always fits in 64 bits.
	tmp := make([]byte, 2*p.blockSize)
	n := copy(tmp, data)
	tmp[n] = 0x80
	pad := p.blockSize
	if n >= p.blockSize-p.lenSize {
		pad = 2 * p.blockSize
	}
	binary.BigEndian.PutUint64(tmp[pad-8:], length<<3)
	for off := 0; off < pad; off += p.blockSize {
		compress(p, &state, tmp[off:off+p.blockSize])
	}

	for i := 0; i < len(out)/p.wordSize; i++ {
		storeWord(out[i*p.wordSize:], state[i], p.wordSize)
	}
}

// compress applies the compression function to one block, expanding the
// 16-word block into the full message schedule first.
func compress[W word](p *params[W], state *[8]W, block []byte) {
	w := make([]W, p.rounds)
	for i := 0; i < 16; i++ {
		w[i] = loadWord[W](block[i*p.wordSize:], p.wordSize)
	}
	for i := 16; i < p.rounds; i++ {
		v0 := w[i-15]
		s0 := p.rotr(v0, p.sig0[0]) ^ p.rotr(v0, p.sig0[1]) ^ v0>>p.sig0[2]
		v1 := w[i-2]
		s1 := p.rotr(v1, p.sig1[0]) ^ p.rotr(v1, p.sig1[1]) ^ v1>>p.sig1[2]
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < p.rounds; i++ {
		e1 := p.rotr(e, p.sum1[0]) ^ p.rotr(e, p.sum1[1]) ^ p.rotr(e, p.sum1[2])
		ch := (e & f) ^ (^e & g)
		t1 := h + e1 + ch + p.k[i] + w[i]
		a0 := p.rotr(a, p.sum0[0]) ^ p.rotr(a, p.sum0[1]) ^ p.rotr(a, p.sum0[2])
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := a0 + maj
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

func loadWord[W word](b []byte, size int) W {
	var w W
	for i := 0; i < size; i++ {
		w = w<<8 | W(b[i])
	}
	return w
}

func storeWord[W word](b []byte, w W, size int) {
	for i := size - 1; i >= 0; i-- {
		b[i] = byte(w)
		w >>= 8
	}
}
