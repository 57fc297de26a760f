package sha3

import "github.com/guilt/refsum/pkg/bitops"

// state is the Keccak 5x5 matrix of 64-bit lanes, indexed [x][y].
type state [5][5]uint64

const rounds = 24

// roundConstants are XORed into lane (0,0) by the ι step, one per round.
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets[x][y] is the ρ-step rotate amount for lane (x,y).
var rotationOffsets = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// permute applies all 24 rounds of Keccak-f[1600] to the state.
func (a *state) permute() {
	for r := 0; r < rounds; r++ {
		a.theta()
		b := a.rhoPi()
		a.chi(&b)
		// ι: break symmetry with the round constant.
		a[0][0] ^= roundConstants[r]
	}
}

// theta XORs every lane with the parity of its two neighbor columns.
func (a *state) theta() {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x][0] ^ a[x][1] ^ a[x][2] ^ a[x][3] ^ a[x][4]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bitops.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[x][y] ^= d[x]
		}
	}
}

// rhoPi rotates each lane by its fixed offset (ρ) and moves it from (x,y) to
// (y, 2x+3y) (π), returning the rearranged state.
func (a *state) rhoPi() state {
	var b state
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[y][(2*x+3*y)%5] = bitops.RotateLeft64(a[x][y], rotationOffsets[x][y])
		}
	}
	return b
}

// chi applies the row-wise nonlinear map A[x] = B[x] ^ (^B[x+1] & B[x+2]).
func (a *state) chi(b *state) {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			a[x][y] = b[x][y] ^ (^b[(x+1)%5][y] & b[(x+2)%5][y])
		}
	}
}
