// Package bitops provides the bit-rotation primitives shared by the hash engines.
//
// Rotation counts larger than the word width wrap around, so callers may pass
// amounts straight out of a specification table without reducing them first.
package bitops

// RotateLeft8 rotates x left by n bits.
func RotateLeft8(x uint8, n uint) uint8 {
	n %= 8
	return x<<n | x>>(8-n)
}

// RotateRight8 rotates x right by n bits.
func RotateRight8(x uint8, n uint) uint8 {
	n %= 8
	return x>>n | x<<(8-n)
}

// RotateLeft16 rotates x left by n bits.
func RotateLeft16(x uint16, n uint) uint16 {
	n %= 16
	return x<<n | x>>(16-n)
}

// RotateRight16 rotates x right by n bits.
func RotateRight16(x uint16, n uint) uint16 {
	n %= 16
	return x>>n | x<<(16-n)
}

// RotateLeft32 rotates x left by n bits.
func RotateLeft32(x uint32, n uint) uint32 {
	n %= 32
	return x<<n | x>>(32-n)
}

// RotateRight32 rotates x right by n bits.
func RotateRight32(x uint32, n uint) uint32 {
	n %= 32
	return x>>n | x<<(32-n)
}

// RotateLeft64 rotates x left by n bits.
func RotateLeft64(x uint64, n uint) uint64 {
	n %= 64
	return x<<n | x>>(64-n)
}

// RotateRight64 rotates x right by n bits.
func RotateRight64(x uint64, n uint) uint64 {
	n %= 64
	return x>>n | x<<(64-n)
}
