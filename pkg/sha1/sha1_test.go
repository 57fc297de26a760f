package sha1

import (
	stdsha1 "crypto/sha1"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFIPSVectors checks the FIPS 180-4 known-answer vectors.
func TestFIPSVectors(t *testing.T) {
	vectors := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	}
	for _, v := range vectors {
		digest := Sum([]byte(v.in))
		require.Equal(t, v.want, hex.EncodeToString(digest[:]), "input %q", v.in)
	}
}

// TestMillionA checks the NIST long-message vector: one million 'a' bytes.
func TestMillionA(t *testing.T) {
	digest := Sum([]byte(strings.Repeat("a", 1000000)))
	require.Equal(t, "34aa973cd4c4daa4f61eeb2bdbad27316534016f", hex.EncodeToString(digest[:]))
}

// TestBlockBoundaries hashes every length across the padding boundaries and
// compares against the standard library.
func TestBlockBoundaries(t *testing.T) {
	data := make([]byte, 3*BlockSize)
	for i := range data {
		data[i] = byte(i*31 + 1)
	}
	for n := 0; n <= len(data); n++ {
		want := stdsha1.Sum(data[:n])
		got := Sum(data[:n])
		require.Equal(t, want, got, "length %d", n)
	}
}
