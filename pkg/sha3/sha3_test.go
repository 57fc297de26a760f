package sha3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	xsha3 "golang.org/x/crypto/sha3"
)

// TestFIPSVectors checks the FIPS 202 known-answer vectors.
func TestFIPSVectors(t *testing.T) {
	vectors := []struct {
		name string
		sum  func([]byte) []byte
		in   string
		want string
	}{
		{"sha3-224 empty", sum224, "", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{"sha3-224 abc", sum224, "abc", "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
		{"sha3-256 empty", sum256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"sha3-256 abc", sum256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"sha3-384 empty", sum384, "", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
		{"sha3-384 abc", sum384, "abc", "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
		{"sha3-512 empty", sum512, "", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
		{"sha3-512 abc", sum512, "abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	}
	for _, v := range vectors {
		require.Equal(t, v.want, hex.EncodeToString(v.sum([]byte(v.in))), v.name)
	}
}

func sum224(data []byte) []byte { d := Sum224(data); return d[:] }
func sum256(data []byte) []byte { d := Sum256(data); return d[:] }
func sum384(data []byte) []byte { d := Sum384(data); return d[:] }
func sum512(data []byte) []byte { d := Sum512(data); return d[:] }

// TestShakeVectors checks the FIPS 202 SHAKE empty-message vectors.
func TestShakeVectors(t *testing.T) {
	require.Equal(t,
		"7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26",
		hex.EncodeToString(SumShake128(nil, 32)))
	require.Equal(t,
		"46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f"+
			"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be",
		hex.EncodeToString(SumShake256(nil, 64)))
}

// TestAgainstXCrypto compares every variant against golang.org/x/crypto/sha3
// across lengths spanning every sponge-rate boundary.
func TestAgainstXCrypto(t *testing.T) {
	data := make([]byte, 2*RateShake128+8)
	for i := range data {
		data[i] = byte(i*11 + 3)
	}
	for n := 0; n <= len(data); n++ {
		in := data[:n]
		require.Equal(t, xsha3.Sum224(in), Sum224(in), "sha3-224 length %d", n)
		require.Equal(t, xsha3.Sum256(in), Sum256(in), "sha3-256 length %d", n)
		require.Equal(t, xsha3.Sum384(in), Sum384(in), "sha3-384 length %d", n)
		require.Equal(t, xsha3.Sum512(in), Sum512(in), "sha3-512 length %d", n)

		want128 := make([]byte, 100)
		xsha3.ShakeSum128(want128, in)
		require.Equal(t, want128, SumShake128(in, 100), "shake128 length %d", n)

		want256 := make([]byte, 100)
		xsha3.ShakeSum256(want256, in)
		require.Equal(t, want256, SumShake256(in, 100), "shake256 length %d", n)
	}
}

// TestShakePrefixConsistency confirms that shorter SHAKE outputs are prefixes
// of longer ones, including across the squeeze-permutation boundary.
func TestShakePrefixConsistency(t *testing.T) {
	data := []byte("extendable output")
	long128 := SumShake128(data, 3*RateShake128)
	long256 := SumShake256(data, 3*RateShake256)
	for _, n := range []int{0, 1, 31, 32, 33, RateShake128 - 1, RateShake128, RateShake128 + 1, 2 * RateShake256} {
		require.Equal(t, long128[:n], SumShake128(data, n), "shake128 length %d", n)
		require.Equal(t, long256[:n], SumShake256(data, n), "shake256 length %d", n)
	}
}

// TestShakeZeroLength asks for no output at all.
func TestShakeZeroLength(t *testing.T) {
	require.Empty(t, SumShake128([]byte("abc"), 0))
	require.Empty(t, SumShake256([]byte("abc"), 0))
}

func TestNegativeLengthPanics(t *testing.T) {
	require.Panics(t, func() { SumShake128(nil, -1) })
}
