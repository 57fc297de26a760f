package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGNULine(t *testing.T) {
	cl, err := ParseChecksumLine("d41d8cd98f00b204e9800998ecf8427e  empty.txt")
	require.NoError(t, err)
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", cl.Hash)
	require.Equal(t, "empty.txt", cl.FilePath)
	require.Empty(t, cl.Algo)
	require.False(t, cl.Binary)
}

func TestParseGNUBinaryLine(t *testing.T) {
	cl, err := ParseChecksumLine("d41d8cd98f00b204e9800998ecf8427e *empty.bin")
	require.NoError(t, err)
	require.Equal(t, "empty.bin", cl.FilePath)
	require.True(t, cl.Binary)
}

func TestParseSingleSpaceLine(t *testing.T) {
	cl, err := ParseChecksumLine("d41d8cd98f00b204e9800998ecf8427e empty.txt")
	require.NoError(t, err)
	require.Equal(t, "empty.txt", cl.FilePath)
}

func TestParseUppercaseHash(t *testing.T) {
	cl, err := ParseChecksumLine("D41D8CD98F00B204E9800998ECF8427E  empty.txt")
	require.NoError(t, err)
	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", cl.Hash)
}

func TestParseBSDLine(t *testing.T) {
	cl, err := ParseChecksumLine("SHA3-256 (notes (draft).txt) = a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	require.NoError(t, err)
	require.Equal(t, "sha3-256", cl.Algo)
	require.Equal(t, "notes (draft).txt", cl.FilePath)
	require.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", cl.Hash)
	require.True(t, cl.Binary)
}

func TestParseEscapedLine(t *testing.T) {
	cl, err := ParseChecksumLine("\\d41d8cd98f00b204e9800998ecf8427e  with\\nnewline")
	require.NoError(t, err)
	require.Equal(t, "with\nnewline", cl.FilePath)
}

func TestParseInvalidLines(t *testing.T) {
	for _, line := range []string{
		"",
		"justonefield",
		"nothexatall  file.txt",
		"abc  file.txt", // odd-length digest
		"d41d8cd98f00b204e9800998ecf8427e  ",
	} {
		_, err := ParseChecksumLine(line)
		require.Error(t, err, "line %q", line)
	}
}

func TestFormatGNULine(t *testing.T) {
	require.Equal(t, "abcd1234  a.txt", FormatGNULine("abcd1234", "a.txt", false))
	require.Equal(t, "abcd1234 *a.bin", FormatGNULine("abcd1234", "a.bin", true))
	require.Equal(t, "\\abcd1234  odd\\nname", FormatGNULine("abcd1234", "odd\nname", false))
}

func TestFormatBSDLine(t *testing.T) {
	require.Equal(t, "SHA256 (a.txt) = abcd1234", FormatBSDLine("SHA256", "a.txt", "abcd1234"))
}

func TestFormatParseRoundTrip(t *testing.T) {
	const hash = "900150983cd24fb0d6963f7d28e17f72"
	for _, name := range []string{"plain.txt", "with space.txt", "back\\slash", "new\nline"} {
		cl, err := ParseChecksumLine(FormatGNULine(hash, name, false))
		require.NoError(t, err)
		require.Equal(t, name, cl.FilePath)
		require.Equal(t, hash, cl.Hash)
	}
}

func TestRegistry(t *testing.T) {
	AddHasher(Hasher{Name: "test-algo", OutputLen: 8})
	h, err := GetHasher("test-algo")
	require.NoError(t, err)
	require.Equal(t, 8, h.OutputLen)

	_, err = GetHasher("nope")
	require.Error(t, err)
	require.Contains(t, GetAllHasherNames(), "test-algo")
}
