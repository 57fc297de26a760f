package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guilt/refsum/pkg/common"
	"github.com/guilt/refsum/pkg/lifecycle"
)

func TestResolveBinaryMode(t *testing.T) {
	require.False(t, resolveBinaryMode(false, false))
	require.True(t, resolveBinaryMode(true, false))
	require.False(t, resolveBinaryMode(false, true))
	require.False(t, resolveBinaryMode(true, true))
}

func TestChecksumFileNameMatches(t *testing.T) {
	hasher, err := common.GetHasher("sha256")
	require.NoError(t, err)
	require.True(t, checksumFileNameMatches(hasher, "-"))
	require.True(t, checksumFileNameMatches(hasher, "SHA256SUMS"))
	require.True(t, checksumFileNameMatches(hasher, "release.iso.sha256"))
	require.False(t, checksumFileNameMatches(hasher, "release.iso.md5"))
}

func TestGenerateWritesSideFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "abc.txt")
	require.NoError(t, os.WriteFile(input, []byte("abc"), 0o644))

	hasher, err := common.GetHasher("md5")
	require.NoError(t, err)

	cfg := &config{algo: "md5", write: true}
	require.True(t, generateHashes(hasher, []string{input}, hasher.OutputLen/2, cfg, lifecycle.MakeDefaultLifecycle))

	content, err := os.ReadFile(input + hasher.Extension)
	require.NoError(t, err)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72  "+input+"\n", string(content))
}

func TestGenerateWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("abc"), 0o644))
	output := filepath.Join(dir, "sums.sha256")

	hasher, err := common.GetHasher("sha256")
	require.NoError(t, err)

	cfg := &config{algo: "sha256", output: output}
	require.True(t, generateHashes(hasher, []string{input}, hasher.OutputLen/2, cfg, lifecycle.MakeDefaultLifecycle))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  "+input+"\n", string(content))
}

func TestGenerateOutputFileCreateFails(t *testing.T) {
	hasher, err := common.GetHasher("sha256")
	require.NoError(t, err)

	// A directory path cannot be created as a regular file.
	cfg := &config{algo: "sha256", output: t.TempDir()}
	require.False(t, generateHashes(hasher, nil, hasher.OutputLen/2, cfg, lifecycle.MakeDefaultLifecycle))
}

func TestCheckOneFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(input, []byte("abc"), 0o644))

	hasher, err := common.GetHasher("md5")
	require.NoError(t, err)

	sums := filepath.Join(dir, "sums.md5")
	require.NoError(t, os.WriteFile(sums, []byte("900150983cd24fb0d6963f7d28e17f72  "+input+"\n"), 0o644))

	cfg := &config{status: true}
	require.True(t, checkOneFile(hasher, sums, cfg, lifecycle.MakeDefaultLifecycle))

	require.NoError(t, os.WriteFile(sums, []byte("00000000000000000000000000000000  "+input+"\n"), 0o644))
	require.False(t, checkOneFile(hasher, sums, cfg, lifecycle.MakeDefaultLifecycle))
}
