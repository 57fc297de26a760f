// Package common provides the hasher registry and shared plumbing between the
// hash engines and the checksum CLI.
package common

import (
	"fmt"
	"io"
	"sort"

	"github.com/guilt/refsum/pkg/digest"
)

// Hasher describes one registered algorithm: how to compute it over a stream
// and how to recognize and parse its checksum files.
type Hasher struct {
	Algo      digest.Algorithm
	Name      string
	Extension string
	// OutputLen is the hex length of the default digest.
	OutputLen int
	// Extendable marks the SHAKE algorithms, whose output length is
	// caller-chosen.
	Extendable bool
	// Compute hashes the whole stream and returns the lowercase hex digest.
	// outBytes picks the output size for extendable algorithms and is ignored
	// otherwise.
	Compute           func(reader io.Reader, outBytes int) (string, error)
	AcceptsFile       func(fileName string) bool
	ParseChecksumLine func(line string) (ChecksumLine, error)
}

var hashersByName = map[string]Hasher{}

// AddHasher registers a hasher under its name.
func AddHasher(h Hasher) {
	hashersByName[h.Name] = h
}

// GetHasher returns the hasher registered under name.
func GetHasher(name string) (Hasher, error) {
	h, ok := hashersByName[name]
	if !ok {
		return Hasher{}, fmt.Errorf("unsupported algorithm: %s", name)
	}
	return h, nil
}

// GetAllHasherNames returns the registered algorithm names, sorted.
func GetAllHasherNames() []string {
	names := make([]string, 0, len(hashersByName))
	for name := range hashersByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetDefaultHashAlgorithm returns the algorithm used when none is chosen.
func GetDefaultHashAlgorithm() string {
	return "sha256"
}

// FileLifecycle represents a lifecycle of a file being processed.
type FileLifecycle struct {
	OnStart func()
	OnChunk func(bytes int64)
	OnEnd   func()
}

// ProgressFunc creates a FileLifecycle for a file of the given size.
// A size of -1 means unknown, e.g. standard input.
type ProgressFunc func(fileName string, size int64) FileLifecycle

// LifecycleReader is a reader that tracks the lifecycle of a file being
// processed.
type LifecycleReader struct {
	Reader    io.Reader
	Lifecycle FileLifecycle
}

// Read implements io.Reader.
func (lr *LifecycleReader) Read(p []byte) (n int, err error) {
	n, err = lr.Reader.Read(p)
	if n > 0 {
		lr.Lifecycle.OnChunk(int64(n))
	}
	return n, err
}
