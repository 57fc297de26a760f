// Package hashers registers every supported algorithm with the common
// registry and loads checksum files for verification.
package hashers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/guilt/refsum/pkg/common"
	"github.com/guilt/refsum/pkg/digest"
	"github.com/guilt/refsum/pkg/log"
)

var logger = log.NewLogger()

func init() {
	for _, algo := range digest.Algorithms {
		common.AddHasher(newHasher(algo))
	}
}

func newHasher(algo digest.Algorithm) common.Hasher {
	name := algo.String()
	return common.Hasher{
		Algo:       algo,
		Name:       name,
		Extension:  "." + name,
		OutputLen:  algo.Size() * 2,
		Extendable: algo.Extendable(),
		Compute: func(reader io.Reader, outBytes int) (string, error) {
			return compute(algo, reader, outBytes)
		},
		AcceptsFile:       acceptsFile(name),
		ParseChecksumLine: common.ParseChecksumLine,
	}
}

// compute buffers the stream and dispatches to the engine: the engines hash a
// fully materialized buffer by design.
func compute(algo digest.Algorithm, reader io.Reader, outBytes int) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("error reading data: %w", err)
	}
	if algo.Extendable() && outBytes > 0 {
		return digest.HexSumLength(algo, data, outBytes), nil
	}
	return digest.HexSum(algo, data), nil
}

func acceptsFile(name string) func(string) bool {
	sumFile := name + "sum"
	ext := "." + name
	return func(fileName string) bool {
		base := strings.ToLower(filepath.Base(fileName))
		return base == sumFile || base == sumFile+"s" || strings.ToLower(filepath.Ext(fileName)) == ext
	}
}

// ChecksumEntry is one parsed checksum line plus its position in the file.
type ChecksumEntry struct {
	common.ChecksumLine
	LineNo int
}

// ReadChecksumFile parses the checksum file at path ("-" for standard input)
// for the given hasher. It returns the well-formed entries and the line
// numbers of lines that did not parse or do not belong to the hasher;
// deciding what to do about those is the caller's business.
func ReadChecksumFile(h common.Hasher, path string) ([]ChecksumEntry, []int, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer file.Close()
		reader = file
	}

	var entries []ChecksumEntry
	var badLines []int
	lineNo := 0

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cl, err := h.ParseChecksumLine(line)
		if err != nil {
			logger.Debugf("Invalid checksum line: file=%s, lineNo=%d, error=%v", path, lineNo, err)
			badLines = append(badLines, lineNo)
			continue
		}
		if cl.Algo != "" && cl.Algo != h.Name {
			logger.Debugf("Algorithm tag mismatch: file=%s, lineNo=%d, tag=%s", path, lineNo, cl.Algo)
			badLines = append(badLines, lineNo)
			continue
		}
		if !h.Extendable && len(cl.Hash) != h.OutputLen {
			logger.Debugf("Digest length mismatch: file=%s, lineNo=%d, got=%d, want=%d", path, lineNo, len(cl.Hash), h.OutputLen)
			badLines = append(badLines, lineNo)
			continue
		}
		entries = append(entries, ChecksumEntry{ChecksumLine: cl, LineNo: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading checksum file: %w", err)
	}
	return entries, badLines, nil
}
