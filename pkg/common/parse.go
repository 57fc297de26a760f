package common

import (
	"fmt"
	"strings"
)

// ChecksumLine is one parsed entry of a checksum file.
type ChecksumLine struct {
	// Algo is the algorithm tag from a BSD-style line, lowercased; empty for
	// GNU-style lines.
	Algo     string
	Hash     string
	FilePath string
	Binary   bool
}

// ParseChecksumLine parses one checksum-file line in either the GNU format
// ("hash  file", "hash *file") or the BSD tagged format ("ALG (file) = hash").
// A leading backslash marks a line whose file name carries coreutils-style
// escapes.
func ParseChecksumLine(line string) (ChecksumLine, error) {
	escaped := strings.HasPrefix(line, "\\")
	if escaped {
		line = line[1:]
	}

	if cl, ok := parseTaggedLine(line); ok {
		if escaped {
			cl.FilePath = UnescapeFileName(cl.FilePath)
		}
		return cl, nil
	}

	// GNU format: hash, a space, a type marker (' ' text, '*' binary), then
	// the file name. A single-space separator is tolerated for output from
	// tools that omit the marker.
	i := strings.IndexByte(line, ' ')
	if i <= 0 || i+1 >= len(line) {
		return ChecksumLine{}, fmt.Errorf("invalid checksum line: %s", line)
	}
	hash := strings.ToLower(line[:i])
	if !isHex(hash) {
		return ChecksumLine{}, fmt.Errorf("invalid checksum line: %s", line)
	}

	cl := ChecksumLine{Hash: hash}
	switch line[i+1] {
	case '*':
		cl.Binary = true
		cl.FilePath = line[i+2:]
	case ' ':
		cl.FilePath = line[i+2:]
	default:
		cl.FilePath = line[i+1:]
	}
	if cl.FilePath == "" {
		return ChecksumLine{}, fmt.Errorf("invalid checksum line: %s", line)
	}
	if escaped {
		cl.FilePath = UnescapeFileName(cl.FilePath)
	}
	return cl, nil
}

// parseTaggedLine recognizes the BSD format "ALG (file) = hash". Tagged lines
// always refer to binary-mode hashing.
func parseTaggedLine(line string) (ChecksumLine, bool) {
	open := strings.Index(line, " (")
	closing := strings.LastIndex(line, ") = ")
	if open <= 0 || closing < open {
		return ChecksumLine{}, false
	}
	hash := strings.ToLower(line[closing+4:])
	if !isHex(hash) {
		return ChecksumLine{}, false
	}
	return ChecksumLine{
		Algo:     strings.ToLower(line[:open]),
		Hash:     hash,
		FilePath: line[open+2 : closing],
		Binary:   true,
	}, true
}

// FormatGNULine renders a GNU-style checksum line, escaping the file name and
// prefixing a backslash when needed.
func FormatGNULine(hash, fileName string, binary bool) string {
	escaped, wasEscaped := EscapeFileName(fileName)
	marker := "  "
	if binary {
		marker = " *"
	}
	line := hash + marker + escaped
	if wasEscaped {
		line = "\\" + line
	}
	return line
}

// FormatBSDLine renders a BSD-style tagged checksum line.
func FormatBSDLine(tag, fileName, hash string) string {
	escaped, wasEscaped := EscapeFileName(fileName)
	line := fmt.Sprintf("%s (%s) = %s", tag, escaped, hash)
	if wasEscaped {
		line = "\\" + line
	}
	return line
}

// EscapeFileName applies coreutils-style escaping to newlines and backslashes
// in a file name, reporting whether anything was escaped.
func EscapeFileName(name string) (string, bool) {
	if !strings.ContainsAny(name, "\n\\") {
		return name, false
	}
	replacer := strings.NewReplacer("\\", "\\\\", "\n", "\\n")
	return replacer.Replace(name), true
}

// UnescapeFileName reverses EscapeFileName.
func UnescapeFileName(name string) string {
	replacer := strings.NewReplacer("\\\\", "\\", "\\n", "\n")
	return replacer.Replace(name)
}

func isHex(s string) bool {
	if len(s) < 2 || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
