package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/guilt/refsum/pkg/common"
	"github.com/guilt/refsum/pkg/hashers"
	"github.com/guilt/refsum/pkg/lifecycle"
	"github.com/guilt/refsum/pkg/log"
)

// logger is the package-level logger for debug and error messages.
var logger = log.NewLogger()

type config struct {
	algo          string
	check         bool
	tag           bool
	binary        bool
	zero          bool
	quiet         bool
	status        bool
	warn          bool
	strict        bool
	ignoreMissing bool
	lengthBits    int
	output        string
	write         bool
	progress      bool
	args          []string
}

func main() {
	cfg := parseArgs()

	hasher, err := common.GetHasher(cfg.algo)
	if err != nil {
		logger.Errorf("Invalid algorithm: algo=%q, error=%v, supported=%s", cfg.algo, err, strings.Join(common.GetAllHasherNames(), ", "))
		os.Exit(1)
	}

	outBytes := hasher.OutputLen / 2
	if cfg.lengthBits != 0 {
		if !hasher.Extendable {
			logger.Errorf("Length is only supported for extendable algorithms: algo=%s", hasher.Name)
			os.Exit(1)
		}
		if cfg.lengthBits < 0 || cfg.lengthBits%8 != 0 {
			logger.Errorf("Invalid length: must be a positive multiple of 8 bits, got=%d", cfg.lengthBits)
			os.Exit(1)
		}
		outBytes = cfg.lengthBits / 8
	}

	progressFunc := common.ProgressFunc(lifecycle.MakeDefaultLifecycle)
	if cfg.progress {
		progressFunc = lifecycle.MakeProgressBars
	}

	files := cfg.args
	if len(files) == 0 {
		files = []string{"-"}
	}

	if cfg.check {
		if !checkFiles(hasher, files, cfg, progressFunc) {
			os.Exit(1)
		}
		return
	}
	if !generateHashes(hasher, files, outBytes, cfg, progressFunc) {
		os.Exit(1)
	}
}

func parseArgs() *config {
	defaultAlgo := common.GetDefaultHashAlgorithm()
	algo := flag.String("algo", defaultAlgo, "Hash algorithm ("+strings.Join(common.GetAllHasherNames(), ", ")+")")
	check := flag.Bool("check", false, "Read checksum lines from the given files and verify them")
	tag := flag.Bool("tag", false, "Create BSD-style checksum lines")
	binary := flag.Bool("binary", false, "Mark files as binary in GNU-style checksum lines")
	text := flag.Bool("text", false, "Mark files as text in GNU-style checksum lines (overrides -binary)")
	zero := flag.Bool("zero", false, "End each output line with NUL instead of newline")
	quiet := flag.Bool("quiet", false, "Do not print OK for each successfully verified file")
	status := flag.Bool("status", false, "Do not output anything when verifying, the exit code shows success")
	warn := flag.Bool("warn", false, "Warn about each improperly formatted checksum line")
	strict := flag.Bool("strict", false, "Exit non-zero for improperly formatted checksum lines")
	ignoreMissing := flag.Bool("ignore-missing", false, "Do not fail or report status for missing files")
	length := flag.Int("length", 0, "Digest length in bits, a multiple of 8 (shake128/shake256 only)")
	output := flag.String("output", "", "Also write checksum lines to this file")
	write := flag.Bool("write", false, "Also write each file's checksum line next to it, as <file><algo extension>")
	progress := flag.Bool("progress", false, "Show progress bar during hashing")
	flag.Parse()

	cfg := &config{
		algo:          strings.TrimSpace(*algo),
		check:         *check,
		tag:           *tag,
		binary:        resolveBinaryMode(*binary, *text),
		zero:          *zero,
		quiet:         *quiet,
		status:        *status,
		warn:          *warn,
		strict:        *strict,
		ignoreMissing: *ignoreMissing,
		lengthBits:    *length,
		output:        *output,
		write:         *write,
		progress:      *progress,
		args:          flag.Args(),
	}

	if cfg.algo == "" {
		logger.Errorf("Algorithm cannot be empty")
		os.Exit(1)
	}

	return cfg
}

// resolveBinaryMode folds -binary and -text into one mode; -text wins, like
// the coreutils tools where text is the default.
func resolveBinaryMode(binary, text bool) bool {
	if text {
		return false
	}
	return binary
}

// hashOne hashes one file, or standard input when fileName is "-".
func hashOne(hasher common.Hasher, fileName string, outBytes int, progressFunc common.ProgressFunc) (string, error) {
	var reader *common.LifecycleReader
	var lc common.FileLifecycle

	if fileName == "-" {
		lc = progressFunc("standard input", -1)
		reader = &common.LifecycleReader{Reader: os.Stdin, Lifecycle: lc}
	} else {
		file, err := os.Open(fileName)
		if err != nil {
			return "", err
		}
		defer file.Close()

		size := int64(-1)
		if fileInfo, err := file.Stat(); err == nil {
			size = fileInfo.Size()
		}
		lc = progressFunc(fileName, size)
		reader = &common.LifecycleReader{Reader: file, Lifecycle: lc}
	}

	lc.OnStart()
	defer lc.OnEnd()
	return hasher.Compute(reader, outBytes)
}

func generateHashes(hasher common.Hasher, files []string, outBytes int, cfg *config, progressFunc common.ProgressFunc) bool {
	terminator := "\n"
	if cfg.zero {
		terminator = "\x00"
	}

	var outFile *os.File
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			logger.Errorf("Error creating output file: file=%s, error=%v", cfg.output, err)
			return false
		}
		outFile = f
	}

	ok := true
	for _, fileName := range files {
		hashValue, err := hashOne(hasher, fileName, outBytes, progressFunc)
		if err != nil {
			logger.Errorf("Error computing hash: file=%s, error=%v", fileName, err)
			ok = false
			continue
		}

		line := formatLine(hasher, fileName, hashValue, cfg)
		fmt.Print(line + terminator)
		if outFile != nil {
			if _, err := fmt.Fprint(outFile, line+terminator); err != nil {
				logger.Errorf("Error writing output file: file=%s, error=%v", cfg.output, err)
				ok = false
			}
		}
		if cfg.write && fileName != "-" {
			sideFile := fileName + hasher.Extension
			if err := os.WriteFile(sideFile, []byte(line+terminator), 0o644); err != nil {
				logger.Errorf("Error writing checksum file: file=%s, error=%v", sideFile, err)
				ok = false
			}
		}
	}

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			logger.Errorf("Error closing output file: file=%s, error=%v", cfg.output, err)
			ok = false
		}
	}
	return ok
}

func formatLine(hasher common.Hasher, fileName, hashValue string, cfg *config) string {
	if cfg.tag {
		return common.FormatBSDLine(strings.ToUpper(hasher.Name), fileName, hashValue)
	}
	if cfg.zero {
		// NUL-terminated lines need no name escaping.
		marker := "  "
		if cfg.binary {
			marker = " *"
		}
		return hashValue + marker + fileName
	}
	return common.FormatGNULine(hashValue, fileName, cfg.binary)
}

func checkFiles(hasher common.Hasher, checkFileNames []string, cfg *config, progressFunc common.ProgressFunc) bool {
	ok := true
	for _, checkFileName := range checkFileNames {
		if !checkOneFile(hasher, checkFileName, cfg, progressFunc) {
			ok = false
		}
	}
	return ok
}

// checksumFileNameMatches reports whether the checksum file name looks like it
// belongs to the hasher; "-" (standard input) always matches.
func checksumFileNameMatches(hasher common.Hasher, name string) bool {
	return name == "-" || hasher.AcceptsFile(name)
}

func checkOneFile(hasher common.Hasher, checkFileName string, cfg *config, progressFunc common.ProgressFunc) bool {
	if !checksumFileNameMatches(hasher, checkFileName) {
		logger.Warnf("Checksum file name does not match the algorithm: file=%s, algo=%s", checkFileName, hasher.Name)
	}
	entries, badLines, err := hashers.ReadChecksumFile(hasher, checkFileName)
	if err != nil {
		logger.Errorf("Error reading checksum file: file=%s, error=%v", checkFileName, err)
		return false
	}
	if cfg.warn {
		for _, lineNo := range badLines {
			fmt.Fprintf(os.Stderr, "%s: %d: improperly formatted %s checksum line\n", checkFileName, lineNo, strings.ToUpper(hasher.Name))
		}
	}
	if len(entries) == 0 {
		if !cfg.status {
			fmt.Fprintf(os.Stderr, "%s: no properly formatted checksum lines found\n", checkFileName)
		}
		return false
	}

	ok := true
	mismatched := 0
	unreadable := 0
	for _, entry := range entries {
		// For extendable algorithms the stored digest length decides how much
		// output to squeeze.
		outBytes := len(entry.Hash) / 2

		computed, err := hashOne(hasher, entry.FilePath, outBytes, progressFunc)
		if err != nil {
			if cfg.ignoreMissing && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			unreadable++
			ok = false
			if !cfg.status {
				fmt.Printf("%s: FAILED open or read\n", entry.FilePath)
			}
			continue
		}

		if strings.EqualFold(computed, entry.Hash) {
			if !cfg.quiet && !cfg.status {
				fmt.Printf("%s: OK\n", entry.FilePath)
			}
		} else {
			mismatched++
			ok = false
			if !cfg.status {
				fmt.Printf("%s: FAILED\n", entry.FilePath)
			}
		}
	}

	if !cfg.status {
		if unreadable > 0 {
			fmt.Fprintf(os.Stderr, "%s: WARNING: %d listed file(s) could not be read\n", checkFileName, unreadable)
		}
		if mismatched > 0 {
			fmt.Fprintf(os.Stderr, "%s: WARNING: %d computed checksum(s) did NOT match\n", checkFileName, mismatched)
		}
		if len(badLines) > 0 {
			fmt.Fprintf(os.Stderr, "%s: WARNING: %d line(s) improperly formatted\n", checkFileName, len(badLines))
		}
	}
	if cfg.strict && len(badLines) > 0 {
		ok = false
	}
	return ok
}
