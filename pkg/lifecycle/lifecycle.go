// Package lifecycle provides progress reporting for hashing runs.
package lifecycle

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/guilt/refsum/pkg/common"
)

// MakeDefaultLifecycle returns a no-op lifecycle matching the ProgressFunc
// signature.
func MakeDefaultLifecycle(fileName string, size int64) common.FileLifecycle {
	return common.FileLifecycle{
		OnStart: func() {},
		OnChunk: func(bytes int64) {},
		OnEnd:   func() {},
	}
}

// MakeProgressBars returns a lifecycle with progress bar functionality.
// A size of -1 renders a spinner for streams of unknown length.
func MakeProgressBars(fileName string, size int64) common.FileLifecycle {
	desc := fmt.Sprintf("Hashing %s", filepath.Base(fileName))
	bar := progressbar.DefaultBytes(size, desc)
	return common.FileLifecycle{
		OnStart: func() {},
		OnChunk: func(bytes int64) {
			bar.Add64(bytes)
		},
		OnEnd: func() {
			bar.Close()
		},
	}
}
