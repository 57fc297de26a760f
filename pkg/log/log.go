// Package log builds the stderr loggers shared across refsum.
package log

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to os.Stderr at INFO level. Setting the
// DEBUG environment variable to anything non-empty (e.g., DEBUG=1) raises the
// level to DEBUG.
func NewLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.InfoLevel,
	})

	if os.Getenv("DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
