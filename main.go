package main

import (
	"log"
	"os"
	"strings"

	"compendex/cmd"
	"compendex/pkg/logging"
	"compendex/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	verbose := os.Getenv("COMPENDEX_VERBOSE") != ""
	logger, err := logging.Setup(verbose, "compendex", version.Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		logger.Error("compendex execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger, ignoring the spurious sync error zap
// reports when stderr is neither a terminal nor a regular file.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
