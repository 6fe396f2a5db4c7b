/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable, level-prefixed logger that can be
// silenced for embedding contexts.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	// Default logs to stderr. Set to io.Discard for silent mode.
	output io.Writer = os.Stderr
	logger *log.Logger

	// debugEnabled gates Debug output; off by default.
	debugEnabled bool
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// SetDebug enables or disables debug-level output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// Error logs an error-level diagnostic.
func Error(format string, args ...any) {
	logger.Printf("error: "+format, args...)
}

// Warn logs a warning-level diagnostic.
func Warn(format string, args ...any) {
	logger.Printf("warn: "+format, args...)
}

// Info logs an info-level diagnostic.
func Info(format string, args ...any) {
	logger.Printf("info: "+format, args...)
}

// Debug logs a debug-level diagnostic, when debug output is enabled.
func Debug(format string, args ...any) {
	if !debugEnabled {
		return
	}
	logger.Printf("debug: "+format, args...)
}
