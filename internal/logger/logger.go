/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced
// when figvars runs embedded in another tool.
package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	logger             = log.New(output, "", 0)
	minLevel           = LevelInfo

	warnPrefix  = color.New(color.FgYellow).Sprint("warning: ")
	errorPrefix = color.New(color.FgRed).Sprint("error: ")
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
}

// SetLevel sets the minimum level that is written.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logf(LevelDebug, "", format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, "", format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, warnPrefix, format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logf(LevelError, errorPrefix, format, args...)
}

func logf(level Level, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel {
		return
	}
	logger.Printf(prefix+format, args...)
}
