// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is the minimal severity a Logger emits.
type Level int

// Supported levels, in increasing severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	for level := LevelDebug; level <= LevelFatal; level++ {
		if strings.EqualFold(strings.TrimSpace(s), level.String()) {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level '%s'", s)
}

// Logger describes a logger to be used in hwconfig.
type Logger interface {
	// Debugf logs a message useful only when tracing firmware exchanges.
	Debugf(format string, args ...interface{})

	// Infof logs an informational message.
	Infof(format string, args ...interface{})

	// Warnf logs an warning message.
	Warnf(format string, args ...interface{})

	// Errorf logs an error message.
	Errorf(format string, args ...interface{})

	// Fatalf logs a fatal message and immediately exits the application
	// with os.Exit.
	Fatalf(format string, args ...interface{})
}

// DefaultLogger is the logger used by default everywhere within hwconfig.
var DefaultLogger Logger

// Discard drops everything except Fatalf, which still exits.
var Discard Logger = NewLogger(io.Discard, LevelFatal)

func init() {
	DefaultLogger = NewLogger(os.Stderr, LevelInfo)
}

// NewLogger returns a Logger writing messages of at least the given level to w.
func NewLogger(w io.Writer, level Level) Logger {
	return logWrapper{Logger: log.New(w, "", log.LstdFlags), Level: level}
}

type logWrapper struct {
	Logger *log.Logger
	Level  Level
}

func (logger logWrapper) printf(level Level, format string, args []interface{}) {
	if level < logger.Level {
		return
	}
	logger.Logger.Printf("[hwconfig]["+level.String()+"] "+format, args...)
}

// Debugf implements Logger.
func (logger logWrapper) Debugf(format string, args ...interface{}) {
	logger.printf(LevelDebug, format, args)
}

// Infof implements Logger.
func (logger logWrapper) Infof(format string, args ...interface{}) {
	logger.printf(LevelInfo, format, args)
}

// Warnf implements Logger.
func (logger logWrapper) Warnf(format string, args ...interface{}) {
	logger.printf(LevelWarn, format, args)
}

// Errorf implements Logger.
func (logger logWrapper) Errorf(format string, args ...interface{}) {
	logger.printf(LevelError, format, args)
}

// Fatalf implements Logger.
func (logger logWrapper) Fatalf(format string, args ...interface{}) {
	logger.Logger.Fatalf("[hwconfig][FATAL] "+format, args...)
}

// Debugf logs a debug message.
func Debugf(format string, args ...interface{}) {
	DefaultLogger.Debugf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	DefaultLogger.Infof(format, args...)
}

// Warnf logs an warning message.
func Warnf(format string, args ...interface{}) {
	DefaultLogger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	DefaultLogger.Errorf(format, args...)
}

// Fatalf logs a fatal message and immediately exits the application
// with os.Exit (which is expected to be called by the DefaultLogger.Fatalf).
func Fatalf(format string, args ...interface{}) {
	DefaultLogger.Fatalf(format, args...)
}
