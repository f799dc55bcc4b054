// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package log is a thin front for apex/log. Word output goes to stdout, so
// log lines are written to stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

var traceEnabled bool

// InitLogger installs the handler and sets the level from the WORDLE_LOG
// env variable (trace, debug, info, warn, error, fatal). Unset or unknown
// values mean error.
func InitLogger() {
	envLevel := strings.ToLower(strings.TrimSpace(os.Getenv("WORDLE_LOG")))
	traceEnabled = envLevel == "trace"
	log.SetHandler(NewHandler(os.Stderr))
	log.SetLevel(levelFor(envLevel))
}

// levelFor maps a WORDLE_LOG value to an apex level. trace is carried at
// debug level and distinguished by its message prefix.
func levelFor(envLevel string) log.Level {
	switch envLevel {
	case "trace", "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.ErrorLevel
	}
}

// Handler formats entries as "<timestamp> <level letter> <message>".
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler returns a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := e.Message
	level := "?"
	if strings.HasPrefix(message, "TRACE: ") {
		level = "T"
		message = message[7:]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	for _, name := range e.Fields.Names() {
		message += fmt.Sprintf(" %s=%v", name, e.Fields.Get(name))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.w, "%s %s %s\n", timestamp, level, message)
	return err
}

// TraceEnabled reports whether trace logging is on. Hot loops check it before
// building trace messages.
func TraceEnabled() bool {
	return traceEnabled
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
