package misc

import (
	"fmt"
	"strings"

	log "unknwon.dev/clog/v2"
)

// Logger interface
type Logger interface {
	Trace(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Fatal(format string, v ...interface{})
}

// NewLogger returns a Logger that prefixes every message with `[PREFIX]`.
// `skip` is the call depth reported by `Error` and `Fatal`.
//
//	log := NewLogger("Fetch", 2)
func NewLogger(prefix string, skip int) Logger {
	return &prefixLogger{
		prefix: strings.ToUpper(prefix),
		skip:   skip,
	}
}

// StartConsole routes all loggers to stdout. Verbose enables trace output.
func StartConsole(verbose bool) error {
	level := log.LevelInfo
	if verbose {
		level = log.LevelTrace
	}
	return log.NewConsole(0, log.ConsoleConfig{
		Level: level,
	})
}

// StopConsole flushes pending messages.
func StopConsole() {
	log.Stop()
}

type prefixLogger struct {
	prefix string
	skip   int
}

func (l *prefixLogger) format(format string) string {
	if l.prefix == "" {
		return format
	}
	return fmt.Sprintf("[%s] %s", l.prefix, format)
}

func (l *prefixLogger) Trace(format string, v ...interface{}) {
	log.Trace(l.format(format), v...)
}

func (l *prefixLogger) Info(format string, v ...interface{}) {
	log.Info(l.format(format), v...)
}

func (l *prefixLogger) Warn(format string, v ...interface{}) {
	log.Warn(l.format(format), v...)
}

func (l *prefixLogger) Error(format string, v ...interface{}) {
	log.ErrorDepth(l.skip, l.format(format), v...)
}

func (l *prefixLogger) Fatal(format string, v ...interface{}) {
	log.FatalDepth(l.skip, l.format(format), v...)
}
