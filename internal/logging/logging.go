package logging

import (
	"io"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(io.Discard, "D ", flags)
	info = log.New(io.Discard, "I ", flags)
	warning = log.New(io.Discard, "W ", flags)
	error = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level and
// silences the rest.
func SetLevel(l Level) {
	SetOutput(os.Stderr, l)
}

// SetOutput directs enabled loggers to w.
func SetOutput(w io.Writer, l Level) {
	out := func(at Level) io.Writer {
		if l <= at {
			return w
		}
		return io.Discard
	}
	debug.SetOutput(out(LevelDebug))
	info.SetOutput(out(LevelInfo))
	warning.SetOutput(out(LevelWarning))
	error.SetOutput(out(LevelError))
}

// ParseLevel maps a level name to a Level.
// Unknown names disable logging.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelNone
	}
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
