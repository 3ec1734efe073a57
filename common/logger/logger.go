package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func init() {
	Error = log.New(io.Discard, "ERROR: ", flags)
	Warn = log.New(io.Discard, "WARN:  ", flags)
	Info = log.New(io.Discard, "INFO:  ", flags)
	Debug = log.New(io.Discard, "DEBUG: ", flags)
	Trace = log.New(io.Discard, "TRACE: ", flags)
}

func Initialize(logLevel LogLevel) {
	InitializeWithWriters(logLevel, os.Stdout, os.Stderr)
}

// InitializeWithWriters enables every logger up to logLevel. Errors go to
// errOut, everything else to out. Loggers above the level keep discarding.
func InitializeWithWriters(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	currentLevel = logLevel

	Error = newLogger(logLevel >= ERROR, errOut, "ERROR: ")
	Warn = newLogger(logLevel >= WARN, out, "WARN:  ")
	Info = newLogger(logLevel >= INFO, out, "INFO:  ")
	Debug = newLogger(logLevel >= DEBUG, out, "DEBUG: ")
	Trace = newLogger(logLevel >= TRACE, out, "TRACE: ")
}

func newLogger(enabled bool, out io.Writer, prefix string) *log.Logger {
	if !enabled {
		out = io.Discard
	}
	return log.New(out, prefix, flags)
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}
