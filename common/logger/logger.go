package logger

import (
	"io"
	"log"
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

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter = &NullWriter{}
	Info       *log.Logger
	Warn       *log.Logger
	Error      *log.Logger
	Debug      *log.Logger
	Trace      *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	if level, ok := ParseLogLevel(value); ok {
		return level
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

// ParseLogLevel is StringToLogLevel without the INFO fallback.
func ParseLogLevel(value string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR, true
	case "warn":
		return WARN, true
	case "info":
		return INFO, true
	case "debug":
		return DEBUG, true
	case "trace":
		return TRACE, true
	}
	return INFO, false
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

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	reset()
}

func reset() {
	Error = log.New(nullWriter, "ERROR: ", logFlags)
	Warn = log.New(nullWriter, "WARN:  ", logFlags)
	Info = log.New(nullWriter, "INFO:  ", logFlags)
	Debug = log.New(nullWriter, "DEBUG: ", logFlags)
	Trace = log.New(nullWriter, "TRACE: ", logFlags)
}

// Initialize enables every logger up to logLevel. All output goes to out so
// that stdout stays free for command output.
func Initialize(logLevel LogLevel, out io.Writer) {
	reset()

	if logLevel >= ERROR {
		Error = log.New(out, "ERROR: ", logFlags)
	}
	if logLevel >= WARN {
		Warn = log.New(out, "WARN:  ", logFlags)
	}
	if logLevel >= INFO {
		Info = log.New(out, "INFO:  ", logFlags)
	}
	if logLevel >= DEBUG {
		Debug = log.New(out, "DEBUG: ", logFlags)
	}
	if logLevel >= TRACE {
		Trace = log.New(out, "TRACE: ", logFlags)
	}
	Debug.Printf("Loggers initialized: '%s'", logLevel.String())
}
