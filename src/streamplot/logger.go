package streamplot

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelWarn)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets the global log level. Unknown strings are ignored.
// The engine never fails an operation because of a caller mistake; it logs a
// warning and no-ops, so hosts that want those diagnostics should set "warn"
// or lower.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

func logf(l LogLevel, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	if len(args) == 0 {
		baseLogger.Printf("[plot %s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[plot %s] %s", prefix, fmt.Sprintf(format, args...))
}

func debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }
