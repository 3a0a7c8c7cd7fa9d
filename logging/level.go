package logging

import (
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Level is a log severity. The values line up with zapcore's.
type Level int

const (
	// DEBUG is for diagnostics such as solver inputs and outputs.
	DEBUG Level = iota - 1
	// INFO is the default level.
	INFO
	// WARN is for recoverable problems.
	WARN
	// ERROR is for failures.
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "Debug"
	case INFO:
		return "Info"
	case WARN:
		return "Warn"
	case ERROR:
		return "Error"
	}
	return "Unknown"
}

// AsZap converts the level to its zapcore equivalent.
func (l Level) AsZap() zapcore.Level {
	return zapcore.Level(l)
}

// LevelFromString parses a case insensitive level name.
func LevelFromString(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return DEBUG, errors.Errorf("unknown log level %q", s)
}

// AtomicLevel is a Level that can be read and changed concurrently.
type AtomicLevel struct {
	val *atomic.Int32
}

// NewAtomicLevelAt returns an AtomicLevel holding level.
func NewAtomicLevelAt(level Level) AtomicLevel {
	ret := AtomicLevel{val: &atomic.Int32{}}
	ret.Set(level)
	return ret
}

// Set changes the level.
func (al AtomicLevel) Set(level Level) {
	al.val.Store(int32(level))
}

// Get returns the current level.
func (al AtomicLevel) Get() Level {
	return Level(al.val.Load())
}
