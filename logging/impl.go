package logging

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type impl struct {
	name  string
	level AtomicLevel
	inUTC bool

	appenders []Appender
}

func (imp *impl) AddAppender(appender Appender) {
	imp.appenders = append(imp.appenders, appender)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.level.Get()
}

func (imp *impl) Sublogger(subname string) Logger {
	newName := subname
	if imp.name != "" {
		newName = fmt.Sprintf("%s.%s", imp.name, subname)
	}

	return &impl{
		name:      newName,
		level:     NewAtomicLevelAt(imp.level.Get()),
		inUTC:     imp.inUTC,
		appenders: imp.appenders,
	}
}

func (imp *impl) Sync() error {
	var errs []error
	for _, appender := range imp.appenders {
		if err := appender.Sync(); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func (imp *impl) shouldLog(logLevel Level) bool {
	if GlobalLogLevel.Level() == zapcore.DebugLevel {
		return true
	}
	return logLevel >= imp.level.Get()
}

func (imp *impl) newEntry(logLevel Level, msg string) zapcore.Entry {
	entry := zapcore.Entry{
		Level:      logLevel.AsZap(),
		Time:       time.Now(),
		LoggerName: imp.name,
		Message:    msg,
		Caller:     getCaller(),
	}
	if imp.inUTC {
		entry.Time = entry.Time.UTC()
	}
	return entry
}

func (imp *impl) log(entry zapcore.Entry, fields []zapcore.Field) {
	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// fieldsOf pairs up keysAndValues. A trailing key without a value gets an error value so the
// mistake shows up in the output.
func fieldsOf(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		var key string
		if stringer, ok := keysAndValues[i].(fmt.Stringer); ok {
			key = stringer.String()
		} else {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(key, keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(key, errors.New("unpaired log key")))
		}
	}
	return fields
}

func (imp *impl) print(logLevel Level, args []interface{}) {
	if imp.shouldLog(logLevel) {
		imp.log(imp.newEntry(logLevel, fmt.Sprint(args...)), nil)
	}
}

func (imp *impl) printf(logLevel Level, template string, args []interface{}) {
	if imp.shouldLog(logLevel) {
		imp.log(imp.newEntry(logLevel, fmt.Sprintf(template, args...)), nil)
	}
}

func (imp *impl) printw(logLevel Level, msg string, keysAndValues []interface{}) {
	if imp.shouldLog(logLevel) {
		imp.log(imp.newEntry(logLevel, msg), fieldsOf(keysAndValues))
	}
}

func (imp *impl) Debug(args ...interface{}) { imp.print(DEBUG, args) }

func (imp *impl) Debugf(template string, args ...interface{}) { imp.printf(DEBUG, template, args) }

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.printw(DEBUG, msg, keysAndValues)
}

func (imp *impl) Info(args ...interface{}) { imp.print(INFO, args) }

func (imp *impl) Infof(template string, args ...interface{}) { imp.printf(INFO, template, args) }

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.printw(INFO, msg, keysAndValues)
}

func (imp *impl) Warn(args ...interface{}) { imp.print(WARN, args) }

func (imp *impl) Warnf(template string, args ...interface{}) { imp.printf(WARN, template, args) }

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.printw(WARN, msg, keysAndValues)
}

func (imp *impl) Error(args ...interface{}) { imp.print(ERROR, args) }

func (imp *impl) Errorf(template string, args ...interface{}) { imp.printf(ERROR, template, args) }

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.printw(ERROR, msg, keysAndValues)
}

// getCaller reports the file and line of the code that called the public log method.
func getCaller() zapcore.EntryCaller {
	var entryCaller zapcore.EntryCaller
	// Skips getCaller, newEntry, print* and the public method.
	const skipToLogCaller = 4
	var ok bool
	entryCaller.PC, entryCaller.File, entryCaller.Line, ok = runtime.Caller(skipToLogCaller)
	if !ok {
		return entryCaller
	}
	entryCaller.Defined = true
	if fn := runtime.FuncForPC(entryCaller.PC); fn != nil {
		entryCaller.Function = fn.Name()
	}
	return entryCaller
}
