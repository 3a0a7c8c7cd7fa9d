package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zapcore"
)

// DefaultTimeFormatStr is the timestamp layout written by the console appenders.
const DefaultTimeFormatStr = "2006-01-02T15:04:05.000Z0700"

// Appender is an output for log entries. A zapcore.Core is an Appender, which is how observed
// test logs are captured.
type Appender interface {
	Write(zapcore.Entry, []zapcore.Field) error
	Sync() error
}

// ConsoleAppender writes tab separated log lines to an io.Writer.
type ConsoleAppender struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewStdoutAppender returns an appender writing to stdout.
func NewStdoutAppender() Appender {
	return NewWriterAppender(os.Stdout)
}

// NewWriterAppender returns an appender writing to w.
func NewWriterAppender(w io.Writer) *ConsoleAppender {
	return &ConsoleAppender{writer: w}
}

// Write outputs "<time>\t<LEVEL>\t<logger>\t<file:line>\t<msg>" followed by a json object of the
// fields when there are any.
func (app *ConsoleAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	line, err := formatEntry(entry, fields)
	app.mu.Lock()
	defer app.mu.Unlock()
	if _, werr := fmt.Fprintln(app.writer, line); werr != nil {
		return werr
	}
	return err
}

// Sync syncs the writer when it is a file.
func (app *ConsoleAppender) Sync() error {
	if f, ok := app.writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		return f.Sync()
	}
	return nil
}

type testAppender struct {
	tb testing.TB
}

// NewTestAppender returns an appender that logs through tb.Log so that lines are attributed to the
// running test.
func NewTestAppender(tb testing.TB) Appender {
	return &testAppender{tb}
}

func (tapp *testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	tapp.tb.Helper()
	line, err := formatEntry(entry, fields)
	tapp.tb.Log(line)
	return err
}

func (tapp *testAppender) Sync() error {
	return nil
}

func formatEntry(entry zapcore.Entry, fields []zapcore.Field) (string, error) {
	toPrint := []string{
		entry.Time.Format(DefaultTimeFormatStr),
		strings.ToUpper(entry.Level.String()),
		entry.LoggerName,
	}
	if entry.Caller.Defined {
		toPrint = append(toPrint, entry.Caller.TrimmedPath())
	}
	toPrint = append(toPrint, entry.Message)
	if len(fields) == 0 {
		return strings.Join(toPrint, "\t"), nil
	}

	// Encode with an empty entry so that only the fields are written, in order.
	jsonEncoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{SkipLineEnding: true})
	buf, err := jsonEncoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return strings.Join(toPrint, "\t"), err
	}
	defer buf.Free()
	toPrint = append(toPrint, buf.String())
	return strings.Join(toPrint, "\t"), nil
}
