package log

import (
	"io"
	"os"
	"sync"

	cblog "github.com/charmbracelet/log"
)

type Level = cblog.Level

const (
	DebugLevel = cblog.DebugLevel
	InfoLevel  = cblog.InfoLevel
	WarnLevel  = cblog.WarnLevel
	ErrorLevel = cblog.ErrorLevel
	FatalLevel = cblog.FatalLevel
)

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
	closer     io.Closer
	mu         sync.Mutex
)

// GetLogger returns the process logger. Output is discarded until
// SetOutput or OpenFile is called, since the terminal belongs to the UI.
func GetLogger() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = cblog.NewWithOptions(io.Discard, cblog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.000",
			Prefix:          "smartmattress",
			Level:           cblog.InfoLevel,
		})
	})
	return logger
}

func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

func SetLevel(level Level) {
	GetLogger().SetLevel(level)
}

// SetLevelString accepts debug, info, warn, error or fatal.
func SetLevelString(s string) error {
	level, err := cblog.ParseLevel(s)
	if err != nil {
		return err
	}
	SetLevel(level)
	return nil
}

// OpenFile routes log output to path, appending. Close releases it.
func OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	mu.Lock()
	if closer != nil {
		closer.Close()
	}
	closer = f
	mu.Unlock()

	SetOutput(f)
	return nil
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return
	}
	SetOutput(io.Discard)
	closer.Close()
	closer = nil
}

func With(keyvals ...interface{}) *cblog.Logger {
	return GetLogger().With(keyvals...)
}

func Debug(msg interface{}, keyvals ...interface{}) {
	GetLogger().Debug(msg, keyvals...)
}

func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func Info(msg interface{}, keyvals ...interface{}) {
	GetLogger().Info(msg, keyvals...)
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	GetLogger().Warn(msg, keyvals...)
}

func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	GetLogger().Error(msg, keyvals...)
}

func Errorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}

// Fatal and Fatalf always reach stderr, even when file logging is off.
func Fatal(msg interface{}, keyvals ...interface{}) {
	SetOutput(io.MultiWriter(os.Stderr, currentOutput()))
	GetLogger().Fatal(msg, keyvals...)
}

func Fatalf(format string, args ...interface{}) {
	SetOutput(io.MultiWriter(os.Stderr, currentOutput()))
	GetLogger().Fatalf(format, args...)
}

func currentOutput() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	if w, ok := closer.(io.Writer); ok {
		return w
	}
	return io.Discard
}
