package utils

import (
	"log"
	"os"
	"time"
)

// Logger is a small level-tagged wrapper over the standard log package.
type Logger struct {
	info *log.Logger
	warn *log.Logger
	err  *log.Logger
}

// NewLogger creates a logger writing info/warn to stdout and errors to stderr.
func NewLogger() *Logger {
	return &Logger{
		info: log.New(os.Stdout, "[INFO]  ", log.Lmsgprefix),
		warn: log.New(os.Stdout, "[WARN]  ", log.Lmsgprefix),
		err:  log.New(os.Stderr, "[ERROR] ", log.Lmsgprefix),
	}
}

func stamp() string {
	return time.Now().Format("15:04:05") + " "
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.info.Printf(stamp()+msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.warn.Printf(stamp()+msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.err.Printf(stamp()+msg, args...)
}
