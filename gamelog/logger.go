// Package gamelog appends timestamped lines describing a session's moves
// to a per-session file. Writes are fire-and-forget: an unwritable log
// never fails the game.
package gamelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const fileTimeFormat = "20060102_150405"

type Logger struct {
	log  *logrus.Logger
	file *os.File
	path string
}

// New opens <dir>/<base>_<timestamp>.txt for appending. On any failure it
// falls back to stderr and keeps going.
func New(dir, base string) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC1123,
		DisableColors:   true,
	})

	name := fmt.Sprintf("%s_%s.txt", base, time.Now().Format(fileTimeFormat))
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(os.Stderr)
		log.Warnf("game log directory unavailable, logging to stderr: %v", err)
		return &Logger{log: log}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Warnf("game log file unavailable, logging to stderr: %v", err)
		return &Logger{log: log}
	}
	log.SetOutput(file)
	return &Logger{log: log, file: file, path: path}
}

// Nop returns a logger that discards everything. Used by tests and as the
// session default.
func Nop() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{log: log}
}

// Path is the log file's location, empty when logging to stderr or discard.
func (l *Logger) Path() string {
	return l.path
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
