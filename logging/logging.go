package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.Mutex
	logFile *lumberjack.Logger
)

// Init points the global logger at writers, plus a rotating log file when
// file is set. With no writers it logs to stderr. A log file opened by an
// earlier Init is closed.
func Init(level, file string, writers ...io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logWriters := writers
	if len(logWriters) == 0 {
		logWriters = []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	}

	var lj *lumberjack.Logger
	if file != "" {
		err := os.MkdirAll(filepath.Dir(file), 0o750)
		if err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		lj = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    1,
			MaxBackups: 2,
		}
		logWriters = append(logWriters, lj)
	}

	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(io.MultiWriter(logWriters...)).
		With().Timestamp().Logger()

	old := logFile
	logFile = lj
	if old != nil {
		if err := old.Close(); err != nil {
			return fmt.Errorf("failed to close previous log file: %w", err)
		}
	}

	return nil
}

// Close closes the log file opened by Init, if any. Log output keeps going
// to the other writers.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// currentFile is the log file Init last opened.
func currentFile() *lumberjack.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logFile
}
