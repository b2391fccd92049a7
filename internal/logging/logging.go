// SPDX-License-Identifier: EPL-2.0

// Package logging builds the logrus logger handed to every wavkit component.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits of the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

type Options struct {
	// Verbose enables output at debug level. A quiet logger discards
	// everything.
	Verbose bool

	// File sends output to a size rotated file instead of stderr.
	File string
}

// New returns a logger and the closer of its output. Close it before the
// program exits so a log file is flushed.
func New(opts Options) (*logrus.Logger, io.Closer) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if !opts.Verbose {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		return log, nopCloser{}
	}

	log.SetLevel(logrus.DebugLevel)

	if opts.File == "" {
		log.SetOutput(os.Stderr)
		return log, nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	log.SetOutput(file)

	return log, file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
