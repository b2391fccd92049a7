// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FFmpeg converts files by running the ffmpeg executable.
type FFmpeg struct {
	Path   string // executable, "ffmpeg" when empty
	Runner Runner
	Log    logrus.FieldLogger
}

// NewFFmpeg returns an FFmpeg running path through ExecRunner.
func NewFFmpeg(path string, log logrus.FieldLogger) *FFmpeg {
	return &FFmpeg{Path: path, Runner: ExecRunner{}, Log: orDiscard(log)}
}

// Args returns the ffmpeg command line for one conversion:
//
//	-loglevel error -i <in> [-map_channel 0.0.<c>]... [-ac 1] -ar <rate> -y <out>
func (f *FFmpeg) Args(in, out string, opts Options) []string {
	args := []string{"-loglevel", "error", "-i", in}

	for _, c := range opts.Channels {
		args = append(args, "-map_channel", "0.0."+strconv.Itoa(c))
	}

	if opts.Mix {
		args = append(args, "-ac", "1")
	}

	return append(args, "-ar", strconv.Itoa(opts.rate()), "-y", out)
}

// Convert runs ffmpeg and waits for it to exit. The conversion only counts
// as done when out exists afterwards.
func (f *FFmpeg) Convert(ctx context.Context, in, out string, opts Options) error {
	path := f.Path
	if path == "" {
		path = "ffmpeg"
	}

	log := orDiscard(f.Log).WithFields(logrus.Fields{
		"function": "FFmpeg.Convert",
		"in":       in,
		"out":      out,
	})

	args := f.Args(in, out, opts)
	log.WithField("args", args).Debug("running ffmpeg")

	err := f.Runner.Run(ctx, path, args, Handler{
		Line:    func(line string) { log.Info(line) },
		ErrLine: func(line string) { log.Warn(line) },
	})

	var startErr *StartError
	switch {
	case errors.As(err, &startErr):
		return err
	case err != nil:
		return fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	if err := checkOutput(out); err != nil {
		return err
	}

	log.Debug("converted")

	return nil
}

// checkOutput reports ErrConversionFailed unless out is an existing file.
func checkOutput(out string) error {
	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}
	if !info.Mode().IsRegular() {
		return errors.Wrapf(ErrConversionFailed, "%s is not a regular file", out)
	}

	return nil
}

func orDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}

	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
