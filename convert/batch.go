// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultSettle is how long Watch waits after the last write to a file
// before converting it.
const DefaultSettle = 500 * time.Millisecond

// Batch converts every file of a directory with one Converter.
type Batch struct {
	Converter Converter
	Options   Options
	Log       logrus.FieldLogger

	// Settle is the quiet period Watch waits for, DefaultSettle when zero.
	Settle time.Duration
}

// NewBatch returns a Batch that mixes everything down to mono at the
// default rate.
func NewBatch(conv Converter, log logrus.FieldLogger) *Batch {
	return &Batch{
		Converter: conv,
		Options:   Options{Mix: true},
		Log:       orDiscard(log),
	}
}

// Dir converts every regular file in origin with conv into destination
// using NewBatch defaults.
func Dir(ctx context.Context, conv Converter, origin, destination string) error {
	return NewBatch(conv, nil).Dir(ctx, origin, destination)
}

// OutputName maps an input file name to the name of its converted file: a
// trailing ".wav" is dropped and ".wav" appended.
func OutputName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), ".wav") + ".wav"
}

// Dir converts the regular files of origin one at a time in directory
// order and stops at the first failure. Subdirectories and symlinks are
// skipped.
func (b *Batch) Dir(ctx context.Context, origin, destination string) error {
	log := orDiscard(b.Log).WithFields(logrus.Fields{
		"function":    "Batch.Dir",
		"origin":      origin,
		"destination": destination,
	})

	entries, err := os.ReadDir(origin)
	if err != nil {
		return errors.Wrapf(err, "could not list %s", origin)
	}

	converted := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			log.WithField("entry", e.Name()).Debug("skipping")
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := b.convert(ctx, origin, destination, e.Name()); err != nil {
			return err
		}
		converted++
	}

	log.WithField("converted", converted).Info("directory converted")

	return nil
}

func (b *Batch) convert(ctx context.Context, origin, destination, name string) error {
	in := filepath.Join(origin, name)
	out := filepath.Join(destination, OutputName(name))

	if err := b.Converter.Convert(ctx, in, out, b.Options); err != nil {
		return errors.Wrapf(err, "converting %s", in)
	}

	orDiscard(b.Log).WithFields(logrus.Fields{
		"function": "Batch.convert",
		"in":       in,
		"out":      out,
	}).Info("converted")

	return nil
}

// Watch converts files that appear in origin after it started, until ctx
// is done. A file is converted once it has not been written to for Settle.
// Conversion failures are logged and watching goes on; a failure of the
// watcher itself is returned.
func (b *Batch) Watch(ctx context.Context, origin, destination string) error {
	log := orDiscard(b.Log).WithFields(logrus.Fields{
		"function": "Batch.Watch",
		"origin":   origin,
	})

	if filepath.Clean(origin) == filepath.Clean(destination) {
		return errors.Wrap(ErrSameDirectory, origin)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer w.Close()

	if err := w.Add(origin); err != nil {
		return errors.Wrapf(err, "could not watch %s", origin)
	}

	settle := b.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}

	tick := time.NewTicker(settle / 2)
	defer tick.Stop()

	// last write seen per pending file
	pending := make(map[string]time.Time)

	log.Info("watching")

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			info, err := os.Lstat(ev.Name)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			pending[ev.Name] = time.Now()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watcher failed")

		case now := <-tick.C:
			for path, last := range pending {
				if now.Sub(last) < settle {
					continue
				}
				delete(pending, path)

				if err := b.convert(ctx, origin, destination, filepath.Base(path)); err != nil {
					log.WithError(err).Error("conversion failed")
				}
			}
		}
	}
}
