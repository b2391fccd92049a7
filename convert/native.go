// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/formats/aiff"
	"github.com/ik5/wavkit/formats/flac"
	"github.com/ik5/wavkit/formats/mp3"
	"github.com/ik5/wavkit/formats/vorbis"
	"github.com/ik5/wavkit/formats/wav"
	"github.com/ik5/wavkit/wavfile"
)

// outputBits is the sample width Native writes.
const outputBits = 16

// DefaultRegistry returns a registry holding every decoder wavkit ships,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// Native converts files in process: decode, select channels, mix,
// resample and write 16-bit PCM.
type Native struct {
	Registry   *audio.Registry
	Files      *wavfile.Files
	Log        logrus.FieldLogger
	BufferSize int
}

// NewNative returns a Native using DefaultRegistry.
func NewNative(log logrus.FieldLogger) *Native {
	log = orDiscard(log)

	return &Native{
		Registry:   DefaultRegistry(),
		Files:      wavfile.New(log),
		Log:        log,
		BufferSize: 4096,
	}
}

func (n *Native) Convert(ctx context.Context, in, out string, opts Options) error {
	log := orDiscard(n.Log).WithFields(logrus.Fields{
		"function": "Native.Convert",
		"in":       in,
		"out":      out,
	})

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in), "."))
	dec, ok := n.Registry.Get(ext)
	if !ok {
		return errors.Wrapf(ErrUnknownFormat, "%s", in)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(in)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", in)
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrConversionFailed, in, err)
	}
	defer src.Close()

	log.WithFields(logrus.Fields{
		"rate":     src.SampleRate(),
		"channels": src.Channels(),
	}).Debug("decoded")

	rendered, err := wavkit.Render(src, wavkit.RenderOptions{
		Channels:   opts.Channels,
		Mix:        opts.Mix,
		SampleRate: opts.rate(),
	}, n.bufferSize())
	if err != nil {
		return fmt.Errorf("%w: rendering %s: %w", ErrConversionFailed, in, err)
	}

	// rendering can take a while; do not write after the caller gave up
	if err := ctx.Err(); err != nil {
		return err
	}

	files := n.Files
	if files == nil {
		files = wavfile.New(n.Log)
	}

	err = files.WriteInterleaved(out, rendered.Samples, rendered.Channels, rendered.SampleRate, outputBits)
	if err != nil {
		return err
	}

	if err := checkOutput(out); err != nil {
		return err
	}

	log.WithField("samples", len(rendered.Samples)).Debug("converted")

	return nil
}

func (n *Native) bufferSize() int {
	if n.BufferSize <= 0 {
		return 4096
	}

	return n.BufferSize
}
