// SPDX-License-Identifier: EPL-2.0

package wavfile

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ik5/wavkit/formats/wav"
)

// Options selects the optional parts Read fills in.
type Options struct {
	Hash bool // compute File.Hash
	Data bool // decode File.Data
}

// File is a parsed WAV file.
type File struct {
	wav.Descriptor

	// Hash is the content hash of the payload, empty unless requested.
	Hash string

	// Data holds one slice of samples per channel, nil unless requested.
	Data [][]float64
}

// Files performs file level WAV operations.
type Files struct {
	log logrus.FieldLogger
}

// New returns a Files that logs to log. A nil log discards everything.
func New(log logrus.FieldLogger) *Files {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Files{log: log}
}

// Read parses filename and optionally hashes and decodes its payload.
func (fs *Files) Read(filename string, opts Options) (*File, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", filename)
	}

	d, err := wav.ParseHeader(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", filename)
	}

	f := &File{Descriptor: d}

	if opts.Hash {
		f.Hash = wav.Hash(buf, d)
	}

	if opts.Data {
		if f.Data, err = wav.Decode(buf, d); err != nil {
			return nil, errors.Wrapf(err, "could not decode %s", filename)
		}
	}

	fs.log.WithFields(logrus.Fields{
		"function": "Read",
		"file":     filename,
		"channels": d.NumChannels,
		"rate":     d.SampleRate,
		"bits":     d.BitsPerSample,
		"samples":  d.NumSamples(),
	}).Debug("read wav file")

	return f, nil
}

// Hash returns the content hash of filename.
func (fs *Files) Hash(filename string) (string, error) {
	f, err := fs.Read(filename, Options{Hash: true})
	if err != nil {
		return "", err
	}

	if f.Hash == "" {
		return "", errors.Wrap(ErrHashUnavailable, filename)
	}

	return f.Hash, nil
}

// Write encodes mono samples and replaces filename with the result.
func (fs *Files) Write(filename string, samples []float64, sampleRate, bitsPerSample int) error {
	return fs.WriteInterleaved(filename, samples, 1, sampleRate, bitsPerSample)
}

// WriteInterleaved encodes interleaved samples of channels channels and
// replaces filename with the result.
func (fs *Files) WriteInterleaved(filename string, samples []float64, channels, sampleRate, bitsPerSample int) error {
	buf, err := wav.EncodeChannels(samples, channels, sampleRate, bitsPerSample)
	if err != nil {
		return errors.Wrapf(err, "could not encode %s", filename)
	}

	if err := writeAtomic(filename, buf); err != nil {
		return err
	}

	fs.log.WithFields(logrus.Fields{
		"function": "Write",
		"file":     filename,
		"channels": channels,
		"rate":     sampleRate,
		"bits":     bitsPerSample,
		"bytes":    len(buf),
	}).Debug("wrote wav file")

	return nil
}

// writeAtomic writes buf to a temporary file next to filename and renames it
// into place. An existing target keeps its permissions, and a symlink keeps
// pointing at the file it resolves to, which is the one replaced.
func writeAtomic(filename string, buf []byte) error {
	if resolved, err := filepath.EvalSymlinks(filename); err == nil {
		filename = resolved
	}

	mode := os.FileMode(0o644)
	if info, err := os.Lstat(filename); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return errors.Wrapf(err, "could not create temporary file for %s", filename)
	}

	name := tmp.Name()
	fail := func(err error, msg string) error {
		_ = tmp.Close()
		_ = os.Remove(name)
		return errors.Wrapf(err, msg, filename)
	}

	if _, err := tmp.Write(buf); err != nil {
		return fail(err, "could not write %s")
	}
	if err := tmp.Sync(); err != nil {
		return fail(err, "could not sync %s")
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err, "could not set mode of %s")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return errors.Wrapf(err, "could not close %s", filename)
	}

	if err := os.Rename(name, filename); err != nil {
		_ = os.Remove(name)
		return errors.Wrapf(err, "could not replace %s", filename)
	}

	return nil
}

// Copy streams src to dst. dst is removed again if anything fails after it
// was created.
func (fs *Files) Copy(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", src)
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "could not stat %s", src)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return errors.Wrapf(ErrSameFile, "%s and %s", src, dst)
	}

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", dst)
	}

	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(dst)
		}
	}()

	n, err := io.Copy(out, in)
	if err != nil {
		return errors.Wrapf(err, "could not copy %s to %s", src, dst)
	}

	if err = out.Close(); err != nil {
		return errors.Wrapf(err, "could not close %s", dst)
	}

	fs.log.WithFields(logrus.Fields{
		"function": "Copy",
		"src":      src,
		"dst":      dst,
		"bytes":    n,
	}).Debug("copied file")

	return nil
}
