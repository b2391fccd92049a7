// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavkit/utils"
)

// lowpassAlpha is the coefficient of the one-pole filter applied to every
// input frame when downsampling.
const lowpassAlpha = 0.5

// Resampler streams from src at a new sample rate using cubic interpolation.
// It works on interleaved samples and preserves the channel count.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2.
	// An invalid frame holds a copy of the frame before it.
	frames [4][]float64
	valid  [4]bool

	// position between frames[1] and frames[2], in source frames
	pos float64

	readBuf []float64
	primed  bool
	eof     bool

	lowpass  bool
	filtered bool
	state    []float64
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		readBuf:  make([]float64, channels),
		lowpass:  ratio > 1.0,
		state:    make([]float64, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float64, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads the next source frame into dst. It reports false once
// the source is exhausted.
func (r *Resampler) readFrame(dst []float64) (bool, error) {
	for empty := 0; !r.eof; empty++ {
		n, err := r.src.ReadSamples(r.readBuf)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n < r.channels {
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
			continue
		}

		copy(dst, r.readBuf)

		if r.lowpass {
			if !r.filtered {
				copy(r.state, dst)
				r.filtered = true
			}
			for c := range dst {
				dst[c] = lowpassAlpha*dst[c] + (1-lowpassAlpha)*r.state[c]
				r.state[c] = dst[c]
			}
		}

		return true, nil
	}

	return false, nil
}

// prime loads the first frame as both t-1 and t0, followed by t+1 and t+2.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.frames[1])
	if err != nil || !ok {
		return err
	}

	copy(r.frames[0], r.frames[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.frames); i++ {
		ok, err := r.readFrame(r.frames[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
		if !ok {
			copy(r.frames[i], r.frames[i-1])
		}
	}

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	oldest := r.frames[0]
	r.frames[0], r.frames[1], r.frames[2] = r.frames[1], r.frames[2], r.frames[3]
	r.frames[3] = oldest
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	ok, err := r.readFrame(r.frames[3])
	if err != nil {
		return err
	}

	r.valid[3] = ok
	if !ok {
		copy(r.frames[3], r.frames[2])
	}

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float64) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		r.primed = true
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] {
			break
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], r.pos)
		}

		written++
		r.pos += r.ratio
	}

	if !r.valid[1] {
		return written * r.channels, io.EOF
	}

	return written * r.channels, nil
}
