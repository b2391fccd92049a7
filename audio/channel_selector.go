// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelSelector keeps a subset of the channels of a source, in the order
// they were requested. An index may be listed more than once.
type ChannelSelector struct {
	src     Source
	indexes []int
	tmp     []float64
}

// NewChannelSelector returns a source that exposes the channels of src
// listed in indexes (zero based).
func NewChannelSelector(src Source, indexes []int) (*ChannelSelector, error) {
	if len(indexes) == 0 {
		return nil, ErrNoChannels
	}

	for _, idx := range indexes {
		if idx < 0 || idx >= src.Channels() {
			return nil, fmt.Errorf("%w: %d (source has %d)", ErrInvalidChannel, idx, src.Channels())
		}
	}

	return &ChannelSelector{
		src:     src,
		indexes: append([]int(nil), indexes...),
	}, nil
}

func (s *ChannelSelector) SampleRate() int { return s.src.SampleRate() }
func (s *ChannelSelector) Channels() int   { return len(s.indexes) }
func (s *ChannelSelector) BufSize() int    { return s.src.BufSize() }

func (s *ChannelSelector) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *ChannelSelector) ReadSamples(dst []float64) (int, error) {
	out := len(s.indexes)
	if len(dst)%out != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / out
	if frames == 0 {
		return 0, nil
	}

	in := s.src.Channels()
	need := frames * in
	if cap(s.tmp) < need {
		s.tmp = make([]float64, need)
	}
	tmp := s.tmp[:need]

	n, err := s.src.ReadSamples(tmp)
	got := n / in

	for f := range got {
		frame := tmp[f*in : (f+1)*in]
		for c, idx := range s.indexes {
			dst[f*out+c] = frame[idx]
		}
	}

	return got * out, err
}
