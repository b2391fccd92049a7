// SPDX-License-Identifier: EPL-2.0

package wavfile

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ik5/wavkit/utils"
)

// Normalize rewrites a mono file so that its loudest sample reaches full
// scale. Sample rate and width are kept. The file is left untouched when it
// has more than one channel or holds only silence.
func (fs *Files) Normalize(filename string) error {
	f, err := fs.Read(filename, Options{Data: true})
	if err != nil {
		return err
	}

	if f.NumChannels != 1 {
		return errors.Wrapf(ErrUnsupportedChannelCount, "%s has %d channels", filename, f.NumChannels)
	}

	normalized, err := utils.NormMaxAbs(f.Data[0])
	if err != nil {
		return errors.Wrapf(err, "could not normalize %s", filename)
	}

	fs.log.WithFields(logrus.Fields{
		"function": "Normalize",
		"file":     filename,
		"samples":  len(normalized),
	}).Info("normalizing")

	return fs.Write(filename, normalized, int(f.SampleRate), int(f.BitsPerSample))
}
