// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Quiet(t *testing.T) {
	t.Parallel()

	log, closer := New(Options{})
	defer closer.Close()

	assert.Equal(t, io.Discard, log.Out)
	assert.False(t, log.IsLevelEnabled(logrus.InfoLevel))
}

func TestNew_Verbose(t *testing.T) {
	t.Parallel()

	log, closer := New(Options{Verbose: true})
	defer closer.Close()

	assert.Equal(t, os.Stderr, log.Out)
	assert.True(t, log.IsLevelEnabled(logrus.DebugLevel))
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wavkit.log")

	log, closer := New(Options{Verbose: true, File: path})

	log.WithFields(logrus.Fields{"function": "TestNew_File"}).Info("converted")
	require.NoError(t, closer.Close())

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "converted")
	assert.Contains(t, string(buf), "function=TestNew_File")
}

func TestNew_FileIgnoredWhenQuiet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wavkit.log")

	log, closer := New(Options{File: path})
	log.Error("dropped")
	require.NoError(t, closer.Close())

	assert.NoFileExists(t, path)
}
