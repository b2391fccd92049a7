// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Handler receives the output of a process one line at a time, without the
// line terminator. Either callback may be nil.
type Handler struct {
	Line    func(string) // stdout
	ErrLine func(string) // stderr
}

// Runner runs an external program to completion.
type Runner interface {
	// Run returns once the process has exited and both of its output
	// streams are drained.
	Run(ctx context.Context, name string, args []string, h Handler) error
}

// StartError is returned by ExecRunner when the process could not be
// started at all, such as a missing executable.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return "could not start " + e.Name + ": " + e.Err.Error()
}

func (e *StartError) Unwrap() error { return e.Err }

// ExecRunner runs programs with os/exec. Cancelling ctx kills the process.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, h Handler) error {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &StartError{Name: name, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &StartError{Name: name, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &StartError{Name: name, Err: err}
	}

	var (
		wg      sync.WaitGroup
		readErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		readErr = scanLines(stdout, h.Line)
	}()
	go func() {
		defer wg.Done()
		// stderr is informational only
		_ = scanLines(stderr, h.ErrLine)
	}()
	wg.Wait()

	waitErr := cmd.Wait()

	if readErr != nil {
		return errors.Wrapf(readErr, "reading output of %s", name)
	}
	if waitErr != nil {
		return errors.Wrapf(waitErr, "%s", name)
	}

	return nil
}

// scanLines calls fn for every line of r, however long. On a read error the
// rest of r is discarded so the writing process is never blocked.
func scanLines(r io.Reader, fn func(string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" && fn != nil {
			fn(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}

		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			_, _ = io.Copy(io.Discard, r)
			return err
		}
	}
}
