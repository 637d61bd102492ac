// File: lixenwraith/benchconf/confirm.go
package benchconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Action is the outcome of a confirmation
type Action int

const (
	// Proceed reuses the existing directory
	Proceed Action = iota
	// Abort stops the run
	Abort
	// Redirect retries with Decision.Path
	Redirect
)

// Decision is a confirmation policy's answer for an existing directory
type Decision struct {
	Action Action
	Path   string // replacement directory when Action is Redirect
}

// Confirmer decides what to do when a directory the benchmark needs already exists.
type Confirmer interface {
	Confirm(path string) (Decision, error)
}

// AutoConfirm always proceeds, logging that the directory will be reused
type AutoConfirm struct {
	Logger logrus.FieldLogger
}

// Confirm implements Confirmer
func (a AutoConfirm) Confirm(path string) (Decision, error) {
	if a.Logger != nil {
		a.Logger.WithField("path", path).Warn("directory exists, overwriting")
	}
	return Decision{Action: Proceed}, nil
}

// Prompt asks on Out and reads one answer line from In:
// empty or "y" proceeds, "n" aborts, anything else names a replacement directory.
type Prompt struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewPrompt creates an interactive confirmer on the given streams
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out, reader: bufio.NewReader(in)}
}

// Confirm implements Confirmer
func (p *Prompt) Confirm(path string) (Decision, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	fmt.Fprintf(p.Out, "warning: directory %s exists\nOverwrite [Y/n/path]? ", path)

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return Decision{}, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.TrimSpace(line)
	switch strings.ToLower(answer) {
	case "", "y":
		return Decision{Action: Proceed}, nil
	case "n":
		return Decision{Action: Abort}, nil
	}
	return Decision{Action: Redirect, Path: answer}, nil
}

// ConfirmerFor selects the policy for the confirm key: interactive when true
func ConfirmerFor(opts GlobalOptions, in io.Reader, out io.Writer, logger logrus.FieldLogger) Confirmer {
	if opts.Confirm {
		return NewPrompt(in, out)
	}
	return AutoConfirm{Logger: logger}
}

// PrepareDir creates path. When it already exists the confirmer decides whether to reuse
// it, abort with ErrAborted, or retry with a replacement path. The final path is returned.
func PrepareDir(path string, c Confirmer) (string, error) {
	if c == nil {
		c = AutoConfirm{}
	}
	for {
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return "", fmt.Errorf("failed to create directory '%s': a file with that name exists", path)

		case err == nil:
			decision, err := c.Confirm(path)
			if err != nil {
				return "", err
			}
			switch decision.Action {
			case Proceed:
				return path, nil
			case Abort:
				return "", ErrAborted
			case Redirect:
				path = decision.Path
				continue
			}
			return "", fmt.Errorf("unknown confirmation action %d", decision.Action)

		case !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("failed to stat directory '%s': %w", path, err)
		}

		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory '%s': %w", path, err)
		}
		return path, nil
	}
}
