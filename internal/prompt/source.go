// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spiveeworks/modal-input-prompt/commands"
)

// ErrAborted is returned when the user interrupts a prompt with Ctrl+C.
var ErrAborted = errors.New("prompt aborted")

// Source yields one line of input per call.
type Source interface {
	// ReadLine shows prompt and blocks until a full line is available. The
	// line has no trailing newline. At end of input it returns io.EOF.
	ReadLine(prompt string) (string, error)

	// Close releases the source. It does not close the underlying stream.
	Close() error
}

// =============================================================================
// STREAM READER
// =============================================================================

// Reader reads lines from a stream and writes prompts to a writer.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

// NewReader creates a Reader. A nil out discards prompts.
func NewReader(in io.Reader, out io.Writer) *Reader {
	if out == nil {
		out = io.Discard
	}
	return &Reader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements Source. Lines of any length are returned whole. If
// the stream ends in the middle of a line, that partial line is returned
// with a nil error and the following call returns io.EOF.
func (r *Reader) ReadLine(prompt string) (string, error) {
	if r.eof {
		return "", io.EOF
	}
	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", err
		}
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		r.eof = true
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// Close implements Source.
func (r *Reader) Close() error { return nil }

// =============================================================================
// SELECTION
// =============================================================================

type options struct {
	completer   *commands.Completer
	noTerminal  bool
	historySize int
}

// Option configures Open.
type Option func(*options)

// WithCompleter enables tab completion on terminals.
func WithCompleter(c *commands.Completer) Option {
	return func(o *options) { o.completer = c }
}

// WithoutTerminal forces the plain stream reader.
func WithoutTerminal() Option {
	return func(o *options) { o.noTerminal = true }
}

// WithHistorySize caps the in-memory history of terminal sessions.
func WithHistorySize(n int) Option {
	return func(o *options) { o.historySize = n }
}

// Open returns a Terminal when in and out are the process's own terminal
// and a Reader otherwise.
func Open(in io.Reader, out io.Writer, opts ...Option) Source {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.noTerminal && isInteractive(in, out) {
		return NewTerminal(o.completer, o.historySize)
	}
	return NewReader(in, out)
}

// isInteractive reports whether in is stdin and out is stdout and both are
// terminals. liner always talks to the process's own stdin and stdout.
func isInteractive(in io.Reader, out io.Writer) bool {
	fin, ok := in.(*os.File)
	if !ok || fin != os.Stdin {
		return false
	}
	fout, ok := out.(*os.File)
	if !ok || fout != os.Stdout {
		return false
	}
	return term.IsTerminal(int(fin.Fd())) && term.IsTerminal(int(fout.Fd()))
}
