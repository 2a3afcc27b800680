// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spiveeworks/modal-input-prompt/commands"
	"github.com/spiveeworks/modal-input-prompt/internal/prompt"
	"github.com/spiveeworks/modal-input-prompt/internal/ui/styles"
)

const helpMenu = "echo: Prints input back to the screen.\n" +
	"multiple word test: Dummy command to test keyword parsing.\n" +
	"exit: Stop taking input and close the program.\n" +
	"help: Lists commands and explains their usage.\n"

func newREPL(input string, out io.Writer) *REPL {
	reg := commands.NewRegistry(nil)
	RegisterBuiltins(reg)
	return &REPL{
		Source:   prompt.NewReader(strings.NewReader(input), out),
		Out:      out,
		Registry: reg,
		Prompt:   "> ",
	}
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, newREPL(input, &out).Run(context.Background()))
	return out.String()
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "echo collapses whitespace",
			input: "echo   a   b\n",
			want:  "> a b\n> \n",
		},
		{
			name:  "bare help",
			input: "help\n",
			want:  "> " + helpMenu + "> \n",
		},
		{
			name:  "help echo",
			input: "help echo\n",
			want: "> Usage: echo [argument] [...]\n" +
				"Print arguments to the screen. Words with multiple spaces or tabs\n" +
				"between them will be printed with a single space between them instead.\n" +
				"> \n",
		},
		{
			name:  "help help",
			input: "help help\n",
			want: "> Usage: help [command]\n" +
				"Print a detailed message about how to use the given command. If no command\n" +
				"is specified, then a summary of all available commands is given instead.\n" +
				"> \n",
		},
		{
			name:  "exit with arguments keeps running",
			input: "exit extra\necho still here\n",
			want:  "> 'exit' does not take any arguments.\n> still here\n> \n",
		},
		{
			name:  "unknown command",
			input: "bogus\n",
			want:  "> Unknown command 'bogus'. Type 'help' for a list of commands.\n> \n",
		},
		{
			name:  "multiple word test",
			input: "multiple   word test a b\n",
			want:  "> Multiple word test was run with 2 arguments.\n> \n",
		},
		{
			name:  "blank lines are ignored",
			input: "\n   \n",
			want:  "> > > \n",
		},
		{
			name:  "partial final line is dispatched",
			input: "echo last",
			want:  "> last\n\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, run(t, tc.input))
		})
	}
}

func TestRunStopsAtExit(t *testing.T) {
	out := run(t, "echo one\nexit\necho two\n")
	require.Equal(t, "> one\n> ", out, "nothing after exit may run")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := newREPL("echo never\n", &out).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

type failingSource struct{ err error }

func (f failingSource) ReadLine(string) (string, error) { return "", f.err }
func (f failingSource) Close() error                    { return nil }

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	r := newREPL("", io.Discard)
	r.Source = failingSource{err: boom}

	err := r.Run(context.Background())
	require.ErrorIs(t, err, boom)

	r.Source = failingSource{err: prompt.ErrAborted}
	require.NoError(t, r.Run(context.Background()), "Ctrl+C ends the session cleanly")
}

func TestRunReportsActionErrors(t *testing.T) {
	var out bytes.Buffer
	r := newREPL("fail\necho ok\n", &out)
	r.Styles = styles.New(&out, styles.ModeNever)
	r.Registry.Register(&commands.Command{
		Phrase: commands.ParsePhrase("fail"),
		Action: func(*commands.Context) error { return errors.New("it broke") },
	})

	require.NoError(t, r.Run(context.Background()))
	require.Equal(t, "> Error: fail: it broke\n> ok\n> \n", out.String())
}

func TestRunLogsSession(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newREPL("echo hi\nexit\n", io.Discard)
	r.Logger = zap.New(core)

	require.NoError(t, r.Run(context.Background()))

	require.Equal(t, 1, logs.FilterMessage("session started").Len())
	require.Equal(t, 1, logs.FilterMessage("exit requested").Len())
	require.Equal(t, 2, logs.FilterMessage("keyword matched").Len())

	sessions := map[any]bool{}
	for _, e := range logs.All() {
		sessions[e.ContextMap()["session"]] = true
	}
	require.Len(t, sessions, 1, "every entry carries the same session id")
}
