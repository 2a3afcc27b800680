// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(calls *[]string) *Registry {
	r := NewRegistry(nil)
	r.Register(&Command{
		Phrase:  Phrase{"echo"},
		Summary: echoSummary,
		Detail:  echoDetail,
		Action: func(ctx *Context) error {
			*calls = append(*calls, "echo")
			fmt.Fprintln(ctx.Out, strings.Join(ctx.Args, " "))
			return nil
		},
	})
	r.Register(&Command{
		Phrase:  ParsePhrase("multiple word test"),
		Summary: testSummary,
		Action: func(ctx *Context) error {
			*calls = append(*calls, "multiple word test")
			return nil
		},
	})
	r.Register(&Command{
		Phrase:  Phrase{"exit"},
		Summary: exitSummary,
		NoArgs:  true,
		Action: func(ctx *Context) error {
			*calls = append(*calls, "exit")
			return ErrExit
		},
	})
	r.Register(&Command{
		Phrase:  Phrase{"secret"},
		Summary: "secret: never listed.\n",
		Detail:  "Usage: secret\n",
		Hidden:  true,
		Action: func(ctx *Context) error {
			*calls = append(*calls, "secret")
			return errors.New("boom")
		},
	})
	r.Register(&Command{
		Phrase:  Phrase{"help"},
		Summary: helpSummary,
		Detail:  helpDetail,
	})
	return r
}

func TestRegistryDispatch(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		calls   []string
		wantErr error
	}{
		{"echo   a   b", "a b\n", []string{"echo"}, nil},
		{"help", echoSummary + testSummary + exitSummary + helpSummary, nil, nil},
		{"help echo", echoDetail, nil, nil},
		{"help multiple word test", testSummary, nil, nil},
		{"help secret", "Usage: secret\n", nil, nil},
		{"help help", helpDetail, nil, nil},
		{"exit extra", "'exit' does not take any arguments.\n", nil, nil},
		{"exit", "", []string{"exit"}, ErrExit},
		{"bogus", "Unknown command 'bogus'. Type 'help' for a list of commands.\n", nil, nil},
		{"", "", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			var calls []string
			r := newTestRegistry(&calls)
			var buf bytes.Buffer

			err := r.Dispatch(NewLine(tc.input, &buf))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, buf.String())
			require.Equal(t, tc.calls, calls)
		})
	}
}

func TestRegistryDispatchWrapsActionError(t *testing.T) {
	var calls []string
	r := newTestRegistry(&calls)

	err := r.Dispatch(NewLine("secret", nil))
	require.Error(t, err)
	require.Equal(t, "secret: boom", err.Error())
	require.Equal(t, []string{"secret"}, calls)
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	r := NewRegistry(nil)
	var ran []string
	r.Register(&Command{Phrase: Phrase{"exit"}, Action: func(*Context) error {
		ran = append(ran, "exit")
		return nil
	}})
	r.Register(&Command{Phrase: ParsePhrase("exit now"), Action: func(*Context) error {
		ran = append(ran, "exit now")
		return nil
	}})

	require.NoError(t, r.Dispatch(NewLine("exit now", nil)))
	require.Equal(t, []string{"exit"}, ran)

	shadows := r.Shadowed()
	require.Len(t, shadows, 1)
	require.Equal(t, "exit", shadows[0].Winner.Phrase.String())
	require.Equal(t, "exit now", shadows[0].Loser.Phrase.String())
}

func TestRegistryActionSeesArguments(t *testing.T) {
	r := NewRegistry(nil)
	var got []string
	r.Register(&Command{Phrase: ParsePhrase("multiple word test"), Action: func(ctx *Context) error {
		got = ctx.Args
		require.NotNil(t, ctx.Logger)
		require.True(t, ctx.Line.Matched())
		return nil
	}})

	require.NoError(t, r.Dispatch(NewLine("multiple word test  1 2", nil)))
	require.Equal(t, []string{"1", "2"}, got)
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&Command{Phrase: Phrase{"dup"}})
	require.Panics(t, func() { r.Register(&Command{Phrase: ParsePhrase(" dup ")}) })
	require.Panics(t, func() { r.Register(&Command{Phrase: nil}) })
}

func TestRegistryPhrasesSkipHidden(t *testing.T) {
	var calls []string
	r := newTestRegistry(&calls)

	var got []string
	for _, p := range r.Phrases() {
		got = append(got, p.String())
	}
	require.Equal(t, []string{"echo", "multiple word test", "exit", "help"}, got)
	require.Len(t, r.All(), 5)
	require.NotNil(t, r.Get(Phrase{"secret"}))
	require.Nil(t, r.Get(Phrase{"nope"}))
}
