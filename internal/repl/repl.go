// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package repl runs the read-eval loop: read a line, offer it to every
// registered command, print the outcome, repeat.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spiveeworks/modal-input-prompt/commands"
	"github.com/spiveeworks/modal-input-prompt/internal/prompt"
	"github.com/spiveeworks/modal-input-prompt/internal/ui/styles"
)

// REPL ties a line source to a command registry.
type REPL struct {
	// Source supplies input lines
	Source prompt.Source

	// Out receives command output, help, and diagnostics
	Out io.Writer

	// Registry holds the commands in matching order
	Registry *commands.Registry

	// Prompt is shown before each read
	Prompt string

	// Styles renders error reports; nil means plain text
	Styles *styles.Styles

	// Logger records session events; nil disables logging
	Logger *zap.Logger
}

// Run reads and dispatches lines until end of input, an exit command, or
// ctx is cancelled. End of input and exit both return nil. Each line is
// fully dispatched before the next is read.
func (r *REPL) Run(ctx context.Context) error {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", uuid.NewString()))
	log.Info("session started")

	out := r.Out
	if out == nil {
		out = io.Discard
	}

	for lines := 0; ; lines++ {
		if err := ctx.Err(); err != nil {
			log.Info("session cancelled", zap.Int("lines", lines))
			return err
		}

		text, err := r.Source.ReadLine(r.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrAborted) {
				// Leave the terminal on a fresh line after ^D or ^C.
				fmt.Fprintln(out)
				log.Info("session ended", zap.Int("lines", lines), zap.Error(err))
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		line := commands.NewLine(text, out, commands.WithLogger(log))
		err = r.Registry.Dispatch(line)
		if errors.Is(err, commands.ErrExit) {
			log.Info("exit requested", zap.Int("lines", lines+1))
			return nil
		}
		if err != nil {
			log.Warn("command failed", zap.Error(err))
			fmt.Fprintln(out, r.renderError("Error: "+err.Error()))
		}
	}
}

func (r *REPL) renderError(text string) string {
	if r.Styles == nil {
		return text
	}
	return r.Styles.Error(text)
}
