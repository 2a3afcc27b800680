// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command is one entry of a Registry.
type Command struct {
	// Phrase is the keyword that selects the command, e.g. "multiple word test"
	Phrase Phrase

	// Summary is the one-line, newline-terminated text for the bare "help" menu
	Summary string

	// Detail is the usage text for "help <phrase>"; Summary is used when empty
	Detail string

	// NoArgs refuses the action when words follow the phrase
	NoArgs bool

	// Hidden commands still match and explain but are left out of the menu
	Hidden bool

	// Action runs when the command claims a line outside help mode. A nil
	// Action makes a help-only entry.
	Action func(ctx *Context) error
}

// detail returns the text printed for "help <phrase>".
func (c *Command) detail() string {
	if c.Detail != "" {
		return c.Detail
	}
	return c.Summary
}

// Context is handed to an Action.
type Context struct {
	// Line is the line that selected the command
	Line *Line

	// Args are the words left after the phrase
	Args []string

	// Out is where the action writes its output
	Out io.Writer

	// Logger is the registry logger, never nil
	Logger *zap.Logger
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds commands in the order they are tried.
type Registry struct {
	commands []*Command
	log      *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger is replaced with a
// no-op logger.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log}
}

// Register appends cmd. It panics if cmd has an empty phrase or if the
// phrase is already registered.
func (r *Registry) Register(cmd *Command) {
	if len(cmd.Phrase) == 0 {
		panic("commands: register with empty phrase")
	}
	if r.Get(cmd.Phrase) != nil {
		panic(fmt.Sprintf("command %s already registered", cmd.Phrase))
	}
	r.commands = append(r.commands, cmd)
}

// Get returns the command registered under p, or nil.
func (r *Registry) Get(p Phrase) *Command {
	for _, cmd := range r.commands {
		if cmd.Phrase.Equal(p) {
			return cmd
		}
	}
	return nil
}

// All returns the registered commands in registration order.
func (r *Registry) All() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Phrases returns the phrases of commands that show in the help menu.
func (r *Registry) Phrases() []Phrase {
	var out []Phrase
	for _, cmd := range r.commands {
		if !cmd.Hidden {
			out = append(out, cmd.Phrase)
		}
	}
	return out
}

// Shadow describes a command that can never see some inputs because an
// earlier command's phrase is a prefix of its own.
type Shadow struct {
	Winner *Command
	Loser  *Command
}

// Shadowed lists every pair where an earlier phrase is a prefix of a later
// one. Such pairs are legal; registration order decides the winner.
func (r *Registry) Shadowed() []Shadow {
	var out []Shadow
	for i, later := range r.commands {
		for _, earlier := range r.commands[:i] {
			if later.Phrase.HasPrefix(earlier.Phrase) {
				out = append(out, Shadow{Winner: earlier, Loser: later})
				break
			}
		}
	}
	return out
}

// Dispatch offers line to every command in order. At most one action runs
// and its error is returned. Help text, argument diagnostics, and the
// unknown-command message are written to the line's output.
func (r *Registry) Dispatch(line *Line) error {
	var (
		selected *Command
		actErr   error
	)
	for _, cmd := range r.commands {
		summary := cmd.Summary
		if cmd.Hidden {
			summary = ""
		}
		var ok bool
		if cmd.NoArgs {
			ok = line.MatchOrExplainSimple(cmd.Phrase, summary, cmd.detail())
		} else {
			ok = line.MatchOrExplain(cmd.Phrase, summary, cmd.detail())
		}
		if !ok || cmd.Action == nil {
			continue
		}
		// Later commands cannot match once the line is claimed, but they
		// are still offered so the loop mirrors a hand-written chain.
		selected = cmd
		actErr = cmd.Action(&Context{
			Line:   line,
			Args:   line.Queue().Words(),
			Out:    line.Output(),
			Logger: r.log,
		})
	}

	if err := line.Resolve(); err != nil {
		fmt.Fprintln(line.Output(), err.Error())
		return nil
	}

	if selected != nil {
		r.log.Debug("command dispatched", zap.Stringer("phrase", selected.Phrase), zap.Error(actErr))
	}
	if actErr != nil && !errors.Is(actErr, ErrExit) {
		return fmt.Errorf("%s: %w", selected.Phrase, actErr)
	}
	return actErr
}
