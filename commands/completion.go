// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is one candidate for the text typed so far.
type Completion struct {
	// Value is the full replacement line
	Value string

	// Command is the command the candidate selects
	Command *Command
}

// Description is the command summary without its trailing newline.
func (c Completion) Description() string {
	if c.Command == nil {
		return ""
	}
	return strings.TrimRight(c.Command.Summary, "\n")
}

// Completer completes command phrases against a registry.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer for registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns candidates, in registration order, for input typed up
// to the cursor. Every word before the last must equal the phrase word at
// that position; the last word is matched as a prefix unless input ends in
// whitespace. A leading "help" is kept so help topics complete too. Once a
// phrase is fully typed and followed by more words nothing is offered,
// since those words are arguments.
func (c *Completer) Complete(input string) []Completion {
	if c.registry == nil {
		return nil
	}

	words := Split(input)
	openWord := input != "" && !isSeparator(input[len(input)-1])

	lead := ""
	if len(words) > 0 && words[0] == HelpKeyword && (len(words) > 1 || !openWord) {
		lead = HelpKeyword + " "
		words = words[1:]
	}

	done, partial := words, ""
	if openWord && len(words) > 0 {
		done, partial = words[:len(words)-1], words[len(words)-1]
	}

	var out []Completion
	for _, cmd := range c.registry.All() {
		if cmd.Hidden || len(cmd.Phrase) <= len(done) {
			continue
		}
		if !cmd.Phrase.HasPrefix(Phrase(done)) {
			continue
		}
		if !strings.HasPrefix(cmd.Phrase[len(done)], partial) {
			continue
		}
		out = append(out, Completion{Value: lead + cmd.Phrase.String(), Command: cmd})
	}
	return out
}

// Candidates returns just the replacement lines, the shape line editors
// such as liner expect.
func (c *Completer) Candidates(input string) []string {
	completions := c.Complete(input)
	if len(completions) == 0 {
		return nil
	}
	out := make([]string, len(completions))
	for i, comp := range completions {
		out[i] = comp.Value
	}
	return out
}
