// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import (
	"errors"
	"strings"

	"github.com/peterh/liner"

	"github.com/spiveeworks/modal-input-prompt/commands"
)

// Terminal reads lines from an interactive terminal with line editing.
// History lives only as long as the Terminal.
type Terminal struct {
	line        *liner.State
	historySize int
	entries     int
}

// NewTerminal puts the terminal into line-editing mode. Close must be
// called to restore it. A historySize of zero or less keeps every line.
func NewTerminal(completer *commands.Completer, historySize int) *Terminal {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if completer != nil {
		line.SetCompleter(completer.Candidates)
	}
	return &Terminal{line: line, historySize: historySize}
}

// ReadLine implements Source. Ctrl+C returns ErrAborted and Ctrl+D on an
// empty line returns io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	input, err := t.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", ErrAborted
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		t.remember(input)
	}
	return input, nil
}

// remember appends input to history, clearing it once the cap is reached.
// liner has no single-entry eviction.
func (t *Terminal) remember(input string) {
	if t.historySize > 0 && t.entries >= t.historySize {
		t.line.ClearHistory()
		t.entries = 0
	}
	t.line.AppendHistory(input)
	t.entries++
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.line.Close()
}
