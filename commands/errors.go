// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
)

// ErrExit is returned by an action that wants the read loop to stop.
var ErrExit = errors.New("exit requested")

// UnknownCommandError reports a line that no registered command claimed.
// Word is the first word left on the line.
type UnknownCommandError struct {
	Word string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command '%s'. Type 'help' for a list of commands.", e.Word)
}

// ArgumentsError reports trailing words given to a command that takes none.
type ArgumentsError struct {
	Phrase Phrase
	Extra  []string
}

func (e *ArgumentsError) Error() string {
	return fmt.Sprintf("'%s' does not take any arguments.", e.Phrase)
}
