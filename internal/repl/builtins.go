// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package repl

import (
	"fmt"
	"strings"

	"github.com/spiveeworks/modal-input-prompt/commands"
)

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

// RegisterBuiltins adds the demo command set to r. Order matters: it is
// the order of the help menu and of matching.
func RegisterBuiltins(r *commands.Registry) {
	r.Register(&commands.Command{
		Phrase:  commands.ParsePhrase("echo"),
		Summary: "echo: Prints input back to the screen.\n",
		Detail: "Usage: echo [argument] [...]\n" +
			"Print arguments to the screen. Words with multiple spaces or tabs\n" +
			"between them will be printed with a single space between them instead.\n",
		Action: handleEcho,
	})

	r.Register(&commands.Command{
		Phrase:  commands.ParsePhrase("multiple word test"),
		Summary: "multiple word test: Dummy command to test keyword parsing.\n",
		Action:  handleMultipleWordTest,
	})

	r.Register(&commands.Command{
		Phrase:  commands.ParsePhrase("exit"),
		Summary: "exit: Stop taking input and close the program.\n",
		NoArgs:  true,
		Action:  handleExit,
	})

	// Never runs: the only line that reaches it is "help help". It is here
	// so help has a help message.
	r.Register(&commands.Command{
		Phrase:  commands.ParsePhrase(commands.HelpKeyword),
		Summary: "help: Lists commands and explains their usage.\n",
		Detail: "Usage: help [command]\n" +
			"Print a detailed message about how to use the given command. If no command\n" +
			"is specified, then a summary of all available commands is given instead.\n",
	})
}

func handleEcho(ctx *commands.Context) error {
	_, err := fmt.Fprintln(ctx.Out, strings.Join(ctx.Args, " "))
	return err
}

func handleMultipleWordTest(ctx *commands.Context) error {
	_, err := fmt.Fprintf(ctx.Out, "Multiple word test was run with %d arguments.\n", len(ctx.Args))
	return err
}

func handleExit(ctx *commands.Context) error {
	return commands.ErrExit
}
