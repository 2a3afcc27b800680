// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the keyword dispatch engine for line-oriented
// interactive tools.
//
// A line of input is split into whitespace-delimited words and placed in a
// Queue. Commands are offered to the line one at a time, in registration
// order; the first command whose keyword phrase matches the front of the
// queue consumes those words and claims the line. Later commands never
// match that line, even if their phrase would.
//
// A line whose first word is "help" is in help mode: no action runs.
// Bare "help" prints one summary per command; "help <command>" prints only
// that command's detailed usage.
//
// # Key Types
//
//   - Queue: the unconsumed words of one line
//   - Phrase: a one-or-more word command keyword
//   - Line: per-line arbitration context (queue, help mode, match state)
//   - Registry: ordered command definitions with Dispatch
//   - Completer: tab completion over registered phrases
//
// # Usage
//
// Match commands by hand:
//
//	line := commands.NewLine(input, os.Stdout)
//	if line.MatchOrExplain(commands.ParsePhrase("echo"), echoSummary, echoDetail) {
//	    fmt.Println(line.Queue().String())
//	}
//	if err := line.Resolve(); err != nil {
//	    fmt.Println(err)
//	}
//
// Or let a Registry drive the same loop:
//
//	reg := commands.NewRegistry(nil)
//	reg.Register(&commands.Command{Phrase: commands.ParsePhrase("echo"), ...})
//	err := reg.Dispatch(commands.NewLine(input, os.Stdout))
package commands
