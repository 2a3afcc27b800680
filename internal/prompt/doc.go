// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt reads lines of input for the read loop.
//
// Two sources are provided. Reader works on any stream and is used for
// pipes, files, and tests. Terminal uses liner for line editing, in-memory
// history, and tab completion when stdin is an interactive terminal. Both
// return io.EOF once input is exhausted.
//
//	src := prompt.Open(os.Stdin, os.Stdout, prompt.WithCompleter(completer))
//	defer src.Close()
//	for {
//	    line, err := src.ReadLine("> ")
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
package prompt
