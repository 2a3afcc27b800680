// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the modal-prompt command line.
//
// The root command loads configuration, builds the logger and the command
// registry, picks a line source, and runs the read loop until end of input
// or an exit command.
//
// # Usage
//
//	os.Exit(cli.Execute())
//
// # Commands Overview
//
//   - modal-prompt: interactive read loop (default)
//   - modal-prompt version: print build information
package cli
