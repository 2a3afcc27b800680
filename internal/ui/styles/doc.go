// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the terminal styling for prompts and diagnostics.
//
// Colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
// Styling is bound to the writer it will be printed to, so output piped to
// a file or captured in a test stays plain text.
//
// # Usage
//
//	st := styles.New(os.Stdout, config.ColorAuto)
//	fmt.Fprintln(os.Stdout, st.Error("something failed"))
package styles
