// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by New. They match the config package values.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Styles renders text for one writer.
type Styles struct {
	enabled bool

	prompt  lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

// New creates styles for w. In auto mode color is used only when w is a
// terminal and NO_COLOR is unset.
func New(w io.Writer, mode string) *Styles {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case ModeNever:
		r.SetColorProfile(termenv.Ascii)
	case ModeAlways:
		r.SetColorProfile(termenv.ANSI256)
	default:
		if termenv.EnvNoColor() {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return &Styles{
		enabled: r.ColorProfile() != termenv.Ascii,
		prompt:  r.NewStyle().Foreground(Cyan).Bold(true),
		err:     r.NewStyle().Foreground(Rose).Bold(true),
		warning: r.NewStyle().Foreground(Amber),
		muted:   r.NewStyle().Foreground(TextSecondary),
	}
}

// Enabled reports whether rendering adds escape sequences.
func (s *Styles) Enabled() bool { return s.enabled }

// Prompt renders the read prompt.
func (s *Styles) Prompt(text string) string { return s.render(s.prompt, text) }

// Error renders a one-line error message.
func (s *Styles) Error(text string) string { return s.render(s.err, text) }

// Warning renders a one-line warning.
func (s *Styles) Warning(text string) string { return s.render(s.warning, text) }

// Muted renders secondary text.
func (s *Styles) Muted(text string) string { return s.render(s.muted, text) }

// render leaves text untouched when color is off. lipgloss would still
// expand tabs, which would change what the user typed.
func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return style.Render(text)
}
