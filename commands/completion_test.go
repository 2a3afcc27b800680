// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompleterCandidates(t *testing.T) {
	var calls []string
	c := NewCompleter(newTestRegistry(&calls))

	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"echo", "multiple word test", "exit", "help"}},
		{"e", []string{"echo", "exit"}},
		{"ec", []string{"echo"}},
		{"echo", []string{"echo"}},
		{"echo ", nil},
		{"echo hello", nil},
		{"multiple w", []string{"multiple word test"}},
		{"multiple ", []string{"multiple word test"}},
		{"multiple x", nil},
		{"hel", []string{"help"}},
		{"help", []string{"help"}},
		{"help ", []string{"help echo", "help multiple word test", "help exit", "help help"}},
		{"help ex", []string{"help exit"}},
		{"help multiple word ", []string{"help multiple word test"}},
		{"sec", nil},
		{"zzz", nil},
	}

	for _, tc := range tests {
		got := c.Candidates(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Candidates(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestCompletionDescription(t *testing.T) {
	var calls []string
	c := NewCompleter(newTestRegistry(&calls))

	got := c.Complete("ec")
	if len(got) != 1 {
		t.Fatalf("Complete(%q) returned %d completions, want 1", "ec", len(got))
	}
	if want := "echo: Prints input back to the screen."; got[0].Description() != want {
		t.Errorf("Description() = %q, want %q", got[0].Description(), want)
	}
}

func TestCompleterNilRegistry(t *testing.T) {
	var c Completer
	if got := c.Complete("echo"); got != nil {
		t.Errorf("Complete on empty completer = %v, want nil", got)
	}
}
