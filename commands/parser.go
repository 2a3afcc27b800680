// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"iter"
	"slices"
	"strings"
)

// =============================================================================
// TOKENIZER
// =============================================================================

// isSeparator reports whether c splits words. Only these five bytes count;
// other whitespace (vertical tab, form feed, non-ASCII spaces) is ordinary
// text.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', 0:
		return true
	}
	return false
}

// Words returns the words of line in left-to-right order. Runs of
// separators are collapsed and no empty word is ever produced. There is no
// quoting or escaping: a quote character is part of the word it appears in.
//
// The sequence may be ranged over any number of times.
func Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i := 0; i < len(line); i++ {
			if isSeparator(line[i]) {
				if start >= 0 {
					if !yield(line[start:i]) {
						return
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(line[start:])
		}
	}
}

// Split returns all words of line as a slice. An empty or all-whitespace
// line gives a nil slice.
func Split(line string) []string {
	return slices.Collect(Words(line))
}

// =============================================================================
// KEYWORD PHRASE
// =============================================================================

// Phrase is the keyword of a command: one or more literal words compared
// positionally against the front of a Queue.
type Phrase []string

// ParsePhrase splits s into a Phrase using the same rules as input lines,
// so "multiple  word test" and "multiple word test" are the same phrase.
func ParsePhrase(s string) Phrase {
	return Phrase(Split(s))
}

// String joins the phrase words with single spaces.
func (p Phrase) String() string {
	return strings.Join(p, " ")
}

// Equal reports whether p and other have the same words.
func (p Phrase) Equal(other Phrase) bool {
	return slices.Equal(p, other)
}

// HasPrefix reports whether the words of prefix are the first words of p.
func (p Phrase) HasPrefix(prefix Phrase) bool {
	return len(prefix) <= len(p) && slices.Equal(p[:len(prefix)], prefix)
}
