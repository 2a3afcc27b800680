// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"slices"
	"strings"
)

// Queue holds the words of one input line that no command has consumed
// yet. Words stay in their original order; the only mutation is removing
// a matched prefix with Consume.
type Queue struct {
	words []string
}

// NewQueue returns a queue holding words. The slice is copied.
func NewQueue(words ...string) *Queue {
	return &Queue{words: slices.Clone(words)}
}

// NewQueueFromLine tokenizes line into a fresh queue.
func NewQueueFromLine(line string) *Queue {
	return &Queue{words: Split(line)}
}

// Len returns the number of remaining words.
func (q *Queue) Len() int {
	return len(q.words)
}

// Empty reports whether every word has been consumed.
func (q *Queue) Empty() bool {
	return len(q.words) == 0
}

// Front returns the first remaining word.
func (q *Queue) Front() (string, bool) {
	if len(q.words) == 0 {
		return "", false
	}
	return q.words[0], true
}

// Words returns a copy of the remaining words.
func (q *Queue) Words() []string {
	return slices.Clone(q.words)
}

// String joins the remaining words with single spaces.
func (q *Queue) String() string {
	return strings.Join(q.words, " ")
}

// HasPrefix reports whether p matches the front of the queue without
// consuming anything. Matching is exact: "ech" does not match "echo".
func (q *Queue) HasPrefix(p Phrase) bool {
	if len(p) == 0 || len(q.words) < len(p) {
		return false
	}
	for i, w := range p {
		if q.words[i] != w {
			return false
		}
	}
	return true
}

// Consume removes the words of p from the front of the queue if they match
// exactly and reports whether it did. A failed Consume leaves the queue as
// it was; there is no partial consumption. An empty phrase never matches.
func (q *Queue) Consume(p Phrase) bool {
	if !q.HasPrefix(p) {
		return false
	}
	q.words = q.words[len(p):]
	return true
}
