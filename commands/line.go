// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// HelpKeyword is the first word that puts a line into help mode.
const HelpKeyword = "help"

// =============================================================================
// LINE CONTEXT
// =============================================================================

// Line is the arbitration context for one input line. It owns the word
// queue, the help-mode flag, and the record of whether any command has
// already claimed the line. A Line is used for one line only and is not
// safe for concurrent use.
type Line struct {
	queue   *Queue
	help    bool
	matched bool
	out     io.Writer
	log     *zap.Logger
}

// LineOption configures a Line.
type LineOption func(*Line)

// WithLogger attaches a logger that records match decisions at debug level.
func WithLogger(log *zap.Logger) LineOption {
	return func(l *Line) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLine tokenizes text and prepares it for matching. If the first word
// is "help" it is consumed and the line is in help mode. Taking the help
// word does not count as a command match. Help and diagnostic text is
// written to out; a nil out discards it.
func NewLine(text string, out io.Writer, opts ...LineOption) *Line {
	return newLine(NewQueueFromLine(text), out, opts...)
}

// NewLineFromQueue is like NewLine for words that were already split.
func NewLineFromQueue(q *Queue, out io.Writer, opts ...LineOption) *Line {
	return newLine(q, out, opts...)
}

func newLine(q *Queue, out io.Writer, opts ...LineOption) *Line {
	if out == nil {
		out = io.Discard
	}
	l := &Line{queue: q, out: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	l.help = q.Consume(Phrase{HelpKeyword})
	return l
}

// Queue returns the words not yet consumed. Actions read their arguments
// from it.
func (l *Line) Queue() *Queue { return l.queue }

// Help reports whether the line is in help mode.
func (l *Line) Help() bool { return l.help }

// Matched reports whether a command has claimed the line.
func (l *Line) Matched() bool { return l.matched }

// Output returns the writer help and diagnostics go to.
func (l *Line) Output() io.Writer { return l.out }

// =============================================================================
// KEYWORD MATCHING
// =============================================================================

// Match consumes p from the front of the queue and claims the line. Once
// any command has claimed the line, Match returns false without looking
// at the queue, so at most one command matches per line.
func (l *Line) Match(p Phrase) bool {
	if l.matched {
		return false
	}
	if !l.queue.Consume(p) {
		return false
	}
	l.matched = true
	l.log.Debug("keyword matched",
		zap.Stringer("phrase", p),
		zap.Bool("help", l.help),
		zap.Int("remaining", l.queue.Len()))
	return true
}

// MatchOrExplain is Match with help handling. It returns true only when p
// matched and the line is not in help mode, meaning the caller should run
// the command.
//
// On a bare "help" line every command prints its summary in turn. On
// "help <phrase>" the matching command prints its detail text and consumes
// the same words it would have consumed outside help mode.
func (l *Line) MatchOrExplain(p Phrase, summary, detail string) bool {
	if l.help && l.queue.Empty() && !l.matched {
		l.print(summary)
		return false
	}
	if !l.Match(p) {
		return false
	}
	if l.help {
		l.print(detail)
		return false
	}
	return true
}

// MatchOrExplainSimple is MatchOrExplain for commands that take no
// arguments. If p matched but words remain, it prints a diagnostic and
// returns false so the action does not run. The line stays claimed.
func (l *Line) MatchOrExplainSimple(p Phrase, summary, detail string) bool {
	if !l.MatchOrExplain(p, summary, detail) {
		return false
	}
	if !l.queue.Empty() {
		err := &ArgumentsError{Phrase: p, Extra: l.queue.Words()}
		l.log.Debug("unexpected arguments", zap.Stringer("phrase", p), zap.Strings("extra", err.Extra))
		fmt.Fprintln(l.out, err.Error())
		return false
	}
	return true
}

// Resolve reports the outcome once every command has been offered. It
// returns an *UnknownCommandError when nothing matched and words remain.
// A claimed line is resolved even if its command left words unconsumed,
// and a line emptied without a match (bare "help") is not an error.
func (l *Line) Resolve() error {
	if l.matched {
		return nil
	}
	word, ok := l.queue.Front()
	if !ok {
		return nil
	}
	l.log.Debug("no command matched", zap.String("word", word))
	return &UnknownCommandError{Word: word}
}

func (l *Line) print(text string) {
	if text == "" {
		return
	}
	io.WriteString(l.out, text)
}
