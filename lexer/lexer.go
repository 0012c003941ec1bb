// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lexer implements a longest-match tokenizer for Mirth source. A
// [Lexer] tries every [Rule] at the start of the remaining input and emits a
// [Token] for the rule with the longest match, preferring the earliest rule
// when matches are the same length.
package lexer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ianlewis/mirthlex/value"
)

var (
	// ErrLex indicates that no rule matched the remaining input.
	ErrLex = errors.New("expected token")

	// ErrDecode indicates that a rule matched but its value could not be
	// decoded.
	ErrDecode = errors.New("decode error")

	// ErrDelimiter indicates a string literal with missing or mismatched
	// quotes.
	ErrDelimiter = errors.New("invalid string delimiter")

	// ErrUnknownEscape indicates an unrecognized backslash escape.
	ErrUnknownEscape = errors.New("unknown escape sequence")

	// ErrDanglingEscape indicates a string literal ending in a backslash.
	ErrDanglingEscape = errors.New("unexpected escape at end of string")

	// ErrInvalidKind indicates a rule created with an unknown [Kind].
	ErrInvalidKind = errors.New("invalid rule kind")
)

// previewLen is the number of runes of unmatched input shown in errors.
const previewLen = 5

// Token is a tokenized input which is emitted by a [Lexer].
type Token struct {
	// Kind is the kind of the rule that produced the Token.
	Kind Kind

	// Name is the name of the rule that produced the Token.
	Name string

	// Text is the exact input matched by the rule.
	Text string

	// Value is the decoded value of Text.
	Value value.Value

	// Loc is the location in the input where the Token was found.
	Loc Location
}

// String returns a string representation of the Token.
func (t *Token) String() string {
	return fmt.Sprintf("%s: %s %s %q", t.Loc, t.Kind, t.Name, t.Text)
}

// NextLocation returns the location immediately following the Token.
func (t *Token) NextLocation() Location {
	return t.Loc.Advance(t.Text)
}

// CanDup implements [value.Duplicable]. A Token can be duplicated if its
// value can.
func (t *Token) CanDup() bool {
	return value.CanDup(t.Value)
}

// CanDrop implements [value.Droppable].
func (t *Token) CanDrop() bool {
	return value.CanDrop(t.Value)
}

// Lexer splits source text into [Token]s. A Lexer is not safe for concurrent
// use.
type Lexer struct {
	// src is the input that has not yet been tokenized.
	src string

	// loc is the location of the start of src.
	loc Location

	// rules are the rules in priority order.
	rules []*Rule

	// err is the first error the lexer encountered. It is io.EOF once the
	// input is exhausted.
	err error
}

// NewLexer creates a new Lexer over src starting at loc. A Row or Column of
// loc less than 1 is replaced with 1, so a zero loc is the start of the file
// at loc.Path. If rules is nil, [DefaultRules] are used.
func NewLexer(src string, loc Location, rules []*Rule) *Lexer {
	if loc.Row < 1 {
		loc.Row = 1
	}
	if loc.Column < 1 {
		loc.Column = 1
	}
	if rules == nil {
		rules = DefaultRules()
	}
	return &Lexer{
		src:   src,
		loc:   loc,
		rules: rules,
	}
}

// Location returns the location of the next token.
func (l *Lexer) Location() Location {
	return l.loc
}

// Remaining returns the input that has not yet been tokenized.
func (l *Lexer) Remaining() string {
	return l.src
}

// NextToken returns the next token from the input. It returns [io.EOF] when
// the input is exhausted. Tokens of kind [KindIgnore] are returned like any
// other. Once NextToken returns an error, subsequent calls return the same
// error.
func (l *Lexer) NextToken(ctx context.Context) (*Token, error) {
	if l.err != nil {
		return nil, l.err
	}

	select {
	case <-ctx.Done():
		l.err = ctx.Err()
		return nil, l.err
	default:
	}

	if l.src == "" {
		l.err = io.EOF
		return nil, l.err
	}

	var best *Rule
	var bestText string
	var bestLen int
	for _, rule := range l.rules {
		text := rule.Match(l.src)
		if text == "" {
			continue
		}
		// Only a strictly longer match replaces the current best so that
		// earlier rules win ties.
		if n := utf8.RuneCountInString(text); n > bestLen {
			best, bestText, bestLen = rule, text, n
		}
	}

	if best == nil {
		l.err = fmt.Errorf("%s: %w, got %q", l.loc, ErrLex, preview(l.src))
		return nil, l.err
	}

	val, err := best.Decode(bestText)
	if err != nil {
		if !errors.Is(err, ErrDelimiter) && !errors.Is(err, ErrUnknownEscape) &&
			!errors.Is(err, ErrDanglingEscape) && !errors.Is(err, ErrDecode) {
			err = fmt.Errorf("%w: %w", ErrDecode, err)
		}
		l.err = fmt.Errorf("%s: %w", l.loc, err)
		return nil, l.err
	}

	token := &Token{
		Kind:  best.Kind(),
		Name:  best.Name(),
		Text:  bestText,
		Value: val,
		Loc:   l.loc,
	}

	l.src = l.src[len(bestText):]
	l.loc = l.loc.Advance(bestText)

	return token, nil
}

// Err returns the error encountered by the lexer, if any. If the input was
// exhausted normally, it returns nil.
func (l *Lexer) Err() error {
	if errors.Is(l.err, io.EOF) {
		return nil
	}
	return l.err
}

// CanDup implements [value.Duplicable]. A Lexer holds mutable state and is
// never duplicated.
func (*Lexer) CanDup() bool { return false }

// CanDrop implements [value.Droppable].
func (*Lexer) CanDrop() bool { return true }

// preview returns the first few runes of s for use in error messages.
func preview(s string) string {
	i := 0
	for n := range s {
		if i == previewLen {
			return s[:n] + "..."
		}
		i++
	}
	return s
}
