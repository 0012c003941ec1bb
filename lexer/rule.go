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

package lexer

import (
	"fmt"
	"regexp"

	"github.com/ianlewis/mirthlex/value"
)

// Kind classifies a [Rule] and the [Token]s it produces.
type Kind int

const (
	// KindOpen opens a bracketed group.
	KindOpen Kind = iota + 1

	// KindClose closes a bracketed group.
	KindClose

	// KindAtomic is a self-contained token.
	KindAtomic

	// KindIgnore marks tokens, such as whitespace, that are dropped when
	// tokenizing a whole file.
	KindIgnore
)

var kindNames = map[Kind]string{
	KindOpen:   "OPEN",
	KindClose:  "CLOSE",
	KindAtomic: "ATOMIC",
	KindIgnore: "IGNORE",
}

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DecodeFunc converts the text matched by a [Rule] into the token's value.
type DecodeFunc func(text string) (value.Value, error)

// Identity is the default [DecodeFunc]. The matched text is the value.
func Identity(text string) (value.Value, error) {
	return value.Str(text), nil
}

// Rule is a named pattern that produces tokens of a given [Kind]. Rules are
// immutable once created.
type Rule struct {
	kind    Kind
	name    string
	pattern *regexp.Regexp
	decode  DecodeFunc
}

// NewRule creates a new Rule. The pattern is a regular expression in the
// syntax accepted by [regexp] and is only ever matched at the start of the
// remaining input. If decode is nil, [Identity] is used.
func NewRule(kind Kind, name, pattern string, decode DecodeFunc) (*Rule, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}

	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}

	if decode == nil {
		decode = Identity
	}

	return &Rule{
		kind:    kind,
		name:    name,
		pattern: re,
		decode:  decode,
	}, nil
}

// MustRule is like [NewRule] but panics if the rule cannot be created.
func MustRule(kind Kind, name, pattern string, decode DecodeFunc) *Rule {
	r, err := NewRule(kind, name, pattern, decode)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind returns the kind of tokens produced by the rule.
func (r *Rule) Kind() Kind {
	return r.kind
}

// Name returns the rule's name.
func (r *Rule) Name() string {
	return r.name
}

// Match returns the text matched by the rule at the start of text. The
// match may be empty.
func (r *Rule) Match(text string) string {
	loc := r.pattern.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return text[:loc[1]]
}

// Decode converts matched text into a value.
//
//nolint:ireturn // value.Value is a closed sum type.
func (r *Rule) Decode(text string) (value.Value, error) {
	return r.decode(text)
}
