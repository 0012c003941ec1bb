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

// Package mirthlex tokenizes Mirth source files. It drives a [lexer.Lexer]
// over a whole file and collects the resulting tokens.
//
// Tokenize uses a single fixed rule list for the entire input. It is not
// suitable for dialects that introduce new lexical rules part way through a
// file.
package mirthlex

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/runeio"

	"github.com/ianlewis/mirthlex/lexer"
)

// Tokenize splits src into tokens starting at loc using rules. Tokens of
// kind [lexer.KindIgnore] are dropped. If rules is nil, [lexer.DefaultRules]
// are used.
//
// Tokenize stops at the first error and returns the tokens found before it
// along with the error. The tokens should not be used in that case.
func Tokenize(
	ctx context.Context,
	src string,
	loc lexer.Location,
	rules []*lexer.Rule,
) ([]*lexer.Token, error) {
	return tokenize(ctx, lexer.NewLexer(src, loc, rules), false)
}

// TokenizeAll is like [Tokenize] but keeps tokens of kind [lexer.KindIgnore].
// Concatenating the text of the returned tokens gives back src.
func TokenizeAll(
	ctx context.Context,
	src string,
	loc lexer.Location,
	rules []*lexer.Rule,
) ([]*lexer.Token, error) {
	return tokenize(ctx, lexer.NewLexer(src, loc, rules), true)
}

// TokenizeReader reads all of r and tokenizes it as with [Tokenize].
func TokenizeReader(
	ctx context.Context,
	r io.Reader,
	loc lexer.Location,
	rules []*lexer.Rule,
) ([]*lexer.Token, error) {
	src, err := ReadSource(r)
	if err != nil {
		return nil, err
	}
	return Tokenize(ctx, src, loc, rules)
}

// ErrInvalidUTF8 indicates source text that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// readBufSize is the number of runes read from the source at a time.
const readBufSize = 1024

// ReadSource reads all of r as UTF-8 text. Source containing invalid UTF-8
// is rejected with [ErrInvalidUTF8] rather than having the invalid bytes
// replaced.
func ReadSource(r io.Reader) (string, error) {
	// If already a *bufio.Reader, use it directly.
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	rr := runeio.NewReader(&utf8Reader{r: br})

	var b strings.Builder
	buf := make([]rune, readBufSize)
	for {
		n, err := rr.Read(buf)
		for _, rn := range buf[:n] {
			_, _ = b.WriteRune(rn)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return "", fmt.Errorf("reading source: %w", err)
		}
	}
}

// utf8Reader is an io.RuneReader that fails on invalid UTF-8 instead of
// returning utf8.RuneError.
type utf8Reader struct {
	r io.RuneReader

	// offset is the byte offset of the next rune.
	offset int
}

// ReadRune implements [io.RuneReader].
func (u *utf8Reader) ReadRune() (rune, int, error) {
	rn, size, err := u.r.ReadRune()
	if err != nil {
		//nolint:wrapcheck // io.EOF must be returned unwrapped.
		return rn, size, err
	}
	if rn == utf8.RuneError && size == 1 {
		return 0, 0, fmt.Errorf("%w at byte offset %d", ErrInvalidUTF8, u.offset)
	}
	u.offset += size
	return rn, size, nil
}

func tokenize(ctx context.Context, l *lexer.Lexer, keepIgnored bool) ([]*lexer.Token, error) {
	var tokens []*lexer.Token
	for {
		token, err := l.NextToken(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			//nolint:wrapcheck // errors from the lexer already include the location.
			return tokens, err
		}

		if token.Kind == lexer.KindIgnore && !keepIgnored {
			continue
		}
		tokens = append(tokens, token)
	}
}
