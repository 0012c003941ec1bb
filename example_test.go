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

package mirthlex_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/mirthlex"
	"github.com/ianlewis/mirthlex/lexer"
)

func ExampleTokenize() {
	tokens, err := mirthlex.Tokenize(
		context.Background(),
		"def(square, dup *)\nsquare(0x10)",
		lexer.StartLocation("square.mth"),
		nil,
	)
	if err != nil {
		panic(err)
	}

	for _, t := range tokens {
		fmt.Printf("%s %s %#v\n", t.Loc, t.Name, t.Value)
	}

	// Output:
	// square.mth:1:1 WORD "def"
	// square.mth:1:4 LPAREN "("
	// square.mth:1:5 WORD "square"
	// square.mth:1:11 COMMA ","
	// square.mth:1:13 WORD "dup"
	// square.mth:1:17 WORD "*"
	// square.mth:1:18 RPAREN ")"
	// square.mth:1:19 LINE "\n"
	// square.mth:2:1 WORD "square"
	// square.mth:2:7 LPAREN "("
	// square.mth:2:8 INT 16
	// square.mth:2:12 RPAREN ")"
}

func ExampleTokenize_error() {
	_, err := mirthlex.Tokenize(
		context.Background(),
		`greet("hello\q")`,
		lexer.StartLocation("greet.mth"),
		nil,
	)

	fmt.Println(err)
	fmt.Println(errors.Is(err, lexer.ErrUnknownEscape))

	// Output:
	// greet.mth:1:7: unknown escape sequence: \q
	// true
}

// ExampleLexer shows stepping through the input one token at a time,
// including whitespace tokens.
func ExampleLexer() {
	l := lexer.NewLexer("1 'two'", lexer.Location{}, nil)
	for {
		t, err := l.NextToken(context.Background())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Println(t)
	}

	// Output:
	// 1:1: ATOMIC INT "1"
	// 1:2: IGNORE SPACE " "
	// 1:3: ATOMIC STR "'two'"
}

func ExampleTokenizeReader() {
	tokens, err := mirthlex.TokenizeReader(
		context.Background(),
		strings.NewReader("[1 2 3]"),
		lexer.Location{},
		nil,
	)
	if err != nil {
		panic(err)
	}

	var texts []string
	for _, t := range tokens {
		texts = append(texts, t.Text)
	}
	fmt.Println(strings.Join(texts, " "))

	// Output: [ 1 2 3 ]
}
