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

// Package value defines the values that flow through the Mirth stack machine
// and the capabilities they advertise. A value is duplicable if copying it
// does not copy a mutable reference, and droppable if discarding it does not
// sever a connection to the outside world, such as an open file.
package value

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Value is a value on the stack. The set of implementations is closed; use
// one of the types defined in this package.
type Value interface {
	Duplicable
	Droppable

	isValue()
}

// Duplicable is implemented by values that know whether they can be safely
// duplicated.
type Duplicable interface {
	CanDup() bool
}

// Droppable is implemented by values that know whether they can be safely
// discarded.
type Droppable interface {
	CanDrop() bool
}

// CanDup reports whether v can be duplicated. A nil interface is treated
// like [Nil].
func CanDup(v Duplicable) bool {
	if v == nil {
		return true
	}
	return v.CanDup()
}

// CanDrop reports whether v can be discarded. A nil interface is treated
// like [Nil].
func CanDrop(v Droppable) bool {
	if v == nil {
		return true
	}
	return v.CanDrop()
}

// Nil is the absent value.
type Nil struct{}

// Bool is a boolean value.
type Bool bool

// Int is an integer value.
type Int int64

// BigInt is an integer value too large for [Int]. The zero value is 0.
type BigInt struct {
	n *big.Int
}

// NewBigInt returns a BigInt holding a copy of n.
func NewBigInt(n *big.Int) BigInt {
	return BigInt{n: new(big.Int).Set(n)}
}

// Big returns a copy of the integer.
func (b BigInt) Big() *big.Int {
	if b.n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.n)
}

// Equal reports whether b and o hold the same integer.
func (b BigInt) Equal(o BigInt) bool {
	return b.Big().Cmp(o.Big()) == 0
}

// Str is a string value.
type Str string

// Tuple is an immutable sequence of values.
type Tuple []Value

// List is a mutable sequence of values.
type List []Value

// Set is a mutable collection of unique values.
type Set []Value

// Dict is a mutable mapping from keys to values.
type Dict []Entry

// Entry is a single key/value pair of a [Dict].
type Entry struct {
	Key   Value
	Value Value
}

// Handle wraps an opaque resource owned by the host, such as an *os.File.
// Handles can be neither duplicated nor dropped.
type Handle struct {
	// Name describes the resource for diagnostics.
	Name string

	// Resource is the underlying host resource.
	Resource any
}

func (Nil) isValue() {}
func (Bool) isValue() {}
func (Int) isValue() {}
func (BigInt) isValue() {}
func (Str) isValue() {}
func (Tuple) isValue() {}
func (List) isValue() {}
func (Set) isValue() {}
func (Dict) isValue() {}
func (*Handle) isValue() {}

// CanDup implements [Duplicable].
func (Nil) CanDup() bool { return true }

// CanDrop implements [Droppable].
func (Nil) CanDrop() bool { return true }

// CanDup implements [Duplicable].
func (Bool) CanDup() bool { return true }

// CanDrop implements [Droppable].
func (Bool) CanDrop() bool { return true }

// CanDup implements [Duplicable].
func (Int) CanDup() bool { return true }

// CanDrop implements [Droppable].
func (Int) CanDrop() bool { return true }

// CanDup implements [Duplicable]. The held integer is never mutated.
func (BigInt) CanDup() bool { return true }

// CanDrop implements [Droppable].
func (BigInt) CanDrop() bool { return true }

// CanDup implements [Duplicable].
func (Str) CanDup() bool { return true }

// CanDrop implements [Droppable].
func (Str) CanDrop() bool { return true }

// CanDup implements [Duplicable]. A tuple can be duplicated if all of its
// elements can.
func (t Tuple) CanDup() bool {
	return allDup(t)
}

// CanDrop implements [Droppable].
func (t Tuple) CanDrop() bool {
	return allDrop(t)
}

// CanDup implements [Duplicable]. Lists are mutable and are never
// duplicated.
func (List) CanDup() bool { return false }

// CanDrop implements [Droppable].
func (l List) CanDrop() bool {
	return allDrop(l)
}

// CanDup implements [Duplicable]. Sets are mutable and are never
// duplicated.
func (Set) CanDup() bool { return false }

// CanDrop implements [Droppable].
func (s Set) CanDrop() bool {
	return allDrop(s)
}

// CanDup implements [Duplicable]. Dicts are mutable and are never
// duplicated.
func (Dict) CanDup() bool { return false }

// CanDrop implements [Droppable]. Both keys and values must be droppable.
func (d Dict) CanDrop() bool {
	for _, e := range d {
		if !CanDrop(e.Key) || !CanDrop(e.Value) {
			return false
		}
	}
	return true
}

// CanDup implements [Duplicable].
func (*Handle) CanDup() bool { return false }

// CanDrop implements [Droppable].
func (*Handle) CanDrop() bool { return false }

func allDup(vs []Value) bool {
	for _, v := range vs {
		if !CanDup(v) {
			return false
		}
	}
	return true
}

func allDrop(vs []Value) bool {
	for _, v := range vs {
		if !CanDrop(v) {
			return false
		}
	}
	return true
}

// String returns "nil".
func (Nil) String() string { return "nil" }

// String returns the decimal representation of the integer.
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// String returns the decimal representation of the integer.
func (b BigInt) String() string { return b.Big().String() }

// String returns the string unchanged.
func (s Str) String() string { return string(s) }

// String returns a parenthesized list of the tuple's elements.
func (t Tuple) String() string { return "(" + join(t) + ")" }

// String returns a bracketed list of the list's elements.
func (l List) String() string { return "[" + join(l) + "]" }

// String returns a braced list of the set's elements.
func (s Set) String() string { return "{" + join(s) + "}" }

// String returns a braced list of key: value pairs.
func (d Dict) String() string {
	parts := make([]string, 0, len(d))
	for _, e := range d {
		parts = append(parts, fmt.Sprintf("%v: %v", e.Key, e.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// String returns a description of the handle.
func (h *Handle) String() string {
	return "<handle " + h.Name + ">"
}

func join(vs []Value) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ", ")
}
