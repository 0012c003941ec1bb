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

import "strconv"

// DefaultTabStop is the tab width used by [Location.Advance].
const DefaultTabStop = 8

// Location is a position in source text. Locations are values; advancing a
// Location returns a new one.
type Location struct {
	// Path is the name of the file being read. It can be empty if the
	// input is not from a file.
	Path string

	// Row is the line number in the input, starting at 1.
	Row int

	// Column is the column number in the line, starting at 1. Tabs advance
	// the column to the next tab stop.
	Column int
}

// StartLocation returns the Location of the first character of the file
// at path.
func StartLocation(path string) Location {
	return Location{
		Path:   path,
		Row:    1,
		Column: 1,
	}
}

// String returns a string representation of the Location in the form
// path:row:col, or row:col if the Location has no path.
func (l Location) String() string {
	if l.Path != "" {
		return l.Path + ":" + strconv.Itoa(l.Row) + ":" + strconv.Itoa(l.Column)
	}
	return strconv.Itoa(l.Row) + ":" + strconv.Itoa(l.Column)
}

// Advance returns the Location just past text, using [DefaultTabStop].
func (l Location) Advance(text string) Location {
	return l.AdvanceTabStop(text, DefaultTabStop)
}

// AdvanceTabStop returns the Location just past text. A newline moves to the
// first column of the next row, a tab moves to the next multiple of tabStop
// and any other rune moves one column. A non-positive tabStop is replaced by
// [DefaultTabStop].
func (l Location) AdvanceTabStop(text string, tabStop int) Location {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	for _, rn := range text {
		switch rn {
		case '\n':
			l.Row++
			l.Column = 1
		case '\t':
			l.Column += tabStop - l.Column%tabStop
		default:
			l.Column++
		}
	}
	return l
}

// CanDup implements [value.Duplicable]. Locations are plain values.
func (Location) CanDup() bool { return true }

// CanDrop implements [value.Droppable].
func (Location) CanDrop() bool { return true }
