// seehuhn.de/go/linechart - line chart layout and geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package source

import (
	"errors"
	"fmt"
)

// ErrNoColumn indicates that the requested value or label column does not
// exist.
var ErrNoColumn = errors.New("column not found")

// ErrNoSheet indicates that a workbook has no sheet of the requested name.
var ErrNoSheet = errors.New("sheet not found")

// ErrEmpty indicates that the input has no header row.
var ErrEmpty = errors.New("no header row")

// ErrNotFinite indicates that a cell holds an infinite value.
var ErrNotFinite = errors.New("value is not finite")

// ParseError reports a cell which could not be read as a number.
type ParseError struct {
	Source string
	Row    int // 1-based, including the header row
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d, column %q: %v", e.Source, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(source string, row int, column string, err error) *ParseError {
	return &ParseError{
		Source: source,
		Row:    row,
		Column: column,
		Err:    err,
	}
}
