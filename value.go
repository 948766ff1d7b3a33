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

package linechart

import (
	"math"
	"strconv"
)

// Value is an optional data value.  The zero Value is missing.
type Value struct {
	v  float64
	ok bool
}

// Missing is the Value used for indices without data.
var Missing = Value{}

// V returns a present Value holding x.
func V(x float64) Value {
	return Value{v: x, ok: true}
}

// Get returns the value and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.v, v.ok
}

// IsMissing reports whether v holds no data.
func (v Value) IsMissing() bool {
	return !v.ok
}

func (v Value) String() string {
	if !v.ok {
		return "null"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

// DataSource supplies the values of a chart.  Indices run from 0 to
// NumPoints()-1 and must be stable for the duration of one layout pass.
type DataSource interface {
	NumPoints() int
	ValueAt(i int) Value
}

// XLabeler is implemented by data sources which provide X-axis label
// text.  Without it, no X-axis labels are laid out.
type XLabeler interface {
	LabelAt(i int) string
}

// Series is a DataSource backed by a slice.
type Series []Value

// NumPoints implements [DataSource].
func (s Series) NumPoints() int { return len(s) }

// ValueAt implements [DataSource].
func (s Series) ValueAt(i int) Value { return s[i] }

// Floats converts xs into a Series.  NaN entries become missing values.
func Floats(xs ...float64) Series {
	s := make(Series, len(xs))
	for i, x := range xs {
		if !math.IsNaN(x) {
			s[i] = V(x)
		}
	}
	return s
}

// Present returns the values of s which are not missing, in order.
func (s Series) Present() []float64 {
	res := make([]float64, 0, len(s))
	for _, v := range s {
		if x, ok := v.Get(); ok {
			res = append(res, x)
		}
	}
	return res
}

// Labeled is a Series with X-axis label text for every index.
type Labeled struct {
	Series
	Labels []string
}

// LabelAt implements [XLabeler].  Indices without a label give "".
func (l *Labeled) LabelAt(i int) string {
	if i < 0 || i >= len(l.Labels) {
		return ""
	}
	return l.Labels[i]
}

// Collect reads all values of src into a Series.
func Collect(src DataSource) Series {
	n := src.NumPoints()
	s := make(Series, n)
	for i := range n {
		s[i] = src.ValueAt(i)
	}
	return s
}
