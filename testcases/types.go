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

// Package testcases provides chart fixtures shared by the layout tests,
// the JSON export and the reference document generator.
package testcases

import (
	"math"

	"seehuhn.de/go/linechart"
)

// TestCase defines a single chart layout.
type TestCase struct {
	Name    string           // lowercase a-z, 0-9 and _ only
	Values  linechart.Series // the chart data
	Labels  []string         // X-axis label text, or nil
	Width   float64          // view width in pixels
	Height  float64          // view height in pixels
	Options linechart.Options
}

// Source returns the data source for the test case.  If the test case
// has labels, the source implements [linechart.XLabeler].
func (tc *TestCase) Source() linechart.DataSource {
	if tc.Labels == nil {
		return tc.Values
	}
	return &linechart.Labeled{Series: tc.Values, Labels: tc.Labels}
}

// Layout computes the layout of the test case.
func (tc *TestCase) Layout() *linechart.Layout {
	return linechart.Compute(tc.Source(), tc.Options, tc.Width, tc.Height)
}

// Measurer is used by all test cases, so that label sizes do not depend
// on font rendering.
var Measurer = &linechart.MonospaceMeasurer{CellWidth: 7, LineHeight: 13}

// null is a short name for a missing value in the fixture tables.
var null = math.NaN()

func ptr[T any](v T) *T {
	return &v
}

func days(n int) []string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	res := make([]string, n)
	for i := range res {
		res[i] = names[i%len(names)]
	}
	return res
}
