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

package testcases

import "seehuhn.de/go/linechart"

var nullCases = []TestCase{
	{
		Name:    "leading_trailing",
		Values:  linechart.Floats(null, null, 4, 6, null),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer},
	},
	{
		Name:    "interior",
		Values:  linechart.Floats(3, null, null, 7, 5, null, 9),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer},
	},
	{
		Name:    "gaps",
		Values:  linechart.Floats(3, null, null, 7, 5, null, 9),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer, NullGaps: true},
	},
	{
		Name:   "gaps_curve",
		Values: linechart.Floats(null, 2, 8, null, 4, 6),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			NullGaps: true,
			Curve:    linechart.Quadratic,
		},
	},
	{
		Name:    "single_present",
		Values:  linechart.Floats(null, null, 5, null),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer},
	},
}
