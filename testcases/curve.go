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

var curveCases = []TestCase{
	{
		Name:    "quadratic",
		Values:  linechart.Floats(5, 16, 8, 3, 10, 12, 7),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer, Curve: linechart.Quadratic},
	},
	{
		Name:    "dots_only",
		Values:  linechart.Floats(5, 16, 8, 3, 10, 12, 7),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer, Curve: linechart.DotsOnly},
	},
	{
		Name:   "quadratic_axes",
		Values: linechart.Floats(2, 9, 4, 7, 3),
		Labels: days(5),
		Width:  320,
		Height: 220,
		Options: linechart.Options{
			Measurer: Measurer,
			Curve:    linechart.Quadratic,
			XAxis:    linechart.XAxisOptions{Enabled: true},
			YAxis:    linechart.YAxisOptions{Enabled: true},
		},
	},
}
