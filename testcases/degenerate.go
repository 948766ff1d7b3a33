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

var degenerateCases = []TestCase{
	{
		Name:    "empty",
		Values:  linechart.Series{},
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer},
	},
	{
		Name:    "all_missing",
		Values:  linechart.Floats(null, null, null),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer, NoDataText: "Nothing to show"},
	},
	{
		Name:    "single",
		Values:  linechart.Floats(42),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer},
	},
	{
		Name:   "flat",
		Values: linechart.Floats(7, 7, 7, 7),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			YAxis:    linechart.YAxisOptions{Enabled: true},
		},
	},
	{
		Name:    "small_view",
		Values:  linechart.Floats(1, 3, 2),
		Width:   40,
		Height:  30,
		Options: linechart.Options{Measurer: Measurer},
	},
}
