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

var axisCases = []TestCase{
	{
		Name:   "crowded_x",
		Values: linechart.Floats(1, 4, 2, 8, 5, 7, 3, 9, 6, 2, 4, 8, 1, 5, 7, 3, 6, 9, 2, 4),
		Labels: days(20),
		Width:  200,
		Height: 150,
		Options: linechart.Options{
			Measurer: Measurer,
			XAxis:    linechart.XAxisOptions{Enabled: true},
		},
	},
	{
		Name:   "x_gaps",
		Values: linechart.Floats(1, 4, 2, 8, 5, 7, 3, 9, 6, 2),
		Labels: days(10),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			XAxis:    linechart.XAxisOptions{Enabled: true, Gaps: ptr(2)},
		},
	},
	{
		Name:   "x_increment",
		Values: linechart.Floats(1, 4, 2, 8, 5, 7, 3, 9, 6, 2),
		Labels: days(10),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			XAxis: linechart.XAxisOptions{
				Enabled:   true,
				BaseIndex: ptr(1),
				Increment: ptr(4),
			},
		},
	},
	{
		Name:   "y_right",
		Values: linechart.Floats(120, 340, 250, 410, 180),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			YAxis: linechart.YAxisOptions{
				Enabled: true,
				Side:    linechart.Right,
				Prefix:  "$",
				Labels:  ptr(5),
			},
		},
	},
	{
		Name:   "y_increment",
		Values: linechart.Floats(0.5, 2.5, 1.5, 3.5),
		Width:  300,
		Height: 240,
		Options: linechart.Options{
			Measurer: Measurer,
			YAxis: linechart.YAxisOptions{
				Enabled:   true,
				BaseValue: ptr(0.0),
				Increment: ptr(0.5),
				Format:    "%.1f",
			},
		},
	},
	{
		Name:   "y_too_many",
		Values: linechart.Floats(0, 1000),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			YAxis: linechart.YAxisOptions{
				Enabled:   true,
				BaseValue: ptr(0.0),
				Increment: ptr(1.0),
			},
		},
	},
}
