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

var basicCases = []TestCase{
	{
		Name:    "rising",
		Values:  linechart.Floats(1, 2, 3, 4, 5, 6),
		Width:   300,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer},
	},
	{
		Name:    "week",
		Values:  linechart.Floats(5, 16, 8, 3, 10, 12, 7),
		Labels:  days(7),
		Width:   320,
		Height:  200,
		Options: linechart.Options{Measurer: Measurer, XAxis: linechart.XAxisOptions{Enabled: true}},
	},
	{
		Name:   "average",
		Values: linechart.Floats(5, 16, 8, 3, 10, 12, 7),
		Width:  320,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			YAxis:    linechart.YAxisOptions{Enabled: true},
			Average:  linechart.AverageOptions{Enabled: true, Title: "avg"},
		},
	},
	{
		Name:   "reference",
		Values: linechart.Floats(20, 35, 30, 50, 45, 60),
		Labels: days(6),
		Width:  320,
		Height: 220,
		Options: linechart.Options{
			Measurer: Measurer,
			XAxis:    linechart.XAxisOptions{Enabled: true},
			YAxis:    linechart.YAxisOptions{Enabled: true, Labels: ptr(4)},
			Reference: linechart.ReferenceOptions{
				XLines: true,
				YLines: true,
				Frame:  true,
			},
		},
	},
	{
		Name:   "popups",
		Values: linechart.Floats(3, 9, 4, 12, 6),
		Width:  300,
		Height: 200,
		Options: linechart.Options{
			Measurer: Measurer,
			Popup:    linechart.PopupOptions{Persistent: true, Suffix: "°"},
		},
	},
}
