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

// Package linechart computes the geometry of a line chart.
//
// An [Engine] turns the values of a [DataSource] and a view size into a
// [Layout]: dot positions, the chart line as path data (straight
// segments or pairs of quadratic Bézier curves), the two fill regions above
// and below the line, axis labels with overlap suppression, reference
// lines, the average line and value popups.  The layout is independent of
// any drawing surface; package export renders it to PDF and PNG.
//
// All coordinates are view coordinates, with the origin in the top-left
// corner and y growing downwards.
//
// Missing values are represented by [Missing].  Depending on
// [Options.NullGaps], missing values either interrupt the line or are
// bridged, with leading and trailing runs extrapolated from the nearest
// present values.
//
// After a layout pass, [Layout.Touch] maps a horizontal pointer position to
// the nearest data point.
package linechart

//go:generate go run ./testcases/export
