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

import "math"

// NearestIndex returns the data index of the point whose horizontal
// position is closest to x.  Ties go to the point which comes first in
// pts.  Break points are ignored.  If there are no candidates, -1 is
// returned.
func NearestIndex(x float64, pts []Point) int {
	best := -1
	bestDist := math.Inf(1)
	for _, p := range pts {
		if p.Break() {
			continue
		}
		if d := math.Abs(p.Pos.X - x); d < bestDist {
			best = p.Index
			bestDist = d
		}
	}
	return best
}

// Touch describes the response to a pointer at a horizontal position.
type Touch struct {
	Index int     // nearest data index with a value
	Dot   Point   // the dot at Index
	LineX float64 // position of the touch report line
	Popup Popup   // popup for the dot, placed without neighbours
}

// Touch resolves a pointer at horizontal position x.  The result is false
// if the layout has no dots.
func (l *Layout) Touch(x float64) (Touch, bool) {
	idx := NearestIndex(x, l.Dots)
	if idx < 0 {
		return Touch{}, false
	}

	var dot Point
	for _, d := range l.Dots {
		if d.Index == idx {
			dot = d
			break
		}
	}

	return Touch{
		Index: idx,
		Dot:   dot,
		LineX: min(max(x, 0), l.Width),
		Popup: l.placePopup(dot),
	}, true
}
