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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default curve flattening tolerance in view units.
// Values of 0.25-1.0 are typical; 0.25 is below the threshold of visual
// perception at one unit per pixel.
const DefaultFlatness = 0.25

// Flatten approximates p by line segments and calls emit for each
// segment.  Curves are subdivided so that the approximation stays within
// flatness of the curve.  Closing a subpath emits the closing segment.
func Flatten(p path.Path, flatness float64, emit func(from, to vec.Vec2)) {
	if flatness <= 0 {
		flatness = DefaultFlatness
	}

	var current, start vec.Vec2
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			emit(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			flattenQuadratic(current, pts[0], pts[1], flatness, emit)
			current = pts[1]
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, emit)
			current = pts[2]
		case path.CmdClose:
			if inSubpath && current != start {
				emit(current, start)
			}
			current = start
			inSubpath = false
		}
	}
}

// flattenQuadratic splits the quadratic curve from a through control
// point c to b into chords of equal parameter length.  The chord count
// grows with the square root of the curve's deviation from the straight
// line a-b, so that each chord stays within the flatness tolerance.
func flattenQuadratic(a, c, b vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	dev := a.Add(b).Sub(c.Mul(2)).Length() / 4

	steps := 1
	if dev > flatness {
		steps = int(math.Ceil(math.Sqrt(dev / flatness)))
	}

	from := a
	for k := 1; k <= steps; k++ {
		s := float64(k) / float64(steps)
		r := 1 - s
		to := a.Mul(r * r).Add(c.Mul(2 * r * s)).Add(b.Mul(s * s))
		emit(from, to)
		from = to
	}
}

// flattenCubic splits the cubic curve from a via c1 and c2 to b into
// chords of equal parameter length.  The chord count is bounded using the
// larger of the two second differences of the control polygon.
func flattenCubic(a, c1, c2, b vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	bend := max(a.Add(c2).Sub(c1.Mul(2)).Length(), c1.Add(b).Sub(c2.Mul(2)).Length())

	steps := 1
	if bend > 0 {
		if x := math.Sqrt(0.75 * bend / flatness); x > 1 {
			steps = int(math.Ceil(x))
		}
	}

	from := a
	for k := 1; k <= steps; k++ {
		s := float64(k) / float64(steps)
		r := 1 - s
		to := a.Mul(r * r * r).
			Add(c1.Mul(3 * r * r * s)).
			Add(c2.Mul(3 * r * s * s)).
			Add(b.Mul(s * s * s))
		emit(from, to)
		from = to
	}
}

// Bounds returns the bounding box of the flattened path.  Isolated MoveTo
// points are included.  The second return value is false if p is empty.
func Bounds(p *path.Data) (rect.Rect, bool) {
	var r rect.Rect
	found := false
	add := func(v vec.Vec2) {
		if !found {
			r = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			found = true
			return
		}
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}

	for cmd, pts := range p.Iter() {
		if cmd == path.CmdMoveTo {
			add(pts[0])
		}
	}
	Flatten(p.Iter(), DefaultFlatness, func(from, to vec.Vec2) {
		add(from)
		add(to)
	})
	return r, found
}

// LineBounds returns the bounding box of the chart line.  This is the
// extent over which a gradient along the line is spread.
func (l *Layout) LineBounds() (rect.Rect, bool) {
	return Bounds(&l.Line)
}
