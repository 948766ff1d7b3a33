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
	"seehuhn.de/go/geom/vec"
)

// buildLine resolves the line vertices and builds the line and the two
// fill regions.
func (l *Layout) buildLine() {
	l.resolvePoints()

	switch l.opt.Curve {
	case Straight:
		appendPolyline(&l.Line, l.Points)
	case Quadratic:
		appendQuadCurve(&l.Line, l.Points)
	}

	g := l.Graph
	top := [2]vec.Vec2{{X: g.LLx, Y: 0}, {X: g.URx, Y: 0}}
	bottom := [2]vec.Vec2{{X: g.LLx, Y: g.URy}, {X: g.URx, Y: g.URy}}
	l.appendFill(&l.FillTop, top)
	l.appendFill(&l.FillBottom, bottom)
}

// resolvePoints fills l.Points.
//
// Present values map to their dot positions.  If NullGaps is set, every
// missing value gives a break point.  Otherwise missing values before the
// first present value are extrapolated along the line through the first
// two present values, missing values after the last present value along
// the line through the last two, and interior missing values are omitted.
// If there is only one present value, the extrapolation is flat.
func (l *Layout) resolvePoints() {
	values := l.values
	n := len(values)

	first, second := -1, -1
	for i := 0; i < n && second < 0; i++ {
		if values[i].IsMissing() {
			continue
		}
		if first < 0 {
			first = i
		} else {
			second = i
		}
	}
	last, penultimate := -1, -1
	for i := n - 1; i >= 0 && penultimate < 0; i-- {
		if values[i].IsMissing() {
			continue
		}
		if last < 0 {
			last = i
		} else {
			penultimate = i
		}
	}

	for i, v := range values {
		x := l.XPos(i)
		if y, ok := v.Get(); ok {
			l.Points = append(l.Points, Point{Index: i, Pos: vec.Vec2{X: x, Y: l.YPos(y)}})
			continue
		}
		if l.opt.NullGaps {
			l.Points = append(l.Points, Point{Index: i, Pos: vec.Vec2{X: x}, Missing: true})
			continue
		}

		var y float64
		switch {
		case i < first:
			y = extrapolate(values, i, first, second)
		case i > last:
			y = extrapolate(values, i, last, penultimate)
		default:
			continue
		}
		l.Points = append(l.Points, Point{
			Index:        i,
			Pos:          vec.Vec2{X: x, Y: l.YPos(y)},
			Missing:      true,
			Interpolated: true,
		})
	}
}

// extrapolate evaluates the line through the present values at indices a
// and b at index i.  If b is negative, the value at a is returned.
func extrapolate(values Series, i, a, b int) float64 {
	va, _ := values[a].Get()
	if b < 0 {
		return va
	}
	vb, _ := values[b].Get()
	slope := (vb - va) / float64(b-a)
	return va + float64(i-a)*slope
}

// appendPolyline connects consecutive points with straight lines.  Break
// points lift the pen.
func appendPolyline(p *path.Data, pts []Point) {
	penDown := false
	for _, pt := range pts {
		if pt.Break() {
			penDown = false
			continue
		}
		if penDown {
			p.LineTo(pt.Pos)
		} else {
			p.MoveTo(pt.Pos)
			penDown = true
		}
	}
}

// appendQuadCurve connects consecutive points with pairs of quadratic
// Bézier curves.  Break points lift the pen.
func appendQuadCurve(p *path.Data, pts []Point) {
	penDown := false
	var prev vec.Vec2
	for _, pt := range pts {
		if pt.Break() {
			penDown = false
			continue
		}
		if penDown {
			quadSegment(p, prev, pt.Pos)
		} else {
			p.MoveTo(pt.Pos)
			penDown = true
		}
		prev = pt.Pos
	}
}

// quadSegment appends two quadratic curves from the current point p1 to
// p2, meeting at the midpoint.  The curve leaves p1 and arrives at p2
// horizontally.
func quadSegment(p *path.Data, p1, p2 vec.Vec2) {
	mid := midpoint(p1, p2)
	p.QuadTo(controlPoint(mid, p1), mid)
	p.QuadTo(controlPoint(mid, p2), p2)
}

// controlPoint returns the control point for the half curve between the
// midpoint a and the end point b.
func controlPoint(a, b vec.Vec2) vec.Vec2 {
	c := midpoint(a, b)
	dy := math.Abs(b.Y - c.Y)
	if a.Y < b.Y {
		c.Y += dy
	} else if a.Y > b.Y {
		c.Y -= dy
	}
	return c
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// appendFill builds a closed region from corners[0] through all points of
// the line to corners[1].  Break points are skipped.  In DotsOnly mode the
// region uses straight segments.
func (l *Layout) appendFill(p *path.Data, corners [2]vec.Vec2) {
	quad := l.opt.Curve == Quadratic
	prev := corners[0]
	p.MoveTo(prev)
	next := func(q vec.Vec2) {
		if quad {
			quadSegment(p, prev, q)
		} else {
			p.LineTo(q)
		}
		prev = q
	}
	for _, pt := range l.Points {
		if !pt.Break() {
			next(pt.Pos)
		}
	}
	next(corners[1])
	p.Close()
}
