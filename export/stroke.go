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

package export

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/linechart"
)

const (
	// zeroLengthThreshold is the shortest segment which is stroked.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds the cross product of two unit tangents
	// below which a corner needs no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects corners where the path reverses its
	// direction (about 179.4 degrees).
	cuspCosineThreshold = -0.9999

	defaultMiterLimit = 10.0
)

// strokeSegment is a line segment with its unit tangent and unit normal.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

func newStrokeSegment(a, b vec.Vec2) (strokeSegment, bool) {
	diff := b.Sub(a)
	length := diff.Length()
	if length < zeroLengthThreshold {
		return strokeSegment{}, false
	}
	t := diff.Mul(1 / length)
	return strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// reverse returns the segment traversed from B to A.
func (s strokeSegment) reverse() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Neg(), N: s.N.Neg()}
}

// run is a range of segments forming one stroked piece.
type run struct {
	start, end int
	closed     bool
}

// stroker converts paths into outline polygons.  All open outlines and
// dots have the same orientation (negative signed area in view
// coordinates), so that overlapping pieces add up under the absolute
// coverage rule of the vector rasterizer.
//
// Buffers are reused between calls.  A stroker is not safe for
// concurrent use.
type stroker struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64 // at least 1; zero means 10
	Dash       []float64
	DashPhase  float64
	Flatness   float64 // zero means [linechart.DefaultFlatness]

	segs     []strokeSegment
	runs     []run
	dots     []vec.Vec2 // subpaths without a direction
	dashed   []strokeSegment
	dashRuns []run
	rev      []strokeSegment
	poly     []vec.Vec2
}

// Stroke calls emit for every polygon of the stroke outline of p.  The
// slice passed to emit is only valid during the call.
func (s *stroker) Stroke(p path.Path, emit func(poly []vec.Vec2)) {
	d := s.Width / 2
	if d <= 0 {
		return
	}
	if s.Flatness <= 0 {
		s.Flatness = linechart.DefaultFlatness
	}
	if s.MiterLimit < 1 {
		s.MiterLimit = defaultMiterLimit
	}

	s.flatten(p)

	if s.Cap == graphics.LineCapRound {
		for _, pt := range s.dots {
			s.poly = s.poly[:0]
			s.arc(pt, d, vec.Vec2{X: 1}, -2*math.Pi, true)
			emitPoly(s.poly, emit)
		}
	}

	if !s.dashPattern() {
		for _, r := range s.runs {
			s.outline(s.segs[r.start:r.end], r.closed, d, emit)
		}
		return
	}

	s.dash()
	for _, r := range s.dashRuns {
		segs := s.dashed[r.start:r.end]
		if len(segs) == 1 && segs[0].A == segs[0].B {
			s.dot(segs[0], d, emit)
			continue
		}
		s.outline(segs, r.closed, d, emit)
	}
}

func emitPoly(poly []vec.Vec2, emit func([]vec.Vec2)) {
	if len(poly) >= 3 {
		emit(poly)
	}
}

// flatten splits p into runs of line segments.  Subpaths which contain
// drawing commands but no segment of positive length are recorded in
// s.dots.
func (s *stroker) flatten(p path.Path) {
	s.segs = s.segs[:0]
	s.runs = s.runs[:0]
	s.dots = s.dots[:0]

	var cur, start vec.Vec2
	open := false  // inside a subpath
	drawn := false // the subpath has a drawing command
	first := 0

	end := func(closed bool) {
		switch {
		case len(s.segs) > first:
			s.runs = append(s.runs, run{start: first, end: len(s.segs), closed: closed})
		case drawn || closed:
			s.dots = append(s.dots, start)
		}
		first = len(s.segs)
		open, drawn = false, false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				end(false)
			}
			cur, start = pts[0], pts[0]
			first = len(s.segs)
			open = true
		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			s.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo, path.CmdCubeTo:
			if !open {
				continue
			}
			drawn = true
			s.addCurve(cur, cmd, pts)
			cur = pts[len(pts)-1]
		case path.CmdClose:
			if !open {
				continue
			}
			if cur != start {
				s.addSegment(cur, start)
			}
			end(true)
			cur = start
		}
	}
	if open {
		end(false)
	}
}

func (s *stroker) addSegment(a, b vec.Vec2) {
	if seg, ok := newStrokeSegment(a, b); ok {
		s.segs = append(s.segs, seg)
	}
}

// addCurve flattens a single curve starting at from.
func (s *stroker) addCurve(from vec.Vec2, cmd path.Command, pts []vec.Vec2) {
	curve := func(yield func(path.Command, []vec.Vec2) bool) {
		if yield(path.CmdMoveTo, []vec.Vec2{from}) {
			yield(cmd, pts)
		}
	}
	linechart.Flatten(curve, s.Flatness, s.addSegment)
}

// outline emits the outline of a run.  An open run gives one polygon: the
// +N side forward, the end cap, the +N side of the reversed run and the
// start cap.  A closed run gives two loops, one on each side.
func (s *stroker) outline(segs []strokeSegment, closed bool, d float64, emit func([]vec.Vec2)) {
	s.rev = s.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		s.rev = append(s.rev, segs[i].reverse())
	}

	s.poly = s.poly[:0]
	if !closed {
		s.side(segs, false, d)
		last := segs[len(segs)-1]
		s.cap(last.B, last.T, d)
		s.side(s.rev, false, d)
		s.cap(segs[0].A, segs[0].T.Neg(), d)
		emitPoly(s.poly, emit)
		return
	}

	s.side(segs, true, d)
	split := len(s.poly)
	s.side(s.rev, true, d)
	outer, inner := s.poly[:split], s.poly[split:]
	if math.Abs(signedArea(inner)) > math.Abs(signedArea(outer)) {
		outer, inner = inner, outer
	}
	if signedArea(outer) > 0 {
		slices.Reverse(outer)
		slices.Reverse(inner)
	}
	emitPoly(outer, emit)
	emitPoly(inner, emit)
}

// side appends the offset line on the +N side of segs.
func (s *stroker) side(segs []strokeSegment, closed bool, d float64) {
	n := len(segs)
	if !closed {
		s.poly = append(s.poly, segs[0].A.Add(segs[0].N.Mul(d)))
	}
	for i := range n - 1 {
		s.corner(&segs[i], &segs[i+1], d)
	}
	if closed {
		s.corner(&segs[n-1], &segs[0], d)
	} else {
		s.poly = append(s.poly, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
	}
}

// corner appends the +N side points where segment a meets segment b.
func (s *stroker) corner(a, b *strokeSegment, d float64) {
	p := b.A
	cos := a.T.Dot(b.T)
	sin := a.T.X*b.T.Y - a.T.Y*b.T.X

	switch {
	case cos < cuspCosineThreshold:
		s.poly = append(s.poly, a.B.Add(a.N.Mul(d)))
		s.cap(p, a.T, d)
		s.poly = append(s.poly, p.Add(b.N.Mul(d)))
	case math.Abs(sin) < collinearityThreshold:
		s.poly = append(s.poly, a.B.Add(a.N.Mul(d)), p.Add(b.N.Mul(d)))
	case sin > 0:
		// +N is the inside of the turn
		if x, ok := innerPoint(p, a.N, b.N, cos, d); ok {
			s.poly = append(s.poly, x)
		} else {
			s.poly = append(s.poly, a.B.Add(a.N.Mul(d)), p.Add(b.N.Mul(d)))
		}
	default:
		s.poly = append(s.poly, a.B.Add(a.N.Mul(d)))
		s.join(p, a, b, cos, sin, d)
		s.poly = append(s.poly, p.Add(b.N.Mul(d)))
	}
}

// innerPoint returns the intersection of the two offset lines on the
// inside of a corner.
func innerPoint(p, n1, n2 vec.Vec2, cos, d float64) (vec.Vec2, bool) {
	half := math.Sqrt((1 + cos) / 2) // cos of half the turning angle
	dir := n1.Add(n2)
	l := dir.Length()
	if half < 1e-9 || l < 1e-9 {
		return vec.Vec2{}, false
	}
	return p.Add(dir.Mul(d / (half * l))), true
}

// join appends the join geometry on the outside of a corner, between the
// offset points of a and b.
func (s *stroker) join(p vec.Vec2, a, b *strokeSegment, cos, sin, d float64) {
	switch s.Join {
	case graphics.LineJoinMiter:
		half := math.Sqrt((1 + cos) / 2)
		if half > 0 && 1/half <= s.MiterLimit+1e-10 {
			dir := a.N.Add(b.N)
			if l := dir.Length(); l > zeroLengthThreshold {
				s.poly = append(s.poly, p.Add(dir.Mul(d/(half*l))))
			}
		}
		// beyond the miter limit the corner is bevelled
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if sin < 0 {
			angle = -angle
		}
		s.arc(p, d, a.N, angle, false)
	}
}

// cap appends an end cap at p, where t points away from the line.  The
// cap runs from the +N offset point to the -N offset point.
func (s *stroker) cap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch s.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		s.poly = append(s.poly, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		s.arc(p, d, n, -math.Pi, true)
	}
}

// dot emits the cap shape of a zero-length dash.  Butt caps give nothing.
func (s *stroker) dot(seg strokeSegment, d float64, emit func([]vec.Vec2)) {
	s.poly = s.poly[:0]
	switch s.Cap {
	case graphics.LineCapRound:
		s.arc(seg.A, d, vec.Vec2{X: 1}, -2*math.Pi, true)
	case graphics.LineCapSquare:
		c, t, n := seg.A, seg.T.Mul(d), seg.N.Mul(d)
		s.poly = append(s.poly,
			c.Add(t).Add(n), c.Add(t).Sub(n),
			c.Sub(t).Sub(n), c.Sub(t).Add(n))
	}
	emitPoly(s.poly, emit)
}

// arc appends points on a circular arc around center.  The arc starts in
// direction from and turns by sweep radians, positive from +x towards +y.
// The chords stay within the flatness tolerance of the circle.
func (s *stroker) arc(center vec.Vec2, radius float64, from vec.Vec2, sweep float64, withStart bool) {
	n := 1
	if radius > s.Flatness {
		step := 2 * math.Acos(1-s.Flatness/radius)
		if step > 0 {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		}
	}
	if math.Abs(sweep) >= 2*math.Pi {
		n = max(n, 8)
	}

	i0 := 1
	if withStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{X: from.X*cos - from.Y*sin, Y: from.X*sin + from.Y*cos}
		s.poly = append(s.poly, center.Add(dir.Mul(radius)))
	}
}

// dashPattern reports whether the dash pattern has a positive length.
func (s *stroker) dashPattern() bool {
	total := 0.0
	for _, x := range s.Dash {
		if x < 0 {
			return false
		}
		total += x
	}
	return total > 0
}

// dash splits the runs according to the dash pattern.  The pattern
// continues across the segments of a run and restarts with the phase for
// every run.  Zero-length dashes become single segments with A == B,
// which keep the direction of the path.  On a closed run, a dash crossing
// the start point is joined into one piece.
func (s *stroker) dash() {
	s.dashed = s.dashed[:0]
	s.dashRuns = s.dashRuns[:0]

	pattern := s.Dash
	n := len(pattern)
	total := 0.0
	for _, x := range pattern {
		total += x
	}
	if n%2 == 1 {
		total *= 2
	}
	phase := math.Mod(s.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	for _, r := range s.runs {
		idx := 0
		ph := phase
		for ph > 0 && ph >= pattern[idx%n] {
			ph -= pattern[idx%n]
			idx++
		}
		remaining := pattern[idx%n] - ph
		on := idx%2 == 0
		startedOn := on
		firstRun := len(s.dashRuns)
		start := len(s.dashed) // first segment of the current dash
		finished := false      // the first dash of the run has ended

		for _, seg := range s.segs[r.start:r.end] {
			length := seg.B.Sub(seg.A).Length()
			pos := 0.0
			for {
				step := min(remaining, length-pos)
				if on && step > 0 {
					s.dashed = append(s.dashed, dashPiece(seg, pos, pos+step, length))
				}
				pos += step
				remaining -= step
				if remaining > 0 {
					break
				}

				if on {
					if len(s.dashed) == start {
						p := seg.A.Add(seg.T.Mul(pos))
						s.dashed = append(s.dashed, strokeSegment{A: p, B: p, T: seg.T, N: seg.N})
					}
					s.dashRuns = append(s.dashRuns, run{start: start, end: len(s.dashed)})
					start = len(s.dashed)
				}
				finished = true
				idx++
				remaining = pattern[idx%n]
				on = idx%2 == 0
			}
		}

		if !on || len(s.dashed) == start {
			continue
		}
		if r.closed && startedOn && !finished {
			// the whole loop is covered by one dash
			s.dashRuns = append(s.dashRuns, run{start: start, end: len(s.dashed), closed: true})
			continue
		}
		if r.closed && startedOn && finished && firstRun < len(s.dashRuns) {
			fr := s.dashRuns[firstRun]
			s.dashed = append(s.dashed, s.dashed[fr.start:fr.end]...)
			s.dashRuns = slices.Delete(s.dashRuns, firstRun, firstRun+1)
		}
		s.dashRuns = append(s.dashRuns, run{start: start, end: len(s.dashed)})
	}
}

// dashPiece returns the part of seg between the distances from and to
// along the segment.
func dashPiece(seg strokeSegment, from, to, length float64) strokeSegment {
	if from == 0 && to == length {
		return seg
	}
	piece := seg
	piece.A = seg.A.Add(seg.T.Mul(from))
	if to < length {
		piece.B = seg.A.Add(seg.T.Mul(to))
	}
	return piece
}

// signedArea returns the shoelace area of a closed polygon.
func signedArea(poly []vec.Vec2) float64 {
	area := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}
