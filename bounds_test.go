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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestLineBounds(t *testing.T) {
	want := rect.Rect{LLx: 0, LLy: 45, URx: 300, URy: 155}
	for _, mode := range []CurveMode{Straight, Quadratic} {
		t.Run(mode.String(), func(t *testing.T) {
			opt := testOptions()
			opt.Curve = mode
			l := Compute(Floats(0, 10, 5), opt, 300, 200)
			got, ok := l.LineBounds()
			if !ok {
				t.Fatal("empty bounds")
			}
			if !near(got.LLx, want.LLx) || !near(got.LLy, want.LLy) ||
				!near(got.URx, want.URx) || !near(got.URy, want.URy) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}

	opt := testOptions()
	opt.Curve = DotsOnly
	l := Compute(Floats(0, 10, 5), opt, 300, 200)
	if _, ok := l.LineBounds(); ok {
		t.Error("DotsOnly line has bounds")
	}
}

func TestFlattenQuadratic(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 50, Y: 100}
	p2 := vec.Vec2{X: 100, Y: 0}
	var p path.Data
	p.MoveTo(p0)
	p.QuadTo(p1, p2)

	n := 0
	var last vec.Vec2
	Flatten(p.Iter(), 0.25, func(from, to vec.Vec2) {
		// the curve is symmetric with maximum height 50
		if to.Y > 50+eps || to.Y < 0 {
			t.Errorf("point %v off the curve", to)
		}
		n++
		last = to
	})
	if n < 2 {
		t.Errorf("curve flattened to %d segments", n)
	}
	if last != p2 {
		t.Errorf("flattening ends at %v, want %v", last, p2)
	}
}

func TestFlattenCubic(t *testing.T) {
	var p path.Data
	p.MoveTo(vec.Vec2{X: 0, Y: 0})
	p.CubeTo(vec.Vec2{X: 0, Y: 100}, vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 100, Y: 0})
	p.Close()

	var pts []vec.Vec2
	Flatten(p.Iter(), 0, func(from, to vec.Vec2) {
		pts = append(pts, to)
	})
	if len(pts) < 3 {
		t.Fatalf("%d segments", len(pts))
	}
	if pts[len(pts)-1] != (vec.Vec2{}) {
		t.Errorf("closing segment missing, last point %v", pts[len(pts)-1])
	}

	r, _ := Bounds(&p)
	if !near(r.LLy, 0) || math.Abs(r.URy-75) > 0.25 {
		t.Errorf("bounds %v", r)
	}
}

func TestBoundsMoveOnly(t *testing.T) {
	var p path.Data
	p.MoveTo(vec.Vec2{X: 3, Y: 4})
	r, ok := Bounds(&p)
	if !ok || r != (rect.Rect{LLx: 3, LLy: 4, URx: 3, URy: 4}) {
		t.Errorf("got %v, %t", r, ok)
	}

	if _, ok := Bounds(&path.Data{}); ok {
		t.Error("empty path has bounds")
	}
}

func TestReferenceLines(t *testing.T) {
	opt := testOptions()
	opt.XAxis.Enabled = true
	opt.YAxis.Enabled = true
	opt.Reference.XLines = true
	opt.Reference.YLines = true
	opt.Reference.Frame = true
	l := Compute(labeled(0, 5, 10), opt, 300, 200)

	if got, want := len(l.XReference.Cmds), 2*len(l.XLabels); got != want {
		t.Errorf("%d vertical reference commands, want %d", got, want)
	}
	for k := range l.XLabels {
		top := l.XReference.Coords[2*k+1]
		if top.X != l.XPos(l.XLabels[k].Index) || top.Y != l.Graph.LLy {
			t.Errorf("vertical line %d ends at %v", k, top)
		}
	}
	if got := len(l.YReference.Cmds); got != 2*3 {
		t.Errorf("%d horizontal reference commands, want 6", got)
	}

	// default frame: left and bottom edge, inset by a quarter width
	if len(l.Frame.Cmds) != 4 {
		t.Fatalf("frame = %v", l.Frame.Cmds)
	}
	d := l.ReferenceWidth / 4
	if l.Frame.Coords[0] != (vec.Vec2{X: l.Graph.LLx + d, Y: l.Graph.URy}) {
		t.Errorf("left edge starts at %v", l.Frame.Coords[0])
	}
	if l.Frame.Coords[2] != (vec.Vec2{X: l.Graph.LLx, Y: l.Graph.URy - d}) {
		t.Errorf("bottom edge starts at %v", l.Frame.Coords[2])
	}
}

func TestFrameEdges(t *testing.T) {
	opt := testOptions()
	opt.Reference.Frame = true
	opt.Reference.FrameEdges = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
	l := Compute(Floats(1, 2), opt, 300, 200)
	if len(l.Frame.Cmds) != 8 {
		t.Errorf("frame = %v", l.Frame.Cmds)
	}
}

func TestAverageLine(t *testing.T) {
	opt := testOptions()
	opt.Average.Enabled = true
	l := Compute(Floats(0, 4, 8), opt, 300, 200)
	if l.Average != 4 || l.AverageY != l.YPos(4) {
		t.Errorf("average %g at %g", l.Average, l.AverageY)
	}
	if len(l.AverageLine.Coords) != 2 {
		t.Fatalf("average line = %v", l.AverageLine.Coords)
	}
	if l.AverageLine.Coords[0].X != 0 || l.AverageLine.Coords[1].X != 300 {
		t.Errorf("average line %v", l.AverageLine.Coords)
	}

	opt.Average.Value = floatPtr(6)
	l = Compute(Floats(0, 4, 8), opt, 300, 200)
	if l.AverageY != l.YPos(6) {
		t.Errorf("overridden average at %g", l.AverageY)
	}

	l = Compute(Floats(0, 4, 8), testOptions(), 300, 200)
	if !math.IsNaN(l.AverageY) || len(l.AverageLine.Cmds) != 0 {
		t.Error("average line drawn while disabled")
	}
}
