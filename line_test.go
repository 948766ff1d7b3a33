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
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestExtrapolateEnds(t *testing.T) {
	src := Series{Missing, Missing, V(4), V(6), Missing}
	l := Compute(src, testOptions(), 400, 200)

	if len(l.Points) != 5 {
		t.Fatalf("got %d points, want 5", len(l.Points))
	}
	want := []float64{0, 2, 4, 6, 8}
	for i, p := range l.Points {
		if p.Index != i {
			t.Errorf("point %d has index %d", i, p.Index)
		}
		if got := l.YPos(want[i]); !near(p.Pos.Y, got) {
			t.Errorf("point %d at y=%g, want %g", i, p.Pos.Y, got)
		}
		missing := i != 2 && i != 3
		if p.Missing != missing || p.Interpolated != missing {
			t.Errorf("point %d: missing=%t interpolated=%t", i, p.Missing, p.Interpolated)
		}
	}
	if len(l.Dots) != 2 {
		t.Errorf("got %d dots, want 2", len(l.Dots))
	}
	if n := len(l.Line.Cmds); n != 5 {
		t.Errorf("line has %d commands, want 5", n)
	}
}

func TestExtrapolateFlat(t *testing.T) {
	src := Series{Missing, V(3), Missing}
	l := Compute(src, testOptions(), 400, 200)
	for _, p := range l.Points {
		if p.Pos.Y != 100 {
			t.Errorf("point %d at y=%g, want 100", p.Index, p.Pos.Y)
		}
	}
	if len(l.Points) != 3 {
		t.Errorf("got %d points, want 3", len(l.Points))
	}
}

func TestInteriorMissingSkipped(t *testing.T) {
	l := Compute(Series{V(1), Missing, V(3)}, testOptions(), 400, 200)
	if len(l.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(l.Points))
	}
	if !slices.Equal(l.Line.Cmds, []path.Command{path.CmdMoveTo, path.CmdLineTo}) {
		t.Errorf("line = %v", l.Line.Cmds)
	}
	if l.Line.Coords[1].X != 400 {
		t.Errorf("line ends at x=%g, want 400", l.Line.Coords[1].X)
	}
}

func TestNullGaps(t *testing.T) {
	opt := testOptions()
	opt.NullGaps = true

	src := Series{Missing, Missing, V(4), V(6), Missing}
	l := Compute(src, opt, 400, 200)
	if len(l.Points) != 5 {
		t.Fatalf("got %d points, want 5", len(l.Points))
	}
	for _, i := range []int{0, 1, 4} {
		if !l.Points[i].Break() {
			t.Errorf("point %d is not a break", i)
		}
	}
	if !slices.Equal(l.Line.Cmds, []path.Command{path.CmdMoveTo, path.CmdLineTo}) {
		t.Fatalf("line = %v", l.Line.Cmds)
	}
	if want := l.Dots[0].Pos; l.Line.Coords[0] != want {
		t.Errorf("line starts at %v, want %v", l.Line.Coords[0], want)
	}

	l = Compute(Series{V(1), Missing, V(3)}, opt, 400, 200)
	if !slices.Equal(l.Line.Cmds, []path.Command{path.CmdMoveTo, path.CmdMoveTo}) {
		t.Errorf("line = %v", l.Line.Cmds)
	}
}

func TestQuadraticEndpoints(t *testing.T) {
	src := Floats(0, 10, 5, 8)
	straight := Compute(src, testOptions(), 300, 200)

	opt := testOptions()
	opt.Curve = Quadratic
	l := Compute(src, opt, 300, 200)

	cmds := []path.Command{path.CmdMoveTo}
	for range 3 {
		cmds = append(cmds, path.CmdQuadTo, path.CmdQuadTo)
	}
	if !slices.Equal(l.Line.Cmds, cmds) {
		t.Fatalf("line = %v", l.Line.Cmds)
	}

	// every second quadratic segment ends on a data point
	for k := range 4 {
		var got vec.Vec2
		if k == 0 {
			got = l.Line.Coords[0]
		} else {
			got = l.Line.Coords[4*k]
		}
		if !nearVec(got, straight.Line.Coords[k]) {
			t.Errorf("vertex %d: got %v, want %v", k, got, straight.Line.Coords[k])
		}
	}

	// the midpoints lie on the straight line
	for k := range 3 {
		mid := midpoint(straight.Line.Coords[k], straight.Line.Coords[k+1])
		if got := l.Line.Coords[4*k+2]; !nearVec(got, mid) {
			t.Errorf("segment %d: midpoint %v, want %v", k, got, mid)
		}
	}
}

func TestControlPoint(t *testing.T) {
	cases := []struct {
		a, b, want vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 8}, vec.Vec2{X: 2, Y: 8}},
		{vec.Vec2{X: 0, Y: 8}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 2, Y: 0}},
		{vec.Vec2{X: 0, Y: 3}, vec.Vec2{X: 4, Y: 3}, vec.Vec2{X: 2, Y: 3}},
	}
	for _, tc := range cases {
		if got := controlPoint(tc.a, tc.b); !nearVec(got, tc.want) {
			t.Errorf("controlPoint(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDotsOnly(t *testing.T) {
	opt := testOptions()
	opt.Curve = DotsOnly
	l := Compute(Floats(0, 10, 5), opt, 300, 200)
	if len(l.Line.Cmds) != 0 {
		t.Errorf("DotsOnly produced a line: %v", l.Line.Cmds)
	}
	if len(l.Dots) != 3 {
		t.Errorf("got %d dots, want 3", len(l.Dots))
	}
	for _, c := range l.FillBottom.Cmds {
		if c == path.CmdQuadTo {
			t.Fatal("DotsOnly fill uses curves")
		}
	}
}

func TestFill(t *testing.T) {
	l := Compute(Floats(0, 10, 5), testOptions(), 300, 200)

	want := []path.Command{
		path.CmdMoveTo,
		path.CmdLineTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdLineTo,
		path.CmdClose,
	}
	if !slices.Equal(l.FillBottom.Cmds, want) {
		t.Fatalf("bottom fill = %v", l.FillBottom.Cmds)
	}
	if !slices.Equal(l.FillTop.Cmds, want) {
		t.Fatalf("top fill = %v", l.FillTop.Cmds)
	}

	bottom := l.FillBottom.Coords
	if bottom[0] != (vec.Vec2{X: 0, Y: 200}) || bottom[4] != (vec.Vec2{X: 300, Y: 200}) {
		t.Errorf("bottom corners %v %v", bottom[0], bottom[4])
	}
	top := l.FillTop.Coords
	if top[0] != (vec.Vec2{X: 0, Y: 0}) || top[4] != (vec.Vec2{X: 300, Y: 0}) {
		t.Errorf("top corners %v %v", top[0], top[4])
	}
	for i := 1; i <= 3; i++ {
		if bottom[i] != l.Points[i-1].Pos {
			t.Errorf("bottom fill vertex %d = %v, want %v", i, bottom[i], l.Points[i-1].Pos)
		}
	}
}

func TestFillSkipsBreaks(t *testing.T) {
	opt := testOptions()
	opt.NullGaps = true
	l := Compute(Series{V(1), Missing, V(3)}, opt, 300, 200)
	// corner, two points, corner, close
	if n := len(l.FillBottom.Cmds); n != 5 {
		t.Errorf("bottom fill has %d commands, want 5", n)
	}
}
