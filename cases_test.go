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

package linechart_test

import (
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linechart"
	"seehuhn.de/go/linechart/testcases"
)

// TestCases checks structural properties of the layout for every fixture.
func TestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				l := tc.Layout()
				checkLayout(t, &tc, l)
			})
		}
	}
}

func checkLayout(t *testing.T, tc *testcases.TestCase, l *linechart.Layout) {
	t.Helper()

	present := len(tc.Values.Present())
	switch {
	case present == 0:
		if l.State != linechart.StateNoData {
			t.Fatalf("state = %s, want no-data", l.State)
		}
		if l.NoDataText == "" {
			t.Error("no-data layout without text")
		}
		return
	case len(tc.Values) == 1:
		if l.State != linechart.StateSinglePoint {
			t.Fatalf("state = %s, want single-point", l.State)
		}
		return
	}
	if l.State != linechart.StateChart {
		t.Fatalf("state = %s, want chart", l.State)
	}

	if len(l.Dots) != present {
		t.Errorf("%d dots for %d values", len(l.Dots), present)
	}
	for i := 1; i < len(l.Dots); i++ {
		if l.Dots[i].Pos.X <= l.Dots[i-1].Pos.X {
			t.Errorf("dots %d and %d out of order", i-1, i)
		}
	}
	for _, d := range l.Dots {
		if d.Pos.Y < 0 || d.Pos.Y > l.Height {
			t.Errorf("dot %d outside the view at y=%g", d.Index, d.Pos.Y)
		}
		if got := linechart.NearestIndex(d.Pos.X, l.Dots); got != d.Index {
			t.Errorf("NearestIndex at dot %d gives %d", d.Index, got)
		}
	}

	checkPath(t, "line", &l.Line)
	checkPath(t, "top fill", &l.FillTop)
	checkPath(t, "bottom fill", &l.FillBottom)
	if tc.Options.Curve == linechart.DotsOnly && len(l.Line.Cmds) > 0 {
		t.Error("DotsOnly layout has a line")
	}

	checkLabels(t, "X", l.XLabels, l.XAxisArea)
	var yLabels []linechart.Label
	for _, lab := range l.YLabels {
		if !lab.Average {
			yLabels = append(yLabels, lab)
		}
	}
	checkLabels(t, "Y", yLabels, l.YAxisArea)

	for i := range l.Popups {
		p := &l.Popups[i]
		if !p.Visible {
			continue
		}
		for j := max(0, i-2); j < i; j++ {
			q := &l.Popups[j]
			if q.Visible && strictOverlap(p.Frame, q.Frame) {
				t.Errorf("popups %d and %d overlap", q.Index, p.Index)
			}
		}
	}
}

func checkPath(t *testing.T, name string, p *path.Data) {
	t.Helper()
	if len(p.Cmds) > 0 && p.Cmds[0] != path.CmdMoveTo {
		t.Errorf("%s does not start with MoveTo", name)
	}
}

func checkLabels(t *testing.T, axis string, labels []linechart.Label, bg rect.Rect) {
	t.Helper()
	if len(labels) > 0 && !labels[0].Visible {
		t.Errorf("first %s-axis label is hidden", axis)
	}
	var prev *linechart.Label
	for i := range labels {
		lab := &labels[i]
		if !lab.Visible {
			continue
		}
		if prev != nil {
			if closedIntersect(prev.Frame, lab.Frame) {
				t.Errorf("%s-axis labels %q and %q intersect", axis, prev.Text, lab.Text)
			}
			if !inside(bg, lab.Frame) {
				t.Errorf("%s-axis label %q outside the axis", axis, lab.Text)
			}
		}
		prev = lab
	}
}

func closedIntersect(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}

func strictOverlap(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}

func inside(outer, inner rect.Rect) bool {
	return inner.LLx >= outer.LLx && inner.URx <= outer.URx &&
		inner.LLy >= outer.LLy && inner.URy <= outer.URy
}
