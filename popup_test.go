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
	"strconv"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestPersistentPopups(t *testing.T) {
	opt := testOptions()
	opt.Popup.Persistent = true
	l := Compute(Floats(0, 10, 0), opt, 300, 200)

	if len(l.Popups) != 3 {
		t.Fatalf("got %d popups, want 3", len(l.Popups))
	}
	want := []rect.Rect{
		{LLx: 4, LLy: 115, URx: 21, URy: 138},
		{LLx: 138, LLy: 5, URx: 162, URy: 28},
		{LLx: 283, LLy: 115, URx: 300, URy: 138},
	}
	for i, p := range l.Popups {
		if !p.Visible {
			t.Errorf("popup %d hidden", i)
		}
		if p.Frame != want[i] {
			t.Errorf("popup %d at %v, want %v", i, p.Frame, want[i])
		}
	}
	if l.Popups[1].Text != "10" {
		t.Errorf("popup text %q", l.Popups[1].Text)
	}
}

func TestPopupBelow(t *testing.T) {
	opt := testOptions()
	opt.Padding = floatPtr(0)
	opt.Popup.Persistent = true
	l := Compute(Floats(0, 10, 0), opt, 300, 200)

	p := l.Popups[1]
	if !p.Visible {
		t.Fatal("popup hidden")
	}
	// the dot is at the top edge, so there is no room above
	if p.Frame.LLy != 17 || p.Frame.URy != 40 {
		t.Errorf("popup at %v", p.Frame)
	}
}

func TestPopupHidden(t *testing.T) {
	l := Compute(Floats(0, 10, 0), testOptions(), 300, 200)
	all := rect.Rect{URx: 300, URy: 200}
	if p := l.placePopup(l.Dots[1], all); p.Visible {
		t.Errorf("popup visible at %v", p.Frame)
	}
}

func TestPopupAvoidsGutter(t *testing.T) {
	opt := testOptions()
	opt.YAxis.Enabled = true
	l := Compute(Floats(0, 10, 0), opt, 300, 200)
	p := l.placePopup(l.Dots[0])
	if p.Frame.LLx != l.YLabelOffset+4 {
		t.Errorf("popup starts at x=%g, want %g", p.Frame.LLx, l.YLabelOffset+4)
	}

	opt.YAxis.Side = Right
	l = Compute(Floats(0, 10, 0), opt, 300, 200)
	p = l.placePopup(l.Dots[2])
	if p.Frame.URx != l.Width-l.YLabelOffset-4 {
		t.Errorf("popup ends at x=%g, want %g", p.Frame.URx, l.Width-l.YLabelOffset-4)
	}
}

func TestPopupText(t *testing.T) {
	opt := testOptions()
	opt.Popup.Prefix = "€"
	opt.Popup.Suffix = " total"
	opt.Popup.Text = func(i int) (string, bool) {
		if i == 1 {
			return "peak", true
		}
		return "", false
	}
	l := Compute(Floats(3, 10, 4), opt, 300, 200)

	want := []string{"€3 total", "peak", "€4 total"}
	for i, s := range want {
		if got := l.PopupText(i); got != s {
			t.Errorf("PopupText(%d) = %q, want %q", i, got, s)
		}
	}
}

func TestAlwaysDisplay(t *testing.T) {
	opt := testOptions()
	opt.Popup.Persistent = true
	opt.Popup.AlwaysDisplay = func(i int) bool { return i%2 == 0 }
	l := Compute(Floats(1, 2, 3, 4, 5), opt, 500, 200)

	var idx []int
	for _, p := range l.Popups {
		idx = append(idx, p.Index)
	}
	if len(idx) != 3 || idx[0] != 0 || idx[1] != 2 || idx[2] != 4 {
		t.Errorf("popup indices %v", idx)
	}
}

func TestPopupNeighbours(t *testing.T) {
	opt := testOptions()
	opt.Popup.Persistent = true
	opt.Padding = floatPtr(100)
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i % 2)
	}
	l := Compute(Floats(values...), opt, 200, 200)

	for i := range l.Popups {
		p := &l.Popups[i]
		if !p.Visible {
			continue
		}
		for j := max(0, i-2); j < i; j++ {
			q := &l.Popups[j]
			if q.Visible && overlaps(p.Frame, q.Frame) {
				t.Errorf("popups %d and %d overlap", q.Index, p.Index)
			}
		}
	}
}

func TestNearestIndex(t *testing.T) {
	l := Compute(Floats(1, 5, 2, 8, 3), testOptions(), 400, 200)
	for _, d := range l.Dots {
		if got := NearestIndex(d.Pos.X, l.Dots); got != d.Index {
			t.Errorf("NearestIndex(%g) = %d, want %d", d.Pos.X, got, d.Index)
		}
	}

	cases := []struct {
		x    float64
		want int
	}{
		{-50, 0},
		{49, 0},
		{50, 0}, // tie goes to the first candidate
		{51, 1},
		{1000, 4},
	}
	for _, tc := range cases {
		if got := NearestIndex(tc.x, l.Dots); got != tc.want {
			t.Errorf("NearestIndex(%g) = %d, want %d", tc.x, got, tc.want)
		}
	}

	if got := NearestIndex(10, nil); got != -1 {
		t.Errorf("NearestIndex on no points = %d", got)
	}
	breaks := []Point{{Index: 0, Missing: true}, {Index: 1, Pos: vec.Vec2{X: 100}}}
	if got := NearestIndex(0, breaks); got != 1 {
		t.Errorf("break point selected: %d", got)
	}
}

func TestTouch(t *testing.T) {
	src := Series{V(1), Missing, V(2), V(8)}
	l := Compute(src, testOptions(), 300, 200)

	tc, ok := l.Touch(110)
	if !ok {
		t.Fatal("no touch result")
	}
	// index 1 is missing, so the nearest dot is index 2 at x=200
	if tc.Index != 2 || tc.Dot.Index != 2 {
		t.Errorf("touch selected %d", tc.Index)
	}
	if tc.LineX != 110 {
		t.Errorf("LineX = %g", tc.LineX)
	}
	if tc.Popup.Text != strconv.Itoa(2) || !tc.Popup.Visible {
		t.Errorf("popup %+v", tc.Popup)
	}

	tc, _ = l.Touch(-20)
	if tc.LineX != 0 || tc.Index != 0 {
		t.Errorf("touch at -20: %+v", tc)
	}
	tc, _ = l.Touch(400)
	if tc.LineX != 300 || tc.Index != 3 {
		t.Errorf("touch at 400: %+v", tc)
	}

	empty := Compute(Series{Missing}, testOptions(), 300, 200)
	if _, ok := empty.Touch(10); ok {
		t.Error("touch on empty chart succeeded")
	}
}
