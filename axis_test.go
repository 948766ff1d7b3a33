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
	"fmt"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func labeled(values ...float64) *Labeled {
	src := &Labeled{Series: Floats(values...)}
	for i := range values {
		src.Labels = append(src.Labels, fmt.Sprintf("L%d", i))
	}
	return src
}

func intPtr(i int) *int { return &i }

func floatPtr(x float64) *float64 { return &x }

func TestXLabelIndices(t *testing.T) {
	cases := []struct {
		name string
		x    XAxisOptions
		n    int
		want []int
	}{
		{"all", XAxisOptions{}, 4, []int{0, 1, 2, 3}},
		{"explicit", XAxisOptions{Indices: []int{3, 1}}, 5, []int{3, 1}},
		{"base", XAxisOptions{BaseIndex: intPtr(1), Increment: intPtr(3)}, 10, []int{1, 4, 7}},
		{"base_zero_increment", XAxisOptions{BaseIndex: intPtr(2), Increment: intPtr(0)}, 5, []int{2, 3, 4}},
		{"base_only", XAxisOptions{BaseIndex: intPtr(2)}, 3, []int{0, 1, 2}},
		{"gaps", XAxisOptions{Gaps: intPtr(2)}, 10, []int{2, 5, 8}},
		{"gaps_zero", XAxisOptions{Gaps: intPtr(0)}, 3, []int{0, 1, 2}},
		{"gaps_large", XAxisOptions{Gaps: intPtr(20)}, 10, []int{0, 9}},
		{"explicit_wins", XAxisOptions{Indices: []int{0}, Gaps: intPtr(1)}, 5, []int{0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opt := testOptions()
			opt.XAxis = tc.x
			opt.XAxis.Enabled = true
			l := Compute(make(Series, tc.n), opt, 300, 200)
			if got := l.xLabelIndices(); !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestXAxisLabels(t *testing.T) {
	opt := testOptions()
	opt.XAxis.Enabled = true
	l := Compute(labeled(1, 2, 3), opt, 300, 200)

	if len(l.XLabels) != 3 {
		t.Fatalf("got %d labels, want 3", len(l.XLabels))
	}
	// the axis band is FontSize+8 high
	if l.Graph.URy != 179 || l.XAxisArea.LLy != 179 {
		t.Errorf("graph %v, axis %v", l.Graph, l.XAxisArea)
	}

	first, mid, last := l.XLabels[0], l.XLabels[1], l.XLabels[2]
	if first.Frame.LLx != 0 || first.Frame.URx != 14 {
		t.Errorf("first label %v", first.Frame)
	}
	if mid.Frame.LLx != 143 || mid.Frame.URx != 157 {
		t.Errorf("middle label %v", mid.Frame)
	}
	if last.Frame.LLx != 286 || last.Frame.URx != 300 {
		t.Errorf("last label %v", last.Frame)
	}
	for _, lab := range l.XLabels {
		if !lab.Visible {
			t.Errorf("label %q hidden", lab.Text)
		}
		if lab.Frame.URy != 199 || lab.Frame.LLy != 186 {
			t.Errorf("label %q at %v", lab.Text, lab.Frame)
		}
	}
}

func TestXAxisWithoutLabeler(t *testing.T) {
	opt := testOptions()
	opt.XAxis.Enabled = true
	l := Compute(Floats(1, 2, 3), opt, 300, 200)
	if len(l.XLabels) != 0 {
		t.Errorf("got %d labels, want 0", len(l.XLabels))
	}
	if l.Graph.URy != 179 {
		t.Errorf("axis band not reserved: %v", l.Graph)
	}
}

func TestXAxisOutOfRange(t *testing.T) {
	opt := testOptions()
	opt.XAxis.Enabled = true
	opt.XAxis.Indices = []int{-1, 1, 7}
	l := Compute(labeled(1, 2, 3), opt, 300, 200)
	if len(l.XLabels) != 1 || l.XLabels[0].Index != 1 {
		t.Errorf("labels = %v", l.XLabels)
	}
}

func TestXAxisOverlap(t *testing.T) {
	opt := testOptions()
	opt.XAxis.Enabled = true
	values := make([]float64, 20)
	for i := range values {
		values[i] = float64(i)
	}
	l := Compute(labeled(values...), opt, 100, 200)

	if !l.XLabels[0].Visible {
		t.Error("first label hidden")
	}
	var prev *Label
	hidden := 0
	for i := range l.XLabels {
		lab := &l.XLabels[i]
		if !lab.Visible {
			hidden++
			continue
		}
		if prev != nil && intersects(prev.Frame, lab.Frame) {
			t.Errorf("visible labels %q and %q intersect", prev.Text, lab.Text)
		}
		if !contains(l.XAxisArea, lab.Frame) {
			t.Errorf("visible label %q outside the axis", lab.Text)
		}
		prev = lab
	}
	if hidden == 0 {
		t.Error("no labels hidden")
	}
}

func TestSuppressOverlaps(t *testing.T) {
	bg := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 10}
	labels := []Label{
		{Text: "a", Frame: rect.Rect{LLx: 0, LLy: 0, URx: 20, URy: 10}},
		{Text: "b", Frame: rect.Rect{LLx: 10, LLy: 0, URx: 30, URy: 10}}, // overlaps a
		{Text: "c", Frame: rect.Rect{LLx: 20, LLy: 0, URx: 40, URy: 10}}, // touches a
		{Text: "d", Frame: rect.Rect{LLx: 25, LLy: 0, URx: 45, URy: 10}},
		{Text: "e", Frame: rect.Rect{LLx: 90, LLy: 0, URx: 110, URy: 10}}, // outside
	}
	hidden := suppressOverlaps(labels, bg)

	want := []bool{true, false, false, true, false}
	for i, lab := range labels {
		if lab.Visible != want[i] {
			t.Errorf("label %s: visible=%t, want %t", lab.Text, lab.Visible, want[i])
		}
	}
	if hidden != 3 {
		t.Errorf("hidden = %d, want 3", hidden)
	}
}

func TestYAxisLabels(t *testing.T) {
	opt := testOptions()
	opt.YAxis.Enabled = true
	l := Compute(Floats(0, 10), opt, 300, 200)

	var texts []string
	for _, lab := range l.YLabels {
		texts = append(texts, lab.Text)
		if !lab.Visible {
			t.Errorf("label %q hidden", lab.Text)
		}
		if lab.Index != -1 {
			t.Errorf("label %q has index %d", lab.Text, lab.Index)
		}
	}
	if !slices.Equal(texts, []string{"0", "5", "10"}) {
		t.Fatalf("labels = %v", texts)
	}
	for _, lab := range l.YLabels {
		if c := lab.Center(); !near(c.Y, l.YPos(lab.Value)) {
			t.Errorf("label %q centred at %g, want %g", lab.Text, c.Y, l.YPos(lab.Value))
		}
		if lab.Frame.LLx != 0 || lab.Frame.URx != l.YLabelOffset-1 {
			t.Errorf("label %q frame %v", lab.Text, lab.Frame)
		}
		if lab.Frame.URy-lab.Frame.LLy != 20 {
			t.Errorf("label %q has height %g", lab.Text, lab.Frame.URy-lab.Frame.LLy)
		}
	}
}

func TestYAxisFormat(t *testing.T) {
	opt := testOptions()
	opt.YAxis.Enabled = true
	opt.YAxis.Labels = intPtr(2)
	opt.YAxis.Prefix = "$"
	opt.YAxis.Suffix = "k"
	opt.YAxis.Format = "%.1f"
	l := Compute(Floats(-1, 2), opt, 300, 200)

	if l.YLabels[0].Text != "$-1.0k" || l.YLabels[1].Text != "$2.0k" {
		t.Errorf("labels %q, %q", l.YLabels[0].Text, l.YLabels[1].Text)
	}
	// "$-1.0k" is measured as "$NN.Nk"
	if l.YLabelOffset != 2+6*7 {
		t.Errorf("YLabelOffset = %g", l.YLabelOffset)
	}
}

func TestYAxisCount(t *testing.T) {
	cases := []struct {
		name   string
		labels *int
		base   *float64
		inc    *float64
		want   []float64
	}{
		{"default", nil, nil, nil, []float64{0, 5, 10}},
		{"five", intPtr(5), nil, nil, []float64{0, 2.5, 5, 7.5, 10}},
		{"one", intPtr(1), nil, nil, []float64{5}},
		{"one_with_base", intPtr(1), floatPtr(0), floatPtr(2), []float64{5}},
		{"zero", intPtr(0), nil, nil, nil},
		{"negative", intPtr(-2), nil, nil, nil},
		{"base", nil, floatPtr(1), floatPtr(4), []float64{1, 5, 9}},
		{"base_zero_increment", nil, floatPtr(8), floatPtr(0), []float64{8, 9, 10}},
		{"too_many", nil, floatPtr(0), floatPtr(0.01), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opt := testOptions()
			opt.YAxis.Enabled = true
			opt.YAxis.Labels = tc.labels
			opt.YAxis.BaseValue = tc.base
			opt.YAxis.Increment = tc.inc
			opt.Padding = floatPtr(0)
			l := Compute(Floats(0, 10), opt, 300, 1000)

			var got []float64
			for _, lab := range l.YLabels {
				got = append(got, lab.Value)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestYAxisLabelLimit(t *testing.T) {
	cases := []struct {
		name  string
		max   float64
		inc   float64
		wantN int
	}{
		{"fifty_steps", 5, 0.1, 51},
		{"just_below_limit", 9.95, 0.1, 100},
		{"at_limit", 10, 0.1, 0},
		{"above_limit", 20, 0.1, 0},
		{"base_above_max", -1, 0.1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opt := testOptions()
			opt.YAxis.Enabled = true
			opt.YAxis.BaseValue = floatPtr(0)
			opt.YAxis.Increment = floatPtr(tc.inc)
			opt.Padding = floatPtr(0)
			l := Compute(Floats(-2, tc.max), opt, 300, 100000)

			if got := len(l.YLabels); got != tc.wantN {
				t.Errorf("got %d labels, want %d", got, tc.wantN)
			}
		})
	}
}

func TestAverageLabel(t *testing.T) {
	opt := testOptions()
	opt.YAxis.Enabled = true
	opt.Average.Enabled = true
	opt.Average.Title = "avg"
	l := Compute(Floats(0, 10), opt, 300, 200)

	if len(l.YLabels) != 4 {
		t.Fatalf("got %d labels, want 4", len(l.YLabels))
	}
	avg := l.YLabels[3]
	if !avg.Average || !avg.Visible || avg.Text != "avg" {
		t.Errorf("average label = %+v", avg)
	}
	if l.YLabels[1].Visible {
		t.Error("label at the average is still visible")
	}
	if !l.YLabels[0].Visible || !l.YLabels[2].Visible {
		t.Error("labels away from the average were hidden")
	}
	if l.YLabelOffset != 2+21 {
		t.Errorf("YLabelOffset = %g, want 23", l.YLabelOffset)
	}
}

func TestDigitsAsN(t *testing.T) {
	if got := digitsAsN("-12.5%"); got != "NNN.N%" {
		t.Errorf("got %q", got)
	}
}
