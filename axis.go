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
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// yLabelOffset returns the width of the Y-axis label gutter.  The gutter
// fits the labels for the minimum and maximum value, with every digit
// counted as the letter N, and the title of the average line.
func (l *Layout) yLabelOffset() float64 {
	if !l.opt.YAxis.Enabled {
		return 0
	}
	widest := max(l.labelWidth(l.Max), l.labelWidth(l.Min))
	if l.opt.Average.Enabled {
		titleWidth := defaultAverageWidth
		if l.opt.Average.Title != "" {
			titleWidth, _ = l.m.Size(l.opt.Average.Title)
		}
		widest = max(widest, titleWidth)
	}
	return 2 + widest
}

func (l *Layout) labelWidth(v float64) float64 {
	w, _ := l.m.Size(digitsAsN(l.yAxisText(v)))
	return w
}

// digitsAsN replaces digits and minus signs by the letter N, in order to
// obtain a width which does not depend on the particular digits.
func digitsAsN(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' {
			return 'N'
		}
		return r
	}, s)
}

func (l *Layout) yAxisText(v float64) string {
	y := &l.opt.YAxis
	return y.Prefix + fmt.Sprintf(l.opt.valueFormat(), v) + y.Suffix
}

// xLabelIndices returns the data indices which get an X-axis label.
func (l *Layout) xLabelIndices() []int {
	x := &l.opt.XAxis
	n := len(l.values)
	if x.Indices != nil {
		return x.Indices
	}

	base, inc := 0, 1
	if x.BaseIndex != nil && x.Increment != nil {
		base, inc = *x.BaseIndex, *x.Increment
	} else if x.Gaps != nil {
		inc = *x.Gaps + 1
		if inc >= n-1 {
			// keep at least the first and the last point
			base = 0
			inc = n - 1
		} else if inc > 0 {
			leftGap := inc - 1
			rightGap := n % inc
			base = inc - 1 - (leftGap-rightGap)/2
		}
	}
	if inc < 1 {
		if l.opt.Logger != nil {
			l.opt.Logger.Debug("X-axis increment replaced by 1", "increment", inc)
		}
		inc = 1
	}

	var res []int
	for i := base; i < n; i += inc {
		res = append(res, i)
	}
	return res
}

// layoutXAxis places the X-axis labels.  Labels are centred on their data
// index, except that the labels at the first and last index are moved
// inwards by half their width so that they do not extend past the graph.
func (l *Layout) layoutXAxis(src DataSource) {
	labeler, ok := src.(XLabeler)
	if !ok {
		return
	}

	n := len(l.values)
	for _, i := range l.xLabelIndices() {
		if i < 0 || i >= n {
			continue
		}
		text := labeler.LabelAt(i)
		w, h := l.m.Size(text)

		x := l.XPos(i)
		frame := rect.Rect{LLx: x - w/2, LLy: l.Height - 1 - h, URx: x + w/2, URy: l.Height - 1}
		switch i {
		case 0:
			frame.LLx, frame.URx = x, x+w
		case n - 1:
			frame.LLx, frame.URx = x-w, x
		}

		l.XLabels = append(l.XLabels, Label{
			Text:  text,
			Index: i,
			Frame: frame,
		})
	}

	hidden := suppressOverlaps(l.XLabels, l.XAxisArea)
	if hidden > 0 && l.opt.Logger != nil {
		l.opt.Logger.Debug("overlapping X-axis labels hidden", "count", hidden)
	}
}

// layoutYAxis places the Y-axis labels and the label of the average line.
func (l *Layout) layoutYAxis() {
	y := &l.opt.YAxis
	log := l.opt.Logger

	n := defaultYLabels
	if y.Labels != nil {
		n = *y.Labels
		if n <= 0 {
			return
		}
	}

	var value, inc float64
	if n == 1 {
		value = (l.Min + l.Max) / 2
	} else {
		value = l.Min
		inc = (l.Max - l.Min) / float64(n-1)
		if y.BaseValue != nil && y.Increment != nil {
			value = *y.BaseValue
			inc = *y.Increment
			if inc <= 0 {
				if log != nil {
					log.Debug("Y-axis increment replaced by 1", "increment", inc)
				}
				inc = 1
			}
			k := math.Floor((l.Max - value) / inc)
			if math.IsNaN(k) || k >= maxYLabels {
				if log != nil {
					log.Debug("Y-axis increment produces too many labels, no labels drawn",
						"base", value, "increment", inc)
				}
				return
			}
			n = int(k) + 1
		}
	}

	for range n {
		l.YLabels = append(l.YLabels, l.yLabel(l.yAxisText(value), value))
		value += inc
	}
	hidden := suppressOverlaps(l.YLabels, l.YAxisArea)

	avg := &l.opt.Average
	if avg.Enabled && avg.Title != "" {
		label := l.yLabel(avg.Title, l.Average)
		label.Average = true
		label.Visible = true
		for i := range l.YLabels {
			if l.YLabels[i].Visible && intersects(l.YLabels[i].Frame, label.Frame) {
				l.YLabels[i].Visible = false
				hidden++
			}
		}
		l.YLabels = append(l.YLabels, label)
	}

	if hidden > 0 && log != nil {
		log.Debug("overlapping Y-axis labels hidden", "count", hidden)
	}
}

// yLabel returns a Y-axis label for the given value.  The label fills the
// gutter horizontally.
func (l *Layout) yLabel(text string, v float64) Label {
	off := l.YLabelOffset
	h := l.m.FontSize() + 7
	x0 := 0.0
	if l.opt.YAxis.Side == Right {
		x0 = l.Width - off - 1
	}
	cy := l.YPos(v)
	return Label{
		Text:  text,
		Index: -1,
		Value: v,
		Frame: rect.Rect{LLx: x0, LLy: cy - h/2, URx: x0 + off - 1, URy: cy + h/2},
	}
}

// suppressOverlaps marks labels as visible or hidden.  The first label
// is always visible.  Every further label is visible if it does not touch
// the previous visible label and lies inside the axis background.  The
// function returns the number of hidden labels.
func suppressOverlaps(labels []Label, background rect.Rect) int {
	hidden := 0
	prev := -1
	for i := range labels {
		if prev < 0 {
			labels[i].Visible = true
			prev = i
			continue
		}
		if !intersects(labels[prev].Frame, labels[i].Frame) && contains(background, labels[i].Frame) {
			labels[i].Visible = true
			prev = i
		} else {
			labels[i].Visible = false
			hidden++
		}
	}
	return hidden
}

// intersects reports whether the closed rectangles a and b have a point
// in common.  Rectangles which only touch along an edge intersect.
func intersects(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}

// overlaps reports whether a and b share an area of positive size.
func overlaps(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}

// contains reports whether inner lies inside outer.
func contains(outer, inner rect.Rect) bool {
	return inner.LLx >= outer.LLx && inner.URx <= outer.URx &&
		inner.LLy >= outer.LLy && inner.URy <= outer.URy
}
