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

	"seehuhn.de/go/geom/rect"
)

// Popup is a value label shown next to a dot.
type Popup struct {
	Index   int // data index
	Text    string
	Frame   rect.Rect
	Visible bool // false if no position avoids the neighbouring popups
}

// Layout constants for popups.
const (
	popupPadding  = 10.0 // added to the text size in both directions
	popupDotGap   = 12.0 // vertical distance between dot and popup
	popupAxisGap  = 4.0  // horizontal distance from the Y-axis gutter
	popupTopLimit = 2.0  // smallest allowed top coordinate
)

// PopupText returns the popup text for data index i.
func (l *Layout) PopupText(i int) string {
	p := &l.opt.Popup
	if p.Text != nil {
		if s, ok := p.Text(i); ok {
			return s
		}
	}
	v, _ := l.values[i].Get()
	return p.Prefix + fmt.Sprintf(l.opt.valueFormat(), v) + p.Suffix
}

// placePopup positions a popup for the given dot.  The popup is placed
// above the dot if possible, and below the dot otherwise.  If neither
// position avoids the neighbour frames, the popup is not visible.
func (l *Layout) placePopup(dot Point, neighbours ...rect.Rect) Popup {
	text := l.PopupText(dot.Index)
	tw, th := l.m.Size(text)
	w, h := tw+popupPadding, th+popupPadding

	half := w / 2
	xc := dot.Pos.X
	yAxis := l.opt.YAxis.Enabled
	off := l.YLabelOffset
	switch {
	case yAxis && l.opt.YAxis.Side == Left && xc-half <= off:
		xc = half + off + popupAxisGap
	case yAxis && l.opt.YAxis.Side == Right && xc+half >= l.Width-off:
		xc = l.Width - half - off - popupAxisGap
	case xc-half <= 0:
		xc = half + popupAxisGap
	case xc+half >= l.Width:
		xc = l.Width - half
	}

	dotFrame := l.DotFrame(dot)
	frame := rect.Rect{LLx: xc - half, URx: xc + half}
	frame.LLy = dotFrame.LLy - popupDotGap - h
	frame.URy = frame.LLy + h

	res := Popup{Index: dot.Index, Text: text, Frame: frame, Visible: true}
	if frame.LLy >= popupTopLimit && !overlapsAny(frame, neighbours) {
		return res
	}

	frame.LLy = dotFrame.URy + popupDotGap
	frame.URy = frame.LLy + h
	res.Frame = frame
	if frame.URy > l.Graph.URy || overlapsAny(frame, neighbours) {
		res.Visible = false
	}
	return res
}

func overlapsAny(r rect.Rect, others []rect.Rect) bool {
	for _, o := range others {
		if overlaps(r, o) {
			return true
		}
	}
	return false
}

// layoutPersistentPopups places one popup per dot.  Each popup avoids the
// visible popups of the two preceding data indices.
func (l *Layout) layoutPersistentPopups() {
	always := l.opt.Popup.AlwaysDisplay
	var neighbours []rect.Rect
	for _, dot := range l.Dots {
		if always != nil && !always(dot.Index) {
			continue
		}
		neighbours = neighbours[:0]
		for k := len(l.Popups) - 1; k >= 0 && k >= len(l.Popups)-2; k-- {
			p := &l.Popups[k]
			if p.Visible && p.Index >= dot.Index-2 {
				neighbours = append(neighbours, p.Frame)
			}
		}
		l.Popups = append(l.Popups, l.placePopup(dot, neighbours...))
	}
}
