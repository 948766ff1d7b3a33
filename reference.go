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

	"seehuhn.de/go/geom/vec"
)

// buildReference builds the average line, the reference lines and the
// reference frame.
func (l *Layout) buildReference() {
	opt := l.opt
	g := l.Graph

	if opt.Average.Enabled && !math.IsNaN(l.Average) {
		l.AverageY = l.YPos(l.Average)
		l.AverageLine.MoveTo(vec.Vec2{X: g.LLx, Y: l.AverageY})
		l.AverageLine.LineTo(vec.Vec2{X: g.URx, Y: l.AverageY})
	}

	if opt.Reference.XLines {
		// The lines mark the data index, not the (possibly shifted)
		// label centre.
		for i := range l.XLabels {
			x := l.XPos(l.XLabels[i].Index)
			l.XReference.MoveTo(vec.Vec2{X: x, Y: g.URy})
			l.XReference.LineTo(vec.Vec2{X: x, Y: g.LLy})
		}
	}

	if opt.Reference.YLines {
		for i := range l.YLabels {
			label := &l.YLabels[i]
			if !label.Visible || label.Average {
				continue
			}
			y := label.Center().Y
			l.YReference.MoveTo(vec.Vec2{X: g.LLx, Y: y})
			l.YReference.LineTo(vec.Vec2{X: g.URx, Y: y})
		}
	}

	if opt.Reference.Frame {
		d := l.ReferenceWidth / 4
		edges := opt.frameEdges()
		if edges&EdgeLeft != 0 {
			l.Frame.MoveTo(vec.Vec2{X: g.LLx + d, Y: g.URy})
			l.Frame.LineTo(vec.Vec2{X: g.LLx + d, Y: g.LLy})
		}
		if edges&EdgeBottom != 0 {
			l.Frame.MoveTo(vec.Vec2{X: g.LLx, Y: g.URy - d})
			l.Frame.LineTo(vec.Vec2{X: g.URx, Y: g.URy - d})
		}
		if edges&EdgeTop != 0 {
			l.Frame.MoveTo(vec.Vec2{X: g.LLx + d, Y: g.LLy + d})
			l.Frame.LineTo(vec.Vec2{X: g.URx, Y: g.LLy + d})
		}
		if edges&EdgeRight != 0 {
			l.Frame.MoveTo(vec.Vec2{X: g.URx - d, Y: g.URy})
			l.Frame.LineTo(vec.Vec2{X: g.URx - d, Y: g.LLy})
		}
	}
}
