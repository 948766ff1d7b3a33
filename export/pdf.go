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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/linechart"
)

// pathWriter is the part of a PDF content stream used to emit paths.
type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// WritePDF writes the geometry of the layout to a single-page PDF file.
// One PDF unit corresponds to one view unit.  Text is not included; the
// popup boxes are drawn without their text.  If s is nil, [DefaultStyle]
// is used.
func WritePDF(fname string, l *linechart.Layout, s *Style) error {
	if s == nil {
		s = DefaultStyle()
	}

	paper := &pdf.Rectangle{URx: l.Width, URy: l.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(s.Background))
	page.Rectangle(0, 0, l.Width, l.Height)
	page.Fill()

	// PDF origin is bottom-left; layouts use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, l.Height})

	if l.State == linechart.StateChart {
		page.SetFillColor(color.DeviceGray(s.TopFill))
		writePath(page, &l.FillTop)
		page.Fill()
		page.SetFillColor(color.DeviceGray(s.BottomFill))
		writePath(page, &l.FillBottom)
		page.Fill()

		page.SetStrokeColor(color.DeviceGray(s.Reference))
		page.SetLineWidth(l.ReferenceWidth)
		page.SetLineCap(graphics.LineCapButt)
		writePath(page, &l.XReference)
		writePath(page, &l.YReference)
		writePath(page, &l.Frame)
		if hasDrawing(&l.XReference) || hasDrawing(&l.YReference) || hasDrawing(&l.Frame) {
			page.Stroke()
		}

		if hasDrawing(&l.Line) {
			page.SetStrokeColor(color.DeviceGray(s.Line))
			page.SetLineWidth(s.LineWidth)
			page.SetLineCap(s.LineCap)
			page.SetLineJoin(s.LineJoin)
			page.SetMiterLimit(s.miterLimit())
			writePath(page, &l.Line)
			page.Stroke()
		}

		if hasDrawing(&l.AverageLine) {
			page.SetStrokeColor(color.DeviceGray(s.Average))
			page.SetLineWidth(s.LineWidth)
			page.SetLineCap(graphics.LineCapButt)
			if len(s.AverageDash) > 0 {
				page.SetLineDash(s.AverageDash, 0)
			}
			writePath(page, &l.AverageLine)
			page.Stroke()
		}
	}

	if !s.HideDots && len(l.Dots) > 0 {
		page.SetFillColor(color.DeviceGray(s.Dots))
		r := l.DotDiameter / 2
		for _, d := range l.Dots {
			writeCircle(page, d.Pos.X, d.Pos.Y, r)
		}
		page.Fill()
	}

	popups := false
	for _, p := range l.Popups {
		if p.Visible {
			popups = true
			f := p.Frame
			page.Rectangle(f.LLx, f.LLy, f.URx-f.LLx, f.URy-f.LLy)
		}
	}
	if popups {
		page.SetFillColor(color.DeviceGray(s.Popup))
		page.Fill()
	}

	return page.Close()
}

// writePath emits p.  Quadratic segments are converted to cubic ones,
// since PDF has no quadratic Bézier curves.
func writePath(w pathWriter, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			w.ClosePath()
		}
	}
}

func writeCircle(w pathWriter, cx, cy, r float64) {
	c := circleCubics(cx, cy, r)
	w.MoveTo(c[0][0], c[0][1])
	for i := 1; i < len(c); i += 3 {
		w.CurveTo(c[i][0], c[i][1], c[i+1][0], c[i+1][1], c[i+2][0], c[i+2][1])
	}
	w.ClosePath()
}

// hasDrawing reports whether p contains anything besides MoveTo commands.
func hasDrawing(p *path.Data) bool {
	for _, c := range p.Cmds {
		if c != path.CmdMoveTo {
			return true
		}
	}
	return false
}
