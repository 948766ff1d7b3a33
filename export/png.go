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
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/linechart"
)

// RenderImage draws the layout into a new image covering the view.  If s
// is nil, [DefaultStyle] is used.
func RenderImage(l *linechart.Layout, s *Style) *image.RGBA {
	if s == nil {
		s = DefaultStyle()
	}
	w := max(int(math.Ceil(l.Width)), 1)
	h := max(int(math.Ceil(l.Height)), 1)
	c := &canvas{
		dst: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(grayColor(s.Background)), image.Point{}, draw.Src)

	face := s.face()
	if l.State == linechart.StateNoData {
		frame := rect.Rect{URx: l.Width, URy: l.Height}
		c.text(face, l.NoDataText, frame, s.Labels)
		return c.dst
	}

	if l.State == linechart.StateChart {
		c.begin()
		c.addPath(&l.FillTop)
		c.paint(s.TopFill)
		c.begin()
		c.addPath(&l.FillBottom)
		c.paint(s.BottomFill)

		c.begin()
		butt, miter := graphics.LineCapButt, graphics.LineJoinMiter
		c.addStroke(&l.XReference, l.ReferenceWidth, butt, miter, defaultMiterLimit, nil)
		c.addStroke(&l.YReference, l.ReferenceWidth, butt, miter, defaultMiterLimit, nil)
		c.addStroke(&l.Frame, l.ReferenceWidth, butt, miter, defaultMiterLimit, nil)
		c.paint(s.Reference)

		c.begin()
		c.addStroke(&l.Line, s.LineWidth, s.LineCap, s.LineJoin, s.miterLimit(), nil)
		c.paint(s.Line)

		c.begin()
		c.addStroke(&l.AverageLine, s.LineWidth, butt, s.LineJoin, s.miterLimit(), s.AverageDash)
		c.paint(s.Average)

		for _, lab := range l.XLabels {
			if lab.Visible {
				c.text(face, lab.Text, lab.Frame, s.Labels)
			}
		}
		for _, lab := range l.YLabels {
			if lab.Visible {
				c.text(face, lab.Text, lab.Frame, s.Labels)
			}
		}
	}

	if !s.HideDots && len(l.Dots) > 0 {
		c.begin()
		for _, d := range l.Dots {
			c.addCircle(d.Pos, l.DotDiameter/2)
		}
		c.paint(s.Dots)
	}

	for _, p := range l.Popups {
		if !p.Visible {
			continue
		}
		c.begin()
		c.addRect(p.Frame)
		c.paint(s.Popup)
		c.text(face, p.Text, p.Frame, s.PopupText)
	}

	return c.dst
}

// canvas accumulates outlines in a vector rasterizer and composites them
// onto the destination image.
type canvas struct {
	dst *image.RGBA
	z   *vector.Rasterizer
	st  stroker
}

func (c *canvas) begin() {
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *canvas) paint(gray float64) {
	src := image.NewUniform(grayColor(gray))
	c.z.Draw(c.dst, c.dst.Bounds(), src, image.Point{})
}

// addPath adds the subpaths of p to the rasterizer.  Open subpaths are
// closed implicitly.
func (c *canvas) addPath(p *path.Data) {
	z := c.z
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			z.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}

func (c *canvas) addRect(r rect.Rect) {
	z := c.z
	z.MoveTo(float32(r.LLx), float32(r.LLy))
	z.LineTo(float32(r.URx), float32(r.LLy))
	z.LineTo(float32(r.URx), float32(r.URy))
	z.LineTo(float32(r.LLx), float32(r.URy))
	z.ClosePath()
}

// addCircle adds a circle.  All circles share the orientation of the
// stroke outlines, so that overlapping shapes do not cancel.
func (c *canvas) addCircle(center vec.Vec2, r float64) {
	pts := circleCubics(center.X, center.Y, r)
	z := c.z
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for i := 1; i < len(pts); i += 3 {
		z.CubeTo(float32(pts[i][0]), float32(pts[i][1]),
			float32(pts[i+1][0]), float32(pts[i+1][1]),
			float32(pts[i+2][0]), float32(pts[i+2][1]))
	}
	z.ClosePath()
}

// addStroke adds the stroke outline of p.
func (c *canvas) addStroke(p *path.Data, width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle, miterLimit float64, dash []float64) {
	c.st.Width = width
	c.st.Cap = lineCap
	c.st.Join = join
	c.st.MiterLimit = miterLimit
	c.st.Dash = dash
	c.st.DashPhase = 0
	c.st.Stroke(p.Iter(), c.addPolygon)
}

func (c *canvas) addPolygon(poly []vec.Vec2) {
	z := c.z
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// text draws s centred in the frame.
func (c *canvas) text(face font.Face, s string, frame rect.Rect, gray float64) {
	m := face.Metrics()
	adv := font.MeasureString(face, s)
	cx := (frame.LLx + frame.URx) / 2
	cy := (frame.LLy + frame.URy) / 2
	textHeight := float64(m.Ascent+m.Descent) / 64
	baseline := cy - textHeight/2 + float64(m.Ascent)/64

	dr := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(grayColor(gray)),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round((cx - float64(adv)/128) * 64)),
			Y: fixed.Int26_6(math.Round(baseline * 64)),
		},
	}
	dr.DrawString(s)
}
