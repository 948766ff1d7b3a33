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

// Package export draws a chart layout to a PDF file or to an image.
package export

import (
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes the appearance of a rendered chart.  Colours are gray
// levels between 0 (black) and 1 (white).
type Style struct {
	Background float64
	TopFill    float64 // region above the line
	BottomFill float64 // region below the line
	Line       float64
	Dots       float64
	Reference  float64 // reference lines and frame
	Average    float64
	Labels     float64 // axis label text
	Popup      float64 // popup background
	PopupText  float64

	// LineWidth is the stroke width of the chart line.
	LineWidth float64

	// LineCap and LineJoin are used for the chart line.  Reference lines
	// and the average line always use butt caps.
	LineCap  graphics.LineCapStyle
	LineJoin graphics.LineJoinStyle

	// MiterLimit bounds the length of mitered joins, as a multiple of the
	// line width.  Values below 1 select the default of 10.
	MiterLimit float64

	// AverageDash is the dash pattern of the average line.  If empty, the
	// line is solid.
	AverageDash []float64

	// HideDots suppresses the point markers.
	HideDots bool

	// Face is used for label text in image output.
	// Default: basicfont.Face7x13.
	Face font.Face
}

// DefaultStyle returns the style used when no style is given.
func DefaultStyle() *Style {
	return &Style{
		Background:  1,
		TopFill:     1,
		BottomFill:  0.85,
		Line:        0,
		Dots:        0,
		Reference:   0.6,
		Average:     0.4,
		Labels:      0.2,
		Popup:       0.95,
		PopupText:   0,
		LineWidth:   1,
		LineCap:     graphics.LineCapRound,
		LineJoin:    graphics.LineJoinBevel,
		MiterLimit:  defaultMiterLimit,
		AverageDash: []float64{4, 2},
	}
}

func (s *Style) face() font.Face {
	if s.Face != nil {
		return s.Face
	}
	return basicfont.Face7x13
}

func (s *Style) miterLimit() float64 {
	if s.MiterLimit < 1 {
		return defaultMiterLimit
	}
	return s.MiterLimit
}

func grayColor(g float64) color.Gray {
	g = min(max(g, 0), 1)
	return color.Gray{Y: uint8(math.Round(g * 255))}
}

// circleKappa is the distance of the control points from the end points
// of a cubic Bézier approximating a quarter circle of radius 1.
const circleKappa = 0.5522847498

// circleCubics returns the four cubic Bézier segments of a circle, as a
// start point followed by three points per segment.  The circle is
// traversed in the direction of decreasing angle.
func circleCubics(cx, cy, r float64) [13][2]float64 {
	k := circleKappa * r
	return [13][2]float64{
		{cx + r, cy},
		{cx + r, cy - k}, {cx + k, cy - r}, {cx, cy - r},
		{cx - k, cy - r}, {cx - r, cy - k}, {cx - r, cy},
		{cx - r, cy + k}, {cx - k, cy + r}, {cx, cy + r},
		{cx + k, cy + r}, {cx + r, cy + k}, {cx + r, cy},
	}
}
