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
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// TextMeasurer determines the size of label text.  Text may contain
// newlines; the width is that of the widest line.
type TextMeasurer interface {
	// Size returns the width and height of text in pixels.
	Size(text string) (w, h float64)

	// FontSize returns the nominal size of the label font.  Axis band
	// heights are derived from this value.
	FontSize() float64
}

// FaceMeasurer measures text using a font face.
type FaceMeasurer struct {
	Face font.Face

	// Points is the nominal font size.  If zero, the line height of the
	// face is used.
	Points float64
}

// Size implements [TextMeasurer].
func (m *FaceMeasurer) Size(text string) (w, h float64) {
	lineHeight := float64(m.Face.Metrics().Height) / 64
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		adv := font.MeasureString(m.Face, line)
		w = max(w, float64(adv)/64)
	}
	return w, lineHeight * float64(len(lines))
}

// FontSize implements [TextMeasurer].
func (m *FaceMeasurer) FontSize() float64 {
	if m.Points > 0 {
		return m.Points
	}
	return float64(m.Face.Metrics().Height) / 64
}

// DefaultMeasurer returns a measurer for the 7x13 bitmap font from
// golang.org/x/image/font/basicfont.
func DefaultMeasurer() *FaceMeasurer {
	return &FaceMeasurer{Face: basicfont.Face7x13, Points: 13}
}

// GoRegular returns a measurer for the Go Regular font at the given size
// (72 dpi, so that one point is one pixel).
func GoRegular(size float64) (*FaceMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{Face: face, Points: size}, nil
}

// MonospaceMeasurer measures text on a grid of character cells.  East Asian
// wide characters occupy two cells.
type MonospaceMeasurer struct {
	CellWidth  float64 // width of one cell
	LineHeight float64 // height of one line
	Points     float64 // nominal font size; LineHeight if zero
}

// Size implements [TextMeasurer].
func (m *MonospaceMeasurer) Size(text string) (w, h float64) {
	lines := strings.Split(text, "\n")
	cells := 0
	for _, line := range lines {
		cells = max(cells, runewidth.StringWidth(line))
	}
	return float64(cells) * m.CellWidth, float64(len(lines)) * m.LineHeight
}

// FontSize implements [TextMeasurer].
func (m *MonospaceMeasurer) FontSize() float64 {
	if m.Points > 0 {
		return m.Points
	}
	return m.LineHeight
}
