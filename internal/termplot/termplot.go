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

// Package termplot draws a chart layout on a terminal using braille
// characters.  Each character cell holds a 2x4 grid of dots, and layouts
// for the terminal are computed in dot units.
package termplot

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linechart"
)

// Size of a character cell in dots.
const (
	DotsX = 2
	DotsY = 4
)

const (
	brailleBase         = 0x2800
	terminalWidthBackup = 80
)

// brailleBits gives the bit of the braille pattern for the dot at
// column x and row y of a cell.
var brailleBits = [DotsX][DotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// kind records what occupies a cell, for colouring.
type kind uint8

const (
	kindNone kind = iota
	kindReference
	kindAverage
	kindLine
	kindDot
	kindText
)

var styles = map[kind]lipgloss.Style{
	kindReference: lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
	kindAverage:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	kindLine:      lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
	kindDot:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	kindText:      lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")),
}

// Measurer returns a text measurer in dot units, for a terminal with one
// character per cell.
func Measurer() *linechart.MonospaceMeasurer {
	return &linechart.MonospaceMeasurer{CellWidth: DotsX, LineHeight: DotsY}
}

// ViewSize returns the layout size in dots for a plot of cols x rows
// character cells.
func ViewSize(cols, rows int) (w, h float64) {
	return float64(cols * DotsX), float64(rows * DotsY)
}

// TerminalWidth returns the width of the terminal connected to stdout, or
// a fallback of 80 columns.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// ShouldUseColor reports whether output to w should be coloured.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Canvas is a grid of character cells.
type Canvas struct {
	cols, rows int
	dots       []uint8
	text       []rune
	kinds      []kind
}

// NewCanvas allocates an empty canvas.
func NewCanvas(cols, rows int) *Canvas {
	n := cols * rows
	return &Canvas{
		cols:  cols,
		rows:  rows,
		dots:  make([]uint8, n),
		text:  make([]rune, n),
		kinds: make([]kind, n),
	}
}

func (c *Canvas) setDot(x, y int, k kind) {
	if x < 0 || y < 0 || x >= c.cols*DotsX || y >= c.rows*DotsY {
		return
	}
	idx := (y/DotsY)*c.cols + x/DotsX
	c.dots[idx] |= brailleBits[x%DotsX][y%DotsY]
	c.kinds[idx] = max(c.kinds[idx], k)
}

// plot sets the dot containing the view point p.  Points on the right and
// bottom edge of the view go to the last dot.
func (c *Canvas) plot(p vec.Vec2, k kind) {
	x := min(int(math.Floor(p.X)), c.cols*DotsX-1)
	y := min(int(math.Floor(p.Y)), c.rows*DotsY-1)
	c.setDot(x, y, k)
}

// stroke sets the dots along the flattened path.  If every is positive,
// only every n-th dot is set, which gives a dotted line.
func (c *Canvas) stroke(p *path.Data, k kind, every int) {
	step := 0
	linechart.Flatten(p.Iter(), 0.5, func(from, to vec.Vec2) {
		d := to.Sub(from)
		n := max(int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y)))), 1)
		for i := 0; i <= n; i++ {
			step++
			if every > 0 && step%every != 0 {
				continue
			}
			c.plot(from.Add(d.Mul(float64(i)/float64(n))), k)
		}
	})
}

// write places s at the cell containing the view point p.
func (c *Canvas) write(p vec.Vec2, s string) {
	row := int(math.Floor(p.Y / DotsY))
	col := int(math.Floor(p.X / DotsX))
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			break
		}
		if col >= 0 {
			idx := row*c.cols + col
			c.text[idx] = r
			c.kinds[idx] = kindText
		}
		col++
	}
}

// Draw adds the layout to the canvas.  The layout must have been
// computed for the view size of the canvas, with [Measurer].
func (c *Canvas) Draw(l *linechart.Layout) {
	switch l.State {
	case linechart.StateNoData:
		w, h := float64(c.cols*DotsX), float64(c.rows*DotsY)
		x := w/2 - float64(len([]rune(l.NoDataText))*DotsX)/2
		c.write(vec.Vec2{X: x, Y: h / 2}, l.NoDataText)
		return
	case linechart.StateChart:
		c.stroke(&l.XReference, kindReference, 2)
		c.stroke(&l.YReference, kindReference, 2)
		c.stroke(&l.Frame, kindReference, 0)
		c.stroke(&l.AverageLine, kindAverage, 3)
		c.stroke(&l.Line, kindLine, 0)
	}

	for _, d := range l.Dots {
		c.plot(d.Pos, kindDot)
	}

	for _, lab := range l.XLabels {
		if lab.Visible {
			c.write(vec.Vec2{X: lab.Frame.LLx, Y: lab.Center().Y}, lab.Text)
		}
	}
	for _, lab := range l.YLabels {
		if lab.Visible {
			c.write(vec.Vec2{X: lab.Frame.LLx, Y: lab.Center().Y}, lab.Text)
		}
	}
	for _, p := range l.Popups {
		if p.Visible {
			c.write(vec.Vec2{X: p.Frame.LLx + 5, Y: (p.Frame.LLy + p.Frame.URy) / 2}, p.Text)
		}
	}
}

// WriteTo writes the canvas, one line per row.  If color is set, cells
// are coloured by their content.
func (c *Canvas) WriteTo(w io.Writer, color bool) error {
	var row strings.Builder
	for y := range c.rows {
		row.Reset()
		for x := range c.cols {
			idx := y*c.cols + x
			ch := c.text[idx]
			if ch == 0 {
				ch = rune(brailleBase + int(c.dots[idx]))
			}
			if color && c.kinds[idx] != kindNone {
				row.WriteString(styles[c.kinds[idx]].Render(string(ch)))
			} else {
				row.WriteRune(ch)
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row.String(), string(rune(brailleBase)))); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the layout on a canvas of cols x rows cells and writes it
// to w.
func Render(w io.Writer, l *linechart.Layout, cols, rows int, color bool) error {
	c := NewCanvas(cols, rows)
	c.Draw(l)
	return c.WriteTo(w, color)
}
