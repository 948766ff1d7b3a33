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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linechart/calc"
)

// State describes which kind of chart a layout pass produced.
type State int

// The possible layout states.
const (
	// StateNoData means that the data source has no present values.  Only
	// NoDataText is set.
	StateNoData State = iota

	// StateSinglePoint means that the data source has exactly one point.
	// It is shown as a single dot in the centre of the view.
	StateSinglePoint

	// StateChart is a complete chart.
	StateChart
)

func (s State) String() string {
	switch s {
	case StateNoData:
		return "no-data"
	case StateSinglePoint:
		return "single-point"
	case StateChart:
		return "chart"
	default:
		return "unknown"
	}
}

// Point is a vertex of the chart line.
type Point struct {
	Index int      // data index
	Pos   vec.Vec2 // position in view coordinates

	// Missing is set if the data source has no value at Index.
	Missing bool

	// Interpolated is set if Pos was extrapolated from neighbouring
	// values.  Missing points which are not interpolated interrupt the
	// line; their Pos.Y is zero.
	Interpolated bool
}

// Break reports whether the line is interrupted at p.
func (p Point) Break() bool {
	return p.Missing && !p.Interpolated
}

// Label is a text label placed on one of the axes.
type Label struct {
	Text    string
	Index   int     // data index for X-axis labels, -1 for Y-axis labels
	Value   float64 // label value for Y-axis labels
	Frame   rect.Rect
	Visible bool // false if suppressed because of overlap

	// Average marks the label of the average line.
	Average bool
}

// Center returns the centre of the label frame.
func (l *Label) Center() vec.Vec2 {
	return vec.Vec2{
		X: (l.Frame.LLx + l.Frame.URx) / 2,
		Y: (l.Frame.LLy + l.Frame.URy) / 2,
	}
}

// Layout is the result of one layout pass.  All coordinates are view
// coordinates: the origin is the top-left corner and y grows downwards.
type Layout struct {
	State      State
	NoDataText string

	Width, Height float64

	// Min and Max are the value range mapped onto the graph height, and
	// Average is the (possibly overridden) mean of the present values.
	// Average is NaN if there are no present values.
	Min, Max, Average float64

	// Padding is the vertical space left free around the value range.
	Padding float64

	// YLabelOffset is the width of the gutter reserved for Y-axis labels.
	YLabelOffset float64

	// Graph is the area available for the line.
	Graph rect.Rect

	// XAxisArea and YAxisArea are the backgrounds of the axes.  They are
	// zero if the corresponding axis is disabled.
	XAxisArea, YAxisArea rect.Rect

	XLabels []Label
	YLabels []Label // the average line label, if any, is last

	// Points gives the vertices of the line, in order.  Interior missing
	// values are omitted unless they interrupt the line.
	Points []Point

	// Dots has one entry for every present value.
	Dots []Point

	// DotDiameter is the size of the point markers.
	DotDiameter float64

	Line       path.Data // the chart line; empty for DotsOnly
	FillTop    path.Data // region between the line and the top edge
	FillBottom path.Data // region between the line and the bottom edge

	// AverageY is the vertical position of the average line, or NaN if
	// the average line is disabled.
	AverageY    float64
	AverageLine path.Data

	XReference path.Data // vertical reference lines
	YReference path.Data // horizontal reference lines
	Frame      path.Data // reference frame along the graph edges

	// ReferenceWidth is the stroke width for the reference paths.
	ReferenceWidth float64

	// Popups holds the persistent popups, one per dot when enabled.
	Popups []Popup

	values Series
	opt    *Options
	m      TextMeasurer
}

// Engine computes chart layouts.  Create one Engine per chart and reuse it
// for every layout pass: internal buffers grow as needed but never shrink.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	Options Options

	layout Layout
	values Series
}

// NewEngine returns an Engine using the given options.
func NewEngine(opt Options) *Engine {
	return &Engine{Options: opt}
}

// Compute is a convenience wrapper which lays out a chart with a new
// Engine.
func Compute(src DataSource, opt Options, width, height float64) *Layout {
	return NewEngine(opt).Layout(src, width, height)
}

// Layout lays out the chart for a view of the given size.  The returned
// Layout is owned by the Engine and remains valid until the next call to
// Layout.
func (e *Engine) Layout(src DataSource, width, height float64) *Layout {
	opt := &e.Options
	l := &e.layout
	e.reset(width, height)
	l.opt = opt
	l.m = opt.measurer()
	l.DotDiameter = opt.dotDiameter()
	l.ReferenceWidth = opt.refWidth()
	log := opt.Logger

	n := src.NumPoints()
	e.values = e.values[:0]
	present := 0
	for i := range n {
		v := src.ValueAt(i)
		if !v.IsMissing() {
			present++
		}
		e.values = append(e.values, v)
	}
	l.values = e.values

	if present == 0 {
		l.State = StateNoData
		l.NoDataText = opt.noDataText()
		if log != nil {
			log.Debug("data source contains no data", "points", n)
		}
		return l
	}

	l.resolveRange()

	if n == 1 {
		l.State = StateSinglePoint
		p := Point{Index: 0, Pos: vec.Vec2{X: width / 2, Y: height / 2}}
		l.Points = append(l.Points, p)
		l.Dots = append(l.Dots, p)
		l.Graph = rect.Rect{URx: width, URy: height}
		if log != nil {
			log.Debug("single point layout")
		}
		return l
	}
	l.State = StateChart

	// The order of the following steps matters: the gutter width
	// determines the x positions, and the Y-axis labels are positioned
	// using the value transform of the dots.
	l.YLabelOffset = l.yLabelOffset()
	l.setAreas(opt)
	if opt.XAxis.Enabled {
		l.layoutXAxis(src)
	}
	l.layoutDots()
	l.buildLine()
	if opt.YAxis.Enabled {
		l.layoutYAxis()
	}
	l.buildReference()
	if opt.Popup.Persistent {
		l.layoutPersistentPopups()
	}
	return l
}

func (e *Engine) reset(width, height float64) {
	l := &e.layout
	*l = Layout{
		Width:    width,
		Height:   height,
		AverageY: math.NaN(),
		Average:  math.NaN(),

		XLabels:     l.XLabels[:0],
		YLabels:     l.YLabels[:0],
		Points:      l.Points[:0],
		Dots:        l.Dots[:0],
		Popups:      l.Popups[:0],
		Line:        resetPath(l.Line),
		FillTop:     resetPath(l.FillTop),
		FillBottom:  resetPath(l.FillBottom),
		AverageLine: resetPath(l.AverageLine),
		XReference:  resetPath(l.XReference),
		YReference:  resetPath(l.YReference),
		Frame:       resetPath(l.Frame),
	}
}

func resetPath(p path.Data) path.Data {
	return path.Data{Cmds: p.Cmds[:0], Coords: p.Coords[:0]}
}

// resolveRange determines Min, Max, Average and Padding.
func (l *Layout) resolveRange() {
	opt := l.opt
	xs := l.values.Present()
	l.Min = calc.Min(xs)
	l.Max = calc.Max(xs)
	l.Average = calc.Mean(xs)
	if opt.Min != nil {
		l.Min = *opt.Min
	}
	if opt.Max != nil {
		l.Max = *opt.Max
	}
	if opt.Average.Value != nil {
		l.Average = *opt.Average.Value
	}

	l.Padding = min(maxPadding, l.Height/2)
	if opt.Padding != nil {
		l.Padding = *opt.Padding
	}
}

// setAreas computes the graph area and the axis backgrounds.
func (l *Layout) setAreas(opt *Options) {
	fontSize := l.m.FontSize()
	xAxisHeight := 0.0
	if opt.XAxis.Enabled {
		xAxisHeight = fontSize + 8
	}

	off := l.YLabelOffset
	x0 := off
	if opt.YAxis.Side == Right {
		x0 = 0
	}
	l.Graph = rect.Rect{
		LLx: x0,
		LLy: 0,
		URx: x0 + l.Width - off,
		URy: l.Height - xAxisHeight,
	}

	if opt.XAxis.Enabled {
		l.XAxisArea = rect.Rect{
			LLx: x0,
			LLy: l.Height - xAxisHeight,
			URx: x0 + l.Width - off + 1,
			URy: l.Height,
		}
	}
	if opt.YAxis.Enabled {
		yx := 0.0
		if opt.YAxis.Side == Right {
			yx = l.Width - off - 1
		}
		l.YAxisArea = rect.Rect{LLx: yx, LLy: 0, URx: yx + off, URy: l.Height}
	}
}

// XPos returns the horizontal position of data index i.
func (l *Layout) XPos(i int) float64 {
	n := len(l.values)
	if n <= 1 {
		return l.Width / 2
	}
	x := (l.Width - l.YLabelOffset) / float64(n-1) * float64(i)
	if l.opt.YAxis.Side == Left {
		x += l.YLabelOffset
	}
	return x
}

// YPos maps a data value to a vertical position.  The minimum of the
// value range maps to Height-Padding/2 and the maximum to Padding/2.  If
// the value range is empty, every value maps to the vertical centre.
func (l *Layout) YPos(v float64) float64 {
	if l.Min >= l.Max {
		return l.Height / 2
	}
	pct := (v - l.Min) / (l.Max - l.Min)
	top := l.Height - l.Padding/2
	size := l.Height - l.Padding
	return top - pct*size
}

// NumPoints returns the number of data points of the layout, including
// missing values.
func (l *Layout) NumPoints() int {
	return len(l.values)
}

// ValueAt returns the data value at index i.
func (l *Layout) ValueAt(i int) Value {
	return l.values[i]
}

// layoutDots places one dot per present value.
func (l *Layout) layoutDots() {
	for i, v := range l.values {
		y, ok := v.Get()
		if !ok {
			continue
		}
		l.Dots = append(l.Dots, Point{
			Index: i,
			Pos:   vec.Vec2{X: l.XPos(i), Y: l.YPos(y)},
		})
	}
}

// DotFrame returns the bounding box of the marker for a dot.
func (l *Layout) DotFrame(p Point) rect.Rect {
	r := l.DotDiameter / 2
	return rect.Rect{LLx: p.Pos.X - r, LLy: p.Pos.Y - r, URx: p.Pos.X + r, URy: p.Pos.Y + r}
}
