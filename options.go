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
	"log/slog"
)

// CurveMode selects how consecutive points are connected.
type CurveMode int

// The available curve modes.
const (
	// Straight connects points with line segments.
	Straight CurveMode = iota

	// Quadratic connects each pair of points with two quadratic Bézier
	// curves meeting at the midpoint, giving a smooth S-shaped curve.
	Quadratic

	// DotsOnly draws no connecting line.  Fill regions still use
	// straight segments.
	DotsOnly
)

func (m CurveMode) String() string {
	switch m {
	case Straight:
		return "straight"
	case Quadratic:
		return "quadratic"
	case DotsOnly:
		return "dots"
	default:
		return "unknown"
	}
}

// Side is the horizontal position of the Y axis.
type Side int

// The possible positions of the Y axis.
const (
	Left Side = iota
	Right
)

// Edges is a set of edges of the graph area.
type Edges uint8

// Individual edges.
const (
	EdgeLeft Edges = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Options control the layout of a chart.  Pointer fields are optional
// overrides; nil selects the behaviour described for the field.
type Options struct {
	// Curve selects how the line connects the points.
	Curve CurveMode

	// NullGaps makes missing values interrupt the line.  If unset,
	// interior missing values are skipped, and leading and trailing
	// missing values are extrapolated from the two nearest present values.
	NullGaps bool

	// Min and Max override the value range.  By default the smallest and
	// largest present values are used.
	Min, Max *float64

	// Padding overrides the vertical padding.  By default this is
	// min(90, height/2).
	Padding *float64

	// NoDataText is reported for charts without data.  Default: "No Data".
	NoDataText string

	// DotDiameter is the size of the point markers.  Default: 10.
	DotDiameter float64

	// Measurer determines the size of label text.
	// Default: [DefaultMeasurer].
	Measurer TextMeasurer

	XAxis     XAxisOptions
	YAxis     YAxisOptions
	Average   AverageOptions
	Popup     PopupOptions
	Reference ReferenceOptions

	// Logger receives debug messages about degenerate input and suppressed
	// axis elements.  If nil, nothing is logged.
	Logger *slog.Logger
}

// XAxisOptions configure the X-axis labels.
//
// Label indices are chosen with the following precedence: Indices if
// non-nil, then BaseIndex together with Increment if both are set, then
// Gaps.  Without any of these every index gets a label.
type XAxisOptions struct {
	Enabled bool

	// Indices lists the data indices which get a label.
	Indices []int

	// BaseIndex and Increment select the indices BaseIndex,
	// BaseIndex+Increment, ...  Both must be set to take effect.  An
	// increment below 1 is replaced by 1.
	BaseIndex, Increment *int

	// Gaps is the number of labels to skip between two shown labels.
	// The shown labels are centred on the axis.
	Gaps *int
}

// YAxisOptions configure the Y-axis labels.
type YAxisOptions struct {
	Enabled bool

	// Side selects where the label gutter is reserved.
	Side Side

	// Labels is the number of evenly spaced labels.  Default: 3.
	// A value of 0 or less disables the labels.
	Labels *int

	// BaseValue and Increment place labels at BaseValue,
	// BaseValue+Increment, ... up to the maximum value.  Both must be set
	// to take effect, and they take priority over Labels unless Labels is
	// 1.  An increment of zero or less is replaced by 1.  If more than 100
	// labels would result, no Y-axis labels are produced.
	BaseValue, Increment *float64

	// Prefix and Suffix surround the formatted label value.
	Prefix, Suffix string

	// Format is the fmt verb used for label values.  Default: "%.0f".
	Format string
}

// AverageOptions configure the average line.
type AverageOptions struct {
	Enabled bool

	// Value overrides the average.  By default the mean of the present
	// values is used.
	Value *float64

	// Title is shown as a Y-axis label at the height of the line.
	Title string
}

// PopupOptions configure the value popups.
type PopupOptions struct {
	// Prefix and Suffix surround the formatted value.
	Prefix, Suffix string

	// Text, if set, supplies the popup text for an index.  If it returns
	// false, the formatted value is used.
	Text func(i int) (string, bool)

	// Persistent lays out a popup for every point.
	Persistent bool

	// AlwaysDisplay, if set, restricts persistent popups to the indices
	// for which it returns true.
	AlwaysDisplay func(i int) bool
}

// ReferenceOptions configure the reference lines drawn behind the chart.
type ReferenceOptions struct {
	// Width is the stroke width of reference lines.  Default: 0.5.
	Width float64

	// XLines draws a vertical line at every X-axis label.
	XLines bool

	// YLines draws a horizontal line at every visible Y-axis label.
	YLines bool

	// Frame draws lines along the edges of the graph area.
	Frame bool

	// FrameEdges selects the frame edges.  Default: left and bottom.
	FrameEdges Edges
}

// Default values for layout parameters.
const (
	defaultNoDataText   = "No Data"
	defaultDotDiameter  = 10.0
	defaultYLabels      = 3
	defaultValueFormat  = "%.0f"
	defaultRefWidth     = 0.5
	defaultAverageWidth = 10.0 // gutter width reserved for an untitled average line

	// maxPadding is the upper bound for the default vertical padding.
	maxPadding = 90.0

	// maxYLabels is the largest number of Y-axis labels produced from a
	// base value and increment.
	maxYLabels = 100
)

func (o *Options) measurer() TextMeasurer {
	if o.Measurer != nil {
		return o.Measurer
	}
	return DefaultMeasurer()
}

func (o *Options) valueFormat() string {
	if o.YAxis.Format != "" {
		return o.YAxis.Format
	}
	return defaultValueFormat
}

func (o *Options) dotDiameter() float64 {
	if o.DotDiameter > 0 {
		return o.DotDiameter
	}
	return defaultDotDiameter
}

func (o *Options) noDataText() string {
	if o.NoDataText != "" {
		return o.NoDataText
	}
	return defaultNoDataText
}

func (o *Options) refWidth() float64 {
	if o.Reference.Width > 0 {
		return o.Reference.Width
	}
	return defaultRefWidth
}

func (o *Options) frameEdges() Edges {
	if o.Reference.FrameEdges != 0 {
		return o.Reference.FrameEdges
	}
	return EdgeLeft | EdgeBottom
}
