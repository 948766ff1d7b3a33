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
	"encoding/json"
	"io"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linechart"
)

// JSONLayout is the JSON representation of a layout.
type JSONLayout struct {
	State      string        `json:"state"`
	NoDataText string        `json:"no_data_text,omitempty"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Min        float64       `json:"min"`
	Max        float64       `json:"max"`
	Average    *float64      `json:"average,omitempty"`
	Graph      []float64     `json:"graph"`
	XLabels    []JSONLabel   `json:"x_labels,omitempty"`
	YLabels    []JSONLabel   `json:"y_labels,omitempty"`
	Dots       [][]float64   `json:"dots,omitempty"`
	Line       []JSONSegment `json:"line,omitempty"`
	FillTop    []JSONSegment `json:"fill_top,omitempty"`
	FillBottom []JSONSegment `json:"fill_bottom,omitempty"`
	AverageY   *float64      `json:"average_y,omitempty"`
	Reference  []JSONSegment `json:"reference,omitempty"`
	Popups     []JSONPopup   `json:"popups,omitempty"`
}

// JSONLabel describes a visible axis label.
type JSONLabel struct {
	Text    string    `json:"text"`
	Index   int       `json:"index"`
	Frame   []float64 `json:"frame"`
	Average bool      `json:"average,omitempty"`
}

// JSONPopup describes a visible popup.
type JSONPopup struct {
	Index int       `json:"index"`
	Text  string    `json:"text"`
	Frame []float64 `json:"frame"`
}

// JSONSegment is one path command with its points.
type JSONSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// ToJSON converts a layout into its JSON representation.  Hidden labels
// and popups are omitted.
func ToJSON(l *linechart.Layout) JSONLayout {
	j := JSONLayout{
		State:      l.State.String(),
		NoDataText: l.NoDataText,
		Width:      l.Width,
		Height:     l.Height,
	}
	if l.State == linechart.StateNoData {
		return j
	}

	j.Min, j.Max = l.Min, l.Max
	j.Average = finite(l.Average)
	j.AverageY = finite(l.AverageY)
	j.Graph = rectToJSON(l.Graph)
	for _, lab := range l.XLabels {
		if lab.Visible {
			j.XLabels = append(j.XLabels, JSONLabel{Text: lab.Text, Index: lab.Index, Frame: rectToJSON(lab.Frame)})
		}
	}
	for _, lab := range l.YLabels {
		if lab.Visible {
			j.YLabels = append(j.YLabels, JSONLabel{
				Text:    lab.Text,
				Index:   lab.Index,
				Frame:   rectToJSON(lab.Frame),
				Average: lab.Average,
			})
		}
	}
	for _, d := range l.Dots {
		j.Dots = append(j.Dots, []float64{d.Pos.X, d.Pos.Y})
	}
	j.Line = PathToJSON(&l.Line)
	j.FillTop = PathToJSON(&l.FillTop)
	j.FillBottom = PathToJSON(&l.FillBottom)
	j.Reference = append(j.Reference, PathToJSON(&l.XReference)...)
	j.Reference = append(j.Reference, PathToJSON(&l.YReference)...)
	j.Reference = append(j.Reference, PathToJSON(&l.Frame)...)
	for _, p := range l.Popups {
		if p.Visible {
			j.Popups = append(j.Popups, JSONPopup{Index: p.Index, Text: p.Text, Frame: rectToJSON(p.Frame)})
		}
	}
	return j
}

// WriteJSON writes the JSON representation of the layout to w.
func WriteJSON(w io.Writer, l *linechart.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(l))
}

// PathToJSON converts a path into a list of segments.
func PathToJSON(p *path.Data) []JSONSegment {
	var segs []JSONSegment
	for cmd, pts := range p.Iter() {
		seg := JSONSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

func rectToJSON(r rect.Rect) []float64 {
	return []float64{r.LLx, r.LLy, r.URx, r.URy}
}

// finite returns nil for NaN and infinite values, which JSON cannot
// represent.
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}
