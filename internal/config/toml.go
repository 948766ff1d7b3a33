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

// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/linechart"
)

// FileConfig represents the TOML configuration file.  All fields are
// optional; unset fields keep the command line defaults.
type FileConfig struct {
	Chart   ChartConfig   `toml:"chart"`
	XAxis   XAxisConfig   `toml:"x_axis"`
	YAxis   YAxisConfig   `toml:"y_axis"`
	Average AverageConfig `toml:"average"`
	Popup   PopupConfig   `toml:"popup"`
	Output  OutputConfig  `toml:"output"`
}

// ChartConfig maps general chart settings.
type ChartConfig struct {
	Width       *float64 `toml:"width"`
	Height      *float64 `toml:"height"`
	Curve       *string  `toml:"curve"` // "straight", "quadratic" or "dots"
	NullGaps    *bool    `toml:"null-gaps"`
	Min         *float64 `toml:"min"`
	Max         *float64 `toml:"max"`
	Padding     *float64 `toml:"padding"`
	NoDataText  *string  `toml:"no-data-text"`
	DotDiameter *float64 `toml:"dot-diameter"`
	Reference   *bool    `toml:"reference"`
}

// XAxisConfig maps X-axis settings.
type XAxisConfig struct {
	Enabled   *bool `toml:"enabled"`
	Gaps      *int  `toml:"gaps"`
	BaseIndex *int  `toml:"base-index"`
	Increment *int  `toml:"increment"`
}

// YAxisConfig maps Y-axis settings.
type YAxisConfig struct {
	Enabled   *bool    `toml:"enabled"`
	Right     *bool    `toml:"right"`
	Labels    *int     `toml:"labels"`
	BaseValue *float64 `toml:"base-value"`
	Increment *float64 `toml:"increment"`
	Prefix    *string  `toml:"prefix"`
	Suffix    *string  `toml:"suffix"`
	Format    *string  `toml:"format"`
}

// AverageConfig maps average line settings.
type AverageConfig struct {
	Enabled *bool    `toml:"enabled"`
	Value   *float64 `toml:"value"`
	Title   *string  `toml:"title"`
}

// PopupConfig maps popup settings.
type PopupConfig struct {
	Persistent *bool   `toml:"persistent"`
	Prefix     *string `toml:"prefix"`
	Suffix     *string `toml:"suffix"`
}

// OutputConfig maps output settings.
type OutputConfig struct {
	Font     *string  `toml:"font"` // "basic" or "goregular"
	FontSize *float64 `toml:"font-size"`
}

// ErrInvalid indicates a setting with an unsupported value.
var ErrInvalid = errors.New("invalid setting")

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ParseCurve converts a curve name into a curve mode.
func ParseCurve(name string) (linechart.CurveMode, error) {
	for _, m := range []linechart.CurveMode{linechart.Straight, linechart.Quadratic, linechart.DotsOnly} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("curve %q: %w", name, ErrInvalid)
}

// Apply copies the layout settings of the file into opt.  Settings which
// are not present in the file leave opt unchanged.
func (c *FileConfig) Apply(opt *linechart.Options) error {
	ch := &c.Chart
	if ch.Curve != nil {
		m, err := ParseCurve(*ch.Curve)
		if err != nil {
			return err
		}
		opt.Curve = m
	}
	setBool(&opt.NullGaps, ch.NullGaps)
	if ch.Min != nil {
		opt.Min = ch.Min
	}
	if ch.Max != nil {
		opt.Max = ch.Max
	}
	if ch.Padding != nil {
		opt.Padding = ch.Padding
	}
	setString(&opt.NoDataText, ch.NoDataText)
	setFloat(&opt.DotDiameter, ch.DotDiameter)
	if ch.Reference != nil && *ch.Reference {
		opt.Reference.XLines = true
		opt.Reference.YLines = true
		opt.Reference.Frame = true
	}

	x := &c.XAxis
	setBool(&opt.XAxis.Enabled, x.Enabled)
	if x.Gaps != nil {
		opt.XAxis.Gaps = x.Gaps
	}
	if x.BaseIndex != nil {
		opt.XAxis.BaseIndex = x.BaseIndex
	}
	if x.Increment != nil {
		opt.XAxis.Increment = x.Increment
	}

	y := &c.YAxis
	setBool(&opt.YAxis.Enabled, y.Enabled)
	if y.Right != nil {
		opt.YAxis.Side = linechart.Left
		if *y.Right {
			opt.YAxis.Side = linechart.Right
		}
	}
	if y.Labels != nil {
		opt.YAxis.Labels = y.Labels
	}
	if y.BaseValue != nil {
		opt.YAxis.BaseValue = y.BaseValue
	}
	if y.Increment != nil {
		opt.YAxis.Increment = y.Increment
	}
	setString(&opt.YAxis.Prefix, y.Prefix)
	setString(&opt.YAxis.Suffix, y.Suffix)
	setString(&opt.YAxis.Format, y.Format)

	a := &c.Average
	setBool(&opt.Average.Enabled, a.Enabled)
	if a.Value != nil {
		opt.Average.Value = a.Value
	}
	setString(&opt.Average.Title, a.Title)

	p := &c.Popup
	setBool(&opt.Popup.Persistent, p.Persistent)
	setString(&opt.Popup.Prefix, p.Prefix)
	setString(&opt.Popup.Suffix, p.Suffix)
	return nil
}

func setBool(target, value *bool) {
	if value != nil {
		*target = *value
	}
}

func setString(target, value *string) {
	if value != nil {
		*target = *value
	}
}

func setFloat(target, value *float64) {
	if value != nil {
		*target = *value
	}
}
