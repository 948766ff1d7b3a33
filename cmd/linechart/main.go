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

// Package main provides the linechart command, which lays out line charts
// from CSV, XLSX or SQLite data and renders them as PDF, PNG or terminal
// plots.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"seehuhn.de/go/linechart"
	"seehuhn.de/go/linechart/internal/config"
	"seehuhn.de/go/linechart/internal/source"
)

const (
	defaultWidth    = 640
	defaultHeight   = 360
	defaultCurve    = "straight"
	defaultFormat   = "%.0f"
	defaultFontSize = 13
	defaultFont     = "basic"
	defaultPlotRows = 16
)

var (
	inCSV      string
	inXLSX     string
	inSheet    string
	inSQLite   string
	inQuery    string
	inColumn   string
	inLabels   string
	configPath string
	verbose    bool

	chartWidth    float64
	chartHeight   float64
	chartCurve    string
	chartNullGaps bool
	chartXAxis    bool
	chartYAxis    bool
	chartYRight   bool
	chartAverage  bool
	chartAvgTitle string
	chartRefLines bool
	chartPopups   bool
	chartFormat   string

	renderOut      string
	renderFont     string
	renderFontSize float64
	renderWatch    bool

	statsScale float64

	plotRows  int
	plotWatch bool
)

var errNoInput = errors.New("only one of --csv, --xlsx and --sqlite may be given")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linechart",
		Short:         "Line chart layout and rendering",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&inCSV, "csv", "", "read data from a CSV file (default: stdin)")
	flags.StringVar(&inXLSX, "xlsx", "", "read data from an XLSX workbook")
	flags.StringVar(&inSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	flags.StringVar(&inSQLite, "sqlite", "", "read data from a SQLite database")
	flags.StringVar(&inQuery, "query", "", "SQL query returning a value and an optional label column")
	flags.StringVar(&inColumn, "column", "", "value column, by header name or 1-based number")
	flags.StringVar(&inLabels, "labels", "", "label column, by header name or 1-based number")
	flags.StringVar(&configPath, "config", config.DefaultConfigPath(), "config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log layout decisions to stderr")

	flags.Float64Var(&chartWidth, "width", defaultWidth, "view width")
	flags.Float64Var(&chartHeight, "height", defaultHeight, "view height")
	flags.StringVar(&chartCurve, "curve", defaultCurve, "curve mode: straight, quadratic or dots")
	flags.BoolVar(&chartNullGaps, "null-gaps", false, "interrupt the line at missing values")
	flags.BoolVar(&chartXAxis, "x-axis", false, "show X-axis labels")
	flags.BoolVar(&chartYAxis, "y-axis", false, "show Y-axis labels")
	flags.BoolVar(&chartYRight, "y-right", false, "place the Y-axis on the right")
	flags.BoolVar(&chartAverage, "average", false, "draw the average line")
	flags.StringVar(&chartAvgTitle, "average-title", "", "Y-axis label of the average line")
	flags.BoolVar(&chartRefLines, "reference", false, "draw reference lines and frame")
	flags.BoolVar(&chartPopups, "popups", false, "show a popup for every point")
	flags.StringVar(&chartFormat, "format", defaultFormat, "format of Y-axis label values")

	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newTouchCmd())
	rootCmd.AddCommand(newPlotCmd())

	return rootCmd
}

// chart holds the loaded data and merged settings for one invocation.
type chart struct {
	cfg    config.FileConfig
	opt    linechart.Options
	data   *linechart.Labeled
	width  float64
	height float64
	log    *slog.Logger
}

// layout computes the chart at its configured size.
func (c *chart) layout() *linechart.Layout {
	return linechart.Compute(c.data, c.opt, c.width, c.height)
}

// reload reads the data source again.
func (c *chart) reload(ctx context.Context) error {
	data, err := loadData(ctx)
	if err != nil {
		return err
	}
	c.data = data
	return nil
}

// loadChart merges the config file with the command line flags and
// reads the data.  Flags given on the command line take precedence.
func loadChart(cmd *cobra.Command) (*chart, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug("config loaded", "path", configPath)

	opt := linechart.Options{Logger: log}
	if err := fileCfg.Apply(&opt); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	if err := applyFlags(cmd, &opt); err != nil {
		return nil, err
	}

	applyFloatConfig(cmd, "width", &chartWidth, fileCfg.Chart.Width)
	applyFloatConfig(cmd, "height", &chartHeight, fileCfg.Chart.Height)
	if chartWidth <= 0 || chartHeight <= 0 {
		return nil, fmt.Errorf("invalid chart size %gx%g", chartWidth, chartHeight)
	}

	c := &chart{
		cfg:    fileCfg,
		opt:    opt,
		width:  chartWidth,
		height: chartHeight,
		log:    log,
	}
	if err := c.reload(cmd.Context()); err != nil {
		return nil, err
	}
	log.Debug("data loaded", "points", c.data.NumPoints())
	return c, nil
}

// applyFlags copies the layout flags which were given on the command line
// into opt.
func applyFlags(cmd *cobra.Command, opt *linechart.Options) error {
	flags := cmd.Flags()
	if flags.Changed("curve") {
		m, err := config.ParseCurve(chartCurve)
		if err != nil {
			return err
		}
		opt.Curve = m
	}
	applyBoolFlag(cmd, "null-gaps", &opt.NullGaps, chartNullGaps)
	applyBoolFlag(cmd, "x-axis", &opt.XAxis.Enabled, chartXAxis)
	applyBoolFlag(cmd, "y-axis", &opt.YAxis.Enabled, chartYAxis)
	if flags.Changed("y-right") {
		opt.YAxis.Side = linechart.Left
		if chartYRight {
			opt.YAxis.Side = linechart.Right
		}
	}
	applyBoolFlag(cmd, "average", &opt.Average.Enabled, chartAverage)
	if flags.Changed("average-title") {
		opt.Average.Title = chartAvgTitle
	}
	if flags.Changed("reference") {
		opt.Reference.XLines = chartRefLines
		opt.Reference.YLines = chartRefLines
		opt.Reference.Frame = chartRefLines
	}
	applyBoolFlag(cmd, "popups", &opt.Popup.Persistent, chartPopups)
	if flags.Changed("format") {
		opt.YAxis.Format = chartFormat
	}
	return nil
}

func loadData(ctx context.Context) (*linechart.Labeled, error) {
	n := 0
	for _, s := range []string{inCSV, inXLSX, inSQLite} {
		if s != "" {
			n++
		}
	}
	if n > 1 {
		return nil, errNoInput
	}

	switch {
	case inXLSX != "":
		return source.ReadXLSX(inXLSX, inSheet, inColumn, inLabels)
	case inSQLite != "":
		if inQuery == "" {
			return nil, errors.New("--sqlite requires --query")
		}
		return source.QuerySQLite(ctx, inSQLite, inQuery)
	case inCSV != "":
		f, err := os.Open(inCSV)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return source.ReadCSV(f, inCSV, inColumn, inLabels)
	default:
		return source.ReadCSV(os.Stdin, "stdin", inColumn, inLabels)
	}
}

// watchedFile returns the input file to watch for changes, if any.
func watchedFile() (string, error) {
	switch {
	case inCSV != "":
		return inCSV, nil
	case inXLSX != "":
		return inXLSX, nil
	case inSQLite != "":
		return inSQLite, nil
	default:
		return "", errors.New("--watch requires an input file")
	}
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolFlag(cmd *cobra.Command, name string, target *bool, value bool) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func closeWith(err *error, c io.Closer) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
