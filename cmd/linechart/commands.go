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

package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"seehuhn.de/go/linechart"
	"seehuhn.de/go/linechart/calc"
	"seehuhn.de/go/linechart/export"
	"seehuhn.de/go/linechart/internal/source"
	"seehuhn.de/go/linechart/internal/termplot"
)

const clearScreen = "\x1b[H\x1b[2J"

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the chart layout as JSON",
		Args:  cobra.NoArgs,
		RunE:  runLayoutCmd,
	}
}

func runLayoutCmd(cmd *cobra.Command, _ []string) error {
	c, err := loadChart(cmd)
	if err != nil {
		return err
	}
	return export.WriteJSON(cmd.OutOrStdout(), c.layout())
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to a PDF, PNG or JSON file",
		Args:  cobra.NoArgs,
		RunE:  runRenderCmd,
	}
	cmd.Flags().StringVarP(&renderOut, "out", "o", "chart.pdf", "output file; the extension selects the format")
	cmd.Flags().StringVar(&renderFont, "font", defaultFont, "label font: basic or goregular")
	cmd.Flags().Float64Var(&renderFontSize, "font-size", defaultFontSize, "label font size for goregular")
	cmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "render again when the input file changes")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	c, err := loadChart(cmd)
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "font", &renderFont, c.cfg.Output.Font)
	applyFloatConfig(cmd, "font-size", &renderFontSize, c.cfg.Output.FontSize)

	style := export.DefaultStyle()
	switch renderFont {
	case "basic":
		// the default measurer and face
	case "goregular":
		m, err := linechart.GoRegular(renderFontSize)
		if err != nil {
			return fmt.Errorf("failed to load font: %w", err)
		}
		c.opt.Measurer = m
		style.Face = m.Face
	default:
		return fmt.Errorf("unknown font %q", renderFont)
	}

	if err := render(c, style); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	fname, err := watchedFile()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	c.log.Info("watching for changes", "file", fname)
	return source.Watch(ctx, fname, c.log, func() error {
		if err := c.reload(ctx); err != nil {
			return err
		}
		return render(c, style)
	})
}

// render writes the chart to the output file.  The file extension
// selects the format.
func render(c *chart, style *export.Style) error {
	l := c.layout()
	c.log.Debug("layout computed", "state", l.State, "dots", len(l.Dots))

	switch ext := strings.ToLower(filepath.Ext(renderOut)); ext {
	case ".pdf":
		return export.WritePDF(renderOut, l, style)
	case ".png":
		return writeFile(renderOut, func(w io.Writer) error {
			return png.Encode(w, export.RenderImage(l, style))
		})
	case ".json":
		return writeFile(renderOut, func(w io.Writer) error {
			return export.WriteJSON(w, l)
		})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func writeFile(fname string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer closeWith(&err, f)
	return write(f)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print statistics, areas and the trend of the data",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().Float64Var(&statsScale, "scale", 1, "horizontal distance between samples")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	c, err := loadChart(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	color := termplot.ShouldUseColor(w)
	heading := func(s string) string {
		if color {
			return headingStyle.Render(s)
		}
		return s
	}

	ys := c.data.Present()
	fmt.Fprintf(w, "%s (%d of %d values present)\n", heading("statistics"), len(ys), c.data.NumPoints())
	for _, k := range calc.Calculations {
		fmt.Fprintf(w, "  %-18s %g\n", k, calc.Perform(k, ys))
	}

	fmt.Fprintln(w, heading("area"))
	for _, m := range calc.Integrations {
		fmt.Fprintf(w, "  %-18s %g\n", m, calc.Area(m, ys, statsScale))
	}

	r := calc.SeriesCorrelation(ys, statsScale)
	fmt.Fprintln(w, heading("trend"))
	fmt.Fprintf(w, "  %-18s %.4f (%s)\n", "correlation", r, calc.Classify(r))
	return nil
}

func newTouchCmd() *cobra.Command {
	var x float64
	cmd := &cobra.Command{
		Use:   "touch",
		Short: "Report the point nearest to a horizontal position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadChart(cmd)
			if err != nil {
				return err
			}
			l := c.layout()
			t, ok := l.Touch(x)
			if !ok {
				return fmt.Errorf("no data points")
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "index %d", t.Index)
			if c.data.Labels != nil {
				fmt.Fprintf(w, " (%s)", c.data.LabelAt(t.Index))
			}
			fmt.Fprintf(w, ": %s at (%.1f, %.1f), line at x=%.1f\n",
				l.PopupText(t.Index), t.Dot.Pos.X, t.Dot.Pos.Y, t.LineX)
			if t.Popup.Visible {
				r := t.Popup.Frame
				fmt.Fprintf(w, "popup [%.1f %.1f %.1f %.1f]\n", r.LLx, r.LLy, r.URx, r.URy)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "horizontal position in view coordinates")
	return cmd
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the chart on the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlotCmd,
	}
	cmd.Flags().IntVar(&plotRows, "rows", defaultPlotRows, "plot height in terminal rows")
	cmd.Flags().BoolVarP(&plotWatch, "watch", "w", false, "redraw when the input file changes")
	return cmd
}

func runPlotCmd(cmd *cobra.Command, _ []string) error {
	c, err := loadChart(cmd)
	if err != nil {
		return err
	}
	if plotRows < 1 {
		return fmt.Errorf("invalid number of rows %d", plotRows)
	}

	cols := termplot.TerminalWidth()
	c.width, c.height = termplot.ViewSize(cols, plotRows)
	c.opt.Measurer = termplot.Measurer()
	if c.opt.Padding == nil {
		zero := 0.0
		c.opt.Padding = &zero
	}
	if c.opt.DotDiameter == 0 {
		c.opt.DotDiameter = 1
	}

	w := cmd.OutOrStdout()
	color := termplot.ShouldUseColor(w)
	draw := func() error {
		return termplot.Render(w, c.layout(), cols, plotRows, color)
	}
	if !plotWatch {
		return draw()
	}

	fname, err := watchedFile()
	if err != nil {
		return err
	}
	fmt.Fprint(w, clearScreen)
	if err := draw(); err != nil {
		return err
	}
	ctx := cmd.Context()
	return source.Watch(ctx, fname, c.log, func() error {
		if err := c.reload(ctx); err != nil {
			return err
		}
		fmt.Fprint(w, clearScreen)
		return draw()
	})
}
