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

// Package source reads chart data from CSV files, SQLite databases and
// Excel workbooks.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/linechart"
)

// ReadCSV reads a chart series from CSV data with a header row.  The
// values are taken from the given column, which may be a header name or a
// 1-based column number.  If column is empty, the first column other than
// the label column is used.  If labelColumn is not empty, it supplies the
// X-axis labels.  Empty cells, "null" and "NaN" give missing values.
func ReadCSV(r io.Reader, name, column, labelColumn string) (*linechart.Labeled, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fromTable(name, records, column, labelColumn)
}

// fromTable converts a table with a header row into a series.  Rows may be
// shorter than the header; absent cells are empty.
func fromTable(name string, rows [][]string, column, labelColumn string) (*linechart.Labeled, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	header := rows[0]

	labelIdx := -1
	if labelColumn != "" {
		var err error
		labelIdx, err = columnIndex(header, labelColumn)
		if err != nil {
			return nil, fmt.Errorf("%s: label column %q: %w", name, labelColumn, err)
		}
	}

	valueIdx := -1
	if column != "" {
		var err error
		valueIdx, err = columnIndex(header, column)
		if err != nil {
			return nil, fmt.Errorf("%s: value column %q: %w", name, column, err)
		}
	} else {
		for i := range header {
			if i != labelIdx {
				valueIdx = i
				break
			}
		}
		if valueIdx < 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrNoColumn)
		}
	}

	res := &linechart.Labeled{}
	for k, row := range rows[1:] {
		v, err := parseCell(cell(row, valueIdx))
		if err != nil {
			return nil, NewParseError(name, k+2, header[valueIdx], err)
		}
		res.Series = append(res.Series, v)
		if labelIdx >= 0 {
			res.Labels = append(res.Labels, cell(row, labelIdx))
		}
	}
	if labelIdx < 0 {
		res.Labels = nil
	}
	return res, nil
}

// columnIndex finds a column by header name, or by 1-based number if no
// header matches.
func columnIndex(header []string, column string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(column); err == nil && n >= 1 && n <= len(header) {
		return n - 1, nil
	}
	return -1, ErrNoColumn
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func parseCell(s string) (linechart.Value, error) {
	switch strings.ToLower(s) {
	case "", "null", "nan":
		return linechart.Missing, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return linechart.Missing, err
	}
	if math.IsNaN(x) {
		return linechart.Missing, nil
	}
	if math.IsInf(x, 0) {
		return linechart.Missing, ErrNotFinite
	}
	return linechart.V(x), nil
}
