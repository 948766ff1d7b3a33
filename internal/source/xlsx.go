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

package source

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"seehuhn.de/go/linechart"
)

// ReadXLSX reads a chart series from a sheet of an Excel workbook.  The
// first row of the sheet is the header row; column and labelColumn are
// interpreted as for [ReadCSV].  If sheet is empty, the first sheet is
// used.
func ReadXLSX(fname, sheet, column, labelColumn string) (*linechart.Labeled, error) {
	f, err := excelize.OpenFile(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", fname, ErrNoSheet)
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%s: sheet %q: %w", fname, sheet, ErrNoSheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return fromTable(fname+":"+sheet, rows, column, labelColumn)
}
