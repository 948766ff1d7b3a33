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
	"context"
	"database/sql"
	"fmt"
	"math"

	_ "modernc.org/sqlite" // SQLite driver.

	"seehuhn.de/go/linechart"
)

// QuerySQLite runs a query against a SQLite database and returns the
// result as a chart series.  The first result column holds the values;
// NULL gives a missing value.  If the query returns a second column, it
// supplies the X-axis labels.
func QuerySQLite(ctx context.Context, dbPath, query string) (*linechart.Labeled, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dbPath, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: %w", dbPath, ErrNoColumn)
	}
	withLabels := len(cols) >= 2

	res := &linechart.Labeled{}
	dest := make([]any, len(cols))
	var skip sql.RawBytes
	for i := range dest {
		dest[i] = &skip
	}
	for rows.Next() {
		var v sql.NullFloat64
		var label sql.NullString
		dest[0] = &v
		if withLabels {
			dest[1] = &label
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, NewParseError(dbPath, len(res.Series)+1, cols[0], err)
		}
		if v.Valid && math.IsInf(v.Float64, 0) {
			return nil, NewParseError(dbPath, len(res.Series)+1, cols[0], ErrNotFinite)
		}
		if v.Valid {
			res.Series = append(res.Series, linechart.V(v.Float64))
		} else {
			res.Series = append(res.Series, linechart.Missing)
		}
		if withLabels {
			res.Labels = append(res.Labels, label.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
