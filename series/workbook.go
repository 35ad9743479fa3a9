// seehuhn.de/go/legend - legend placement for 2D charts
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

package series

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoData indicates a worksheet without usable numeric rows.
var ErrNoData = errors.New("series: no data")

// SheetError describes a problem with one worksheet of a workbook.
type SheetError struct {
	SheetName string
	Row       int // 1-based, or 0 if the problem is not tied to a row
	Err       error
}

func (e *SheetError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("sheet %q, row %d: %v", e.SheetName, e.Row, e.Err)
	}
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// Labeled is a series together with its legend label.
type Labeled struct {
	Label  string
	Series Series
}

// LoadWorkbook reads one series per worksheet of an xlsx file.
//
// The first row of every sheet names the columns. The columns "x" and
// "y" are required; if a column "ey" is present the sheet becomes an
// [ErrorBars] series (with optional "ex"), otherwise a [PointSet].
// Rows with an empty x or y cell are skipped. The sheet name is used as
// the label.
func LoadWorkbook(path string) ([]Labeled, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var res []Labeled
	for _, name := range f.GetSheetList() {
		s, err := readSheet(f, name)
		if errors.Is(err, ErrNoData) {
			continue
		} else if err != nil {
			return nil, err
		}
		res = append(res, Labeled{Label: name, Series: s})
	}
	if len(res) == 0 {
		return nil, ErrNoData
	}
	return res, nil
}

func readSheet(f *excelize.File, name string) (Series, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, &SheetError{SheetName: name, Err: err}
	}
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	col := map[string]int{}
	for i, head := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(head))] = i
	}
	xi, okX := col["x"]
	yi, okY := col["y"]
	if !okX || !okY {
		return nil, ErrNoData
	}
	exi, okEX := col["ex"]
	eyi, okEY := col["ey"]

	var x, y, ex, ey []float64
	for r, row := range rows[1:] {
		rowNum := r + 2
		xs, ys := cell(row, xi), cell(row, yi)
		if xs == "" || ys == "" {
			continue
		}
		xv, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, &SheetError{SheetName: name, Row: rowNum, Err: err}
		}
		yv, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, &SheetError{SheetName: name, Row: rowNum, Err: err}
		}
		x = append(x, xv)
		y = append(y, yv)

		if okEY {
			ev, err := parseOptional(cell(row, eyi))
			if err != nil {
				return nil, &SheetError{SheetName: name, Row: rowNum, Err: err}
			}
			ey = append(ey, ev)
		}
		if okEX {
			ev, err := parseOptional(cell(row, exi))
			if err != nil {
				return nil, &SheetError{SheetName: name, Row: rowNum, Err: err}
			}
			ex = append(ex, ev)
		}
	}
	if len(x) == 0 {
		return nil, ErrNoData
	}

	if okEY {
		return NewErrorBars(x, y, ex, ey)
	}
	return NewPointSet(x, y)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func parseOptional(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
