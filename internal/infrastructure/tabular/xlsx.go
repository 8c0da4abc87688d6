package tabular

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kurochkinivan/order_reporter/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	outputSheet     = "Sheet1"
	columnPadding   = 8
	maxColumnWidth  = 255
	centerAlignment = "center"

	// General format switches to scientific notation past 11 characters
	maxGeneralDigits = 11
)

func (s *Store) readXLSX(path string) (_ []string, _ [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	sheet := sheets[0]
	if s.sheet != "" {
		if !slices.Contains(sheets, s.sheet) {
			return nil, nil, fmt.Errorf("sheet %q not found", s.sheet)
		}
		sheet = s.sheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, ErrMissingHeader
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		data = append(data, row)
	}

	return rows[0], data, nil
}

func writeXLSX(w io.Writer, table *domain.Table) (err error) {
	f := excelize.NewFile()
	defer func() { err = errors.Join(err, f.Close()) }()

	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}

	if err := f.SetSheetRow(outputSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}

		if err := f.SetSheetRow(outputSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write record #%d: %w", i+1, err)
		}
	}

	if err := formatSheet(f, table); err != nil {
		return fmt.Errorf("failed to format sheet: %w", err)
	}

	return f.Write(w)
}

// formatSheet adds a header autofilter, widens columns to fit their content and centers
// every cell.
func formatSheet(f *excelize.File, table *domain.Table) error {
	if len(table.Columns) == 0 {
		return nil
	}

	lastCell, err := excelize.CoordinatesToCellName(len(table.Columns), table.Len()+1)
	if err != nil {
		return err
	}

	if err := f.AutoFilter(outputSheet, "A1:"+lastCell, nil); err != nil {
		return err
	}

	rows := table.Rows()
	for i, c := range table.Columns {
		width := utf8.RuneCountInString(c)
		for _, row := range rows {
			width = max(width, utf8.RuneCountInString(row[i]))
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := f.SetColWidth(outputSheet, name, name, float64(min(width+columnPadding, maxColumnWidth))); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: centerAlignment, Vertical: centerAlignment},
	})
	if err != nil {
		return err
	}

	return f.SetCellStyle(outputSheet, "A1", lastCell, style)
}

// cellValue stores short canonical numbers as numeric cells; they read back unchanged under
// the General number format. Everything else stays text.
func cellValue(v string) any {
	if v == "" || len(v) > maxGeneralDigits || v == "-0" || !strings.ContainsAny(v[:1], "-0123456789") {
		return v
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || strconv.FormatFloat(n, 'f', -1, 64) != v {
		return v
	}

	return n
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}

	return true
}
