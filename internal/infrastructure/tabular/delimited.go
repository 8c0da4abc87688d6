package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kurochkinivan/order_reporter/internal/domain"
)

const utf8BOM = "\ufeff"

func separator(format string) rune {
	if format == FormatTSV {
		return '\t'
	}

	return ','
}

func readDelimitedFile(path string, comma rune) (_ []string, _ [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return readDelimited(f, comma)
}

func readDelimited(r io.Reader, comma rune) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	// row width is checked against the header by newTable
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrMissingHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	// spreadsheet exports often prefix the first header cell with a BOM
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, nil, fmt.Errorf("failed to read record #%d: %w", len(rows)+1, err)
		}

		rows = append(rows, row)
	}

	return header, rows, nil
}

func writeDelimited(w io.Writer, comma rune, table *domain.Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = comma

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := writer.WriteAll(table.Rows()); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	return nil
}
