// Package tabular reads and writes tables in the spreadsheet formats the reporter accepts:
// xlsx workbooks and comma or tab separated text. The format is picked from the file
// extension.
package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/order_reporter/internal/domain"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFormatMismatch    = errors.New("output format differs from input format")
	ErrMissingHeader     = errors.New("missing header row")
)

// FormatOf maps a file extension onto one of the Format* constants.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type Store struct {
	sheet string
}

// New returns a Store. sheet selects the xlsx worksheet to read; empty means the first one.
func New(sheet string) *Store {
	return &Store{sheet: sheet}
}

func (s *Store) ReadTable(path string) (*domain.Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	var header []string
	var rows [][]string

	switch format {
	case FormatXLSX:
		header, rows, err = s.readXLSX(path)
	default:
		header, rows, err = readDelimitedFile(path, separator(format))
	}
	if err != nil {
		return nil, err
	}

	return newTable(format, header, rows)
}

// WriteTable writes table to path in the format implied by its extension. The file is
// written next to path first and renamed over it once complete.
func (s *Store) WriteTable(path string, table *domain.Table) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	if table.Format != "" && table.Format != format {
		return fmt.Errorf("%w: %s -> %s", ErrFormatMismatch, table.Format, format)
	}

	return writeAtomic(path, func(w io.Writer) error {
		switch format {
		case FormatXLSX:
			return writeXLSX(w, table)
		default:
			return writeDelimited(w, separator(format), table)
		}
	})
}

func newTable(format string, header []string, rows [][]string) (*domain.Table, error) {
	table := &domain.Table{
		Format:  format,
		Columns: header,
		Records: make([]domain.Record, 0, len(rows)),
	}

	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row #%d has %d cells, header has %d", i+1, len(row), len(header))
		}

		values := make([]string, len(header))
		copy(values, row)

		table.Records = append(table.Records, domain.NewRecord(header, values))
	}

	return table, nil
}

func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if err := write(tmp); err != nil {
		return errors.Join(err, tmp.Close())
	}

	if err := tmp.Chmod(0o644); err != nil {
		return errors.Join(fmt.Errorf("failed to set permissions: %w", err), tmp.Close())
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}
