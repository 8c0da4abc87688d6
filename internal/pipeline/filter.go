package pipeline

import (
	"errors"
	"fmt"

	"github.com/kurochkinivan/order_reporter/internal/domain"
)

func checkSchema(table *domain.Table, statusColumn string) error {
	seen := make(map[string]struct{}, len(table.Columns))
	for i, c := range table.Columns {
		if c == "" {
			return schemaError(fmt.Sprintf("#%d", i+1), errors.New("blank column name"))
		}

		if _, ok := seen[c]; ok {
			return schemaError(c, errors.New("duplicate column name"))
		}
		seen[c] = struct{}{}
	}

	if _, ok := seen[statusColumn]; !ok {
		return schemaError(statusColumn, errors.New("status column not found"))
	}

	return nil
}

// Filter returns a table with the same columns holding the records whose column cell equals
// value exactly, in their original order.
func Filter(table *domain.Table, column, value string) *domain.Table {
	filtered := &domain.Table{
		Format:  table.Format,
		Columns: table.Columns,
		Records: make([]domain.Record, 0),
	}

	for _, r := range table.Records {
		if v, ok := r.Value(column); ok && v == value {
			filtered.Records = append(filtered.Records, r)
		}
	}

	return filtered
}
