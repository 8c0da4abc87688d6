package domain

// Record is one row of a Table. It shares the column slice of the table it came from.
type Record struct {
	columns []string
	values  []string
}

func NewRecord(columns, values []string) Record {
	return Record{columns: columns, values: values}
}

// Value returns the cell stored under column.
func (r Record) Value(column string) (string, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}

	return "", false
}

// Values returns a copy of the cells in column order.
func (r Record) Values() []string {
	return append([]string(nil), r.values...)
}

func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.columns))
	for i, c := range r.columns {
		m[c] = r.values[i]
	}

	return m
}

type Table struct {
	Format  string // format the table was read from, e.g. "xlsx", "csv"
	Columns []string
	Records []Record
}

// ColumnIndex returns the position of column or -1.
func (t *Table) ColumnIndex(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}

	return -1
}

func (t *Table) Len() int {
	return len(t.Records)
}

// Rows returns the raw cells of every record in order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Records))
	for _, r := range t.Records {
		rows = append(rows, r.values)
	}

	return rows
}
