package importer

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultSQLiteTable = "horas"

// SQLiteReader reads every row of one table from a SQLite database file.
// The connection is opened query-only; the source is never written.
type SQLiteReader struct {
	Table string
}

func (r *SQLiteReader) Read(path string) ([]string, []Record, error) {
	table := r.Table
	if table == "" {
		table = DefaultSQLiteTable
	}
	if !validSQLiteIdentifier(table) {
		return nil, nil, fmt.Errorf("invalid sqlite table name %q", table)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite db %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s";`, table))
	if err != nil {
		return nil, nil, fmt.Errorf("query sqlite table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("read sqlite columns: %w", err)
	}
	normalizedHeaders := normalizeHeaders(columns)

	records := make([]Record, 0, 128)
	rowNumber := 1
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scan sqlite row %d: %w", rowNumber, err)
		}

		row := make([]string, len(cells))
		for i, cell := range cells {
			if cell.Valid {
				row[i] = cell.String
			}
		}
		records = append(records, Record{RowNumber: rowNumber, Values: recordValues(normalizedHeaders, row)})
		rowNumber++
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate sqlite rows: %w", err)
	}

	return normalizedHeaders, records, nil
}

func validSQLiteIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
