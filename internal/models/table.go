package models

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Table is a materialized view of API records: a deterministic column
// order plus stringified cells, ready for terminal rendering and CSV
// export.
type Table struct {
	Columns []string
	Rows    [][]string
}

// BuildTable materializes records into a Table. Columns are the sorted
// union of all record keys so repeated fetches of the same collection
// produce identical layouts. Nested values are JSON-encoded into their
// cell.
func BuildTable(records []Record) Table {
	if len(records) == 0 {
		return Table{}
	}

	seen := make(map[string]struct{})
	var columns []string
	for _, rec := range records {
		for key := range rec {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := rec[col]; ok {
				row[i] = formatCell(v)
			}
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
