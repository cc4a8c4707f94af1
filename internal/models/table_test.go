package models

import (
	"reflect"
	"testing"
)

func TestBuildTableColumnsAreSortedUnion(t *testing.T) {
	records := []Record{
		{"name": "Conf", "id": float64(1)},
		{"id": float64(2), "city": "Recife"},
	}

	table := BuildTable(records)

	want := []string{"city", "id", "name"}
	if !reflect.DeepEqual(table.Columns, want) {
		t.Fatalf("expected columns %v, got %v", want, table.Columns)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}

	// Missing keys materialize as empty cells.
	if table.Rows[0][0] != "" {
		t.Fatalf("expected empty city cell, got %q", table.Rows[0][0])
	}
	if table.Rows[1][2] != "" {
		t.Fatalf("expected empty name cell, got %q", table.Rows[1][2])
	}
}

func TestBuildTableCellFormatting(t *testing.T) {
	records := []Record{{
		"str":    "hello",
		"int":    float64(42),
		"float":  float64(1.5),
		"bool":   true,
		"null":   nil,
		"nested": map[string]any{"a": float64(1)},
		"list":   []any{"x", "y"},
	}}

	table := BuildTable(records)
	row := table.Rows[0]
	cells := make(map[string]string, len(table.Columns))
	for i, col := range table.Columns {
		cells[col] = row[i]
	}

	want := map[string]string{
		"str":    "hello",
		"int":    "42",
		"float":  "1.5",
		"bool":   "true",
		"null":   "",
		"nested": `{"a":1}`,
		"list":   `["x","y"]`,
	}
	for col, expected := range want {
		if cells[col] != expected {
			t.Fatalf("column %s: expected %q, got %q", col, expected, cells[col])
		}
	}
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildTable(nil)
	if !table.Empty() {
		t.Fatalf("expected empty table")
	}
	if len(table.Columns) != 0 {
		t.Fatalf("expected no columns, got %v", table.Columns)
	}
}
