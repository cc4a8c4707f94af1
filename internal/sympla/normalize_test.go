package sympla

import (
	"testing"

	"github.com/dyike/symplacheck/internal/models"
)

func TestNormalizeEmptyPaginationIsZeroForAllVersions(t *testing.T) {
	body := map[string]any{
		"data":       []any{map[string]any{"id": float64(1)}},
		"pagination": map[string]any{},
	}

	for _, version := range models.APIVersions {
		_, pagination, total := Normalize(body, version)
		if len(pagination) != 0 {
			t.Fatalf("version %s: expected empty pagination, got %v", version, pagination)
		}
		if total != 0 {
			t.Fatalf("version %s: expected total 0, got %d", version, total)
		}
	}
}

func TestNormalizeMissingKeysDefaultsToEmpty(t *testing.T) {
	records, pagination, total := Normalize(map[string]any{}, models.APIVersionV3)
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if len(pagination) != 0 {
		t.Fatalf("expected empty pagination, got %v", pagination)
	}
	if total != 0 {
		t.Fatalf("expected total 0, got %d", total)
	}
}

func TestNormalizeTotalV3(t *testing.T) {
	tests := []struct {
		name       string
		pagination map[string]any
		want       int
	}{
		{"quantity present", map[string]any{"quantity": float64(42)}, 42},
		{"quantity absent falls back to data length", map[string]any{"data": []any{1, 2, 3}}, 3},
		{"quantity wins over data length", map[string]any{"quantity": float64(7), "data": []any{1}}, 7},
		{"no usable fields", map[string]any{"page": float64(1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, total := Normalize(map[string]any{"pagination": tt.pagination}, models.APIVersionV3)
			if total != tt.want {
				t.Fatalf("expected total %d, got %d", tt.want, total)
			}
		})
	}
}

func TestNormalizeTotalV5(t *testing.T) {
	tests := []struct {
		name       string
		pagination map[string]any
		want       int
	}{
		{"total_records preferred", map[string]any{"total_records": float64(10), "total_items": float64(5)}, 10},
		{"total_items fallback", map[string]any{"total_items": float64(7)}, 7},
		{"data length fallback", map[string]any{"data": []any{1, 2}}, 2},
		{"string count is coerced", map[string]any{"total_records": "13"}, 13},
		{"non-numeric falls through", map[string]any{"total_records": "n/a", "total_items": float64(4)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, total := Normalize(map[string]any{"pagination": tt.pagination}, models.APIVersionV5)
			if total != tt.want {
				t.Fatalf("expected total %d, got %d", tt.want, total)
			}
		})
	}
}

func TestNormalizeRecordsSkipsNonObjects(t *testing.T) {
	body := map[string]any{
		"data": []any{
			map[string]any{"id": float64(1)},
			"not a record",
			map[string]any{"id": float64(2)},
		},
	}

	records, _, _ := Normalize(body, models.APIVersionV3)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}
