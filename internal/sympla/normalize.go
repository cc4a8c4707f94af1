package sympla

import (
	"github.com/dyike/symplacheck/internal/models"
)

// totalRecordFields lists, per API version, the pagination fields that may
// carry the total record count, in preference order. Versions absent from
// the table fall straight through to the length of pagination's nested
// data list.
var totalRecordFields = map[models.APIVersion][]string{
	models.APIVersionV3: {"quantity"},
	models.APIVersionV5: {"total_records", "total_items"},
}

// Normalize extracts the records array, pagination block, and total
// possible record count from a decoded response envelope. It is pure and
// never fails: missing or malformed keys yield empty/zero values.
func Normalize(body map[string]any, version models.APIVersion) ([]models.Record, models.Pagination, int) {
	records := extractRecords(body)

	pagination := models.Pagination{}
	if p, ok := body["pagination"].(map[string]any); ok {
		pagination = models.Pagination(p)
	}

	return records, pagination, totalPossible(pagination, version)
}

func extractRecords(body map[string]any) []models.Record {
	raw, ok := body["data"].([]any)
	if !ok {
		return nil
	}
	records := make([]models.Record, 0, len(raw))
	for _, item := range raw {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, models.Record(rec))
		}
	}
	return records
}

func totalPossible(pagination models.Pagination, version models.APIVersion) int {
	if len(pagination) == 0 {
		return 0
	}
	for _, field := range totalRecordFields[version] {
		if n, ok := pagination.IntField(field); ok {
			return n
		}
	}
	if list, ok := pagination["data"].([]any); ok {
		return len(list)
	}
	return 0
}
