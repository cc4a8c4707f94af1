package display

import (
	"strings"
	"testing"
	"time"

	"github.com/dyike/symplacheck/internal/models"
)

func chartResults() []models.FetchResult {
	return []models.FetchResult{
		{
			EventID:       "100",
			Type:          models.QueryOrders,
			Version:       models.APIVersionV3,
			CallLatency:   200 * time.Millisecond,
			TotalPossible: 10,
		},
		{
			EventID:       "100",
			Type:          models.QueryParticipants,
			Version:       models.APIVersionV3,
			CallLatency:   400 * time.Millisecond,
			TotalPossible: 25,
		},
		{
			EventID:       "200",
			Type:          models.QueryOrders,
			Version:       models.APIVersionV5,
			CallLatency:   100 * time.Millisecond,
			TotalPossible: 3,
		},
	}
}

func TestLatencyGroupsGroupByCombinedLabel(t *testing.T) {
	groups := LatencyGroups(chartResults())

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label != "v3 100" {
		t.Fatalf("expected first group 'v3 100', got %q", groups[0].Label)
	}
	if len(groups[0].Bars) != 2 {
		t.Fatalf("expected 2 bars in first group, got %d", len(groups[0].Bars))
	}
	if groups[0].Bars[0].Series != "Orders" || groups[0].Bars[1].Series != "Participants" {
		t.Fatalf("unexpected series order: %+v", groups[0].Bars)
	}
	if groups[1].Label != "v5 200" {
		t.Fatalf("expected second group 'v5 200', got %q", groups[1].Label)
	}
}

func TestRecordGroupsUseTotalPossible(t *testing.T) {
	groups := RecordGroups(chartResults())

	if groups[0].Bars[1].Value != 25 {
		t.Fatalf("expected participants value 25, got %f", groups[0].Bars[1].Value)
	}
	if groups[1].Bars[0].Value != 3 {
		t.Fatalf("expected orders value 3, got %f", groups[1].Bars[0].Value)
	}
}

func TestRepeatedFetchesKeepDistinctBars(t *testing.T) {
	results := []models.FetchResult{
		{EventID: "100", Type: models.QueryOrders, Version: models.APIVersionV3, TotalPossible: 1},
		{EventID: "100", Type: models.QueryOrders, Version: models.APIVersionV3, TotalPossible: 2},
	}

	groups := RecordGroups(results)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Bars) != 2 {
		t.Fatalf("expected 2 distinct bars, got %d", len(groups[0].Bars))
	}
}

func TestRenderBarChartIncludesLabelsAndValues(t *testing.T) {
	out := RenderBarChart("API Call Times", "s", LatencyGroups(chartResults()))

	for _, want := range []string{"API Call Times", "v3 100", "v5 200", "Orders", "Participants", "0.40s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected chart to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderBarChartZeroValues(t *testing.T) {
	results := []models.FetchResult{
		{EventID: "1", Type: models.QueryOrders, Version: models.APIVersionV3, TotalPossible: 0},
	}

	// Must not panic or divide by zero when every value is zero.
	out := RenderBarChart("Totals", "", RecordGroups(results))
	if !strings.Contains(out, "v3 1") {
		t.Fatalf("expected group label in chart:\n%s", out)
	}
}
