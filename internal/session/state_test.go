package session

import (
	"testing"
	"time"

	"github.com/dyike/symplacheck/internal/models"
)

func eventsTable() models.Table {
	return models.BuildTable([]models.Record{{"id": 1, "name": "Conf"}})
}

func resultFor(eventID string, query models.QueryType) models.FetchResult {
	return models.FetchResult{
		EventID:     eventID,
		Type:        query,
		Version:     models.APIVersionV3,
		Records:     models.BuildTable([]models.Record{{"id": 1}}),
		CallLatency: 10 * time.Millisecond,
	}
}

func TestTokenChangeClearsEventsAndResults(t *testing.T) {
	state := New()
	state.OnTokenChanged("first")
	state.OnVersionChanged(models.APIVersionV3)
	state.SetEvents(eventsTable())
	state.AppendResult(resultFor("100", models.QueryOrders))

	state.OnTokenChanged("second")

	if !state.Events.Empty() {
		t.Fatalf("expected events cleared after token change")
	}
	if len(state.Results) != 0 {
		t.Fatalf("expected results cleared after token change, got %d", len(state.Results))
	}
	if state.Creds.Token != "second" {
		t.Fatalf("expected token updated, got %q", state.Creds.Token)
	}
}

func TestVersionChangeClearsEventsOnly(t *testing.T) {
	state := New()
	state.OnTokenChanged("token")
	state.OnVersionChanged(models.APIVersionV3)
	state.SetEvents(eventsTable())
	state.AppendResult(resultFor("100", models.QueryOrders))

	state.OnVersionChanged(models.APIVersionV5)

	if !state.Events.Empty() {
		t.Fatalf("expected events cleared after version change")
	}
	if len(state.Results) != 1 {
		t.Fatalf("expected results untouched after version change, got %d", len(state.Results))
	}
	if state.Creds.Version != models.APIVersionV5 {
		t.Fatalf("expected version updated, got %s", state.Creds.Version)
	}
}

func TestUnchangedValuesAreNoOps(t *testing.T) {
	state := New()
	state.OnTokenChanged("token")
	state.OnVersionChanged(models.APIVersionV3)
	state.SetEvents(eventsTable())
	state.AppendResult(resultFor("100", models.QueryOrders))

	state.OnTokenChanged("token")
	state.OnVersionChanged(models.APIVersionV3)

	if state.Events.Empty() {
		t.Fatalf("expected events kept when token and version are unchanged")
	}
	if len(state.Results) != 1 {
		t.Fatalf("expected results kept when token and version are unchanged")
	}
}

func TestAppendResultIsStrictlyAdditive(t *testing.T) {
	state := New()

	// Repeated fetches for the same event and type must stay distinct.
	state.AppendResult(resultFor("100", models.QueryOrders))
	state.AppendResult(resultFor("100", models.QueryOrders))
	state.AppendResult(resultFor("100", models.QueryParticipants))
	state.AppendResult(resultFor("200", models.QueryOrders))

	if len(state.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(state.Results))
	}

	wantOrder := []string{"100", "100", "100", "200"}
	for i, want := range wantOrder {
		if state.Results[i].EventID != want {
			t.Fatalf("result %d: expected event %s, got %s", i, want, state.Results[i].EventID)
		}
	}
}

func TestClearResults(t *testing.T) {
	state := New()
	state.SetEvents(eventsTable())
	state.AppendResult(resultFor("100", models.QueryOrders))

	state.ClearResults()

	if len(state.Results) != 0 {
		t.Fatalf("expected no results after clear, got %d", len(state.Results))
	}
	if state.Events.Empty() {
		t.Fatalf("expected events to survive a results clear")
	}
}
