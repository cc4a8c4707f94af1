// Package models defines the domain types shared by the client, session
// state, and presentation layers.
package models

import (
	"fmt"
	"strconv"
	"time"
)

// APIVersion identifies a Sympla public API version namespace.
type APIVersion string

const (
	APIVersionV3 APIVersion = "v3"
	APIVersionV5 APIVersion = "v5"
)

// APIVersions lists the supported versions in selector order.
var APIVersions = []APIVersion{APIVersionV3, APIVersionV5}

// QueryType identifies which per-event collection a fetch targets.
type QueryType string

const (
	QueryOrders       QueryType = "orders"
	QueryParticipants QueryType = "participants"
)

// DisplayName returns the capitalized form used in tables and messages.
func (q QueryType) DisplayName() string {
	switch q {
	case QueryOrders:
		return "Orders"
	case QueryParticipants:
		return "Participants"
	default:
		return string(q)
	}
}

// Credentials holds the user-supplied token and API version. Both must be
// set before any call is issued.
type Credentials struct {
	Token   string
	Version APIVersion
}

// Complete reports whether both fields are set.
func (c Credentials) Complete() bool {
	return c.Token != "" && c.Version != ""
}

// Record is one row returned by the API. The schema is owned by the
// upstream, so values stay opaque until materialized into a Table.
type Record map[string]any

// Pagination is the raw pagination block of a response envelope.
type Pagination map[string]any

// IntField reads a pagination field as an integer, coercing the numeric
// representations JSON decoding can produce.
func (p Pagination) IntField(key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// IntFieldOr reads a pagination field as an integer, falling back to def.
func (p Pagination) IntFieldOr(key string, def int) int {
	if n, ok := p.IntField(key); ok {
		return n
	}
	return def
}

// Summary renders the human-readable pagination line shown with each
// result: current page, total pages, and the page record count.
func (p Pagination) Summary() string {
	if len(p) == 0 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d, Total Records: %d",
		p.IntFieldOr("page", 1),
		p.IntFieldOr("total_page", 1),
		p.IntFieldOr("quantity", 0),
	)
}

// FetchResult is one completed orders/participants query and its metadata.
// Results are immutable after creation and appended in call order.
type FetchResult struct {
	EventID           string
	Type              QueryType
	Version           APIVersion
	Records           Table
	Pagination        Pagination
	CallLatency       time.Duration
	ProcessingLatency time.Duration
	TotalPossible     int
	FetchedAt         time.Time
}

// Label is the combined identifier used to group chart bars and summary
// rows, e.g. "v3 12345".
func (r FetchResult) Label() string {
	return fmt.Sprintf("%s %s", r.Version, r.EventID)
}
