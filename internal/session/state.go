// Package session holds all data retained across user actions within one
// interactive session. One State instance belongs to exactly one session
// and is passed by reference to each action handler; it is never shared
// across goroutines, so no locking is needed.
package session

import (
	"github.com/dyike/symplacheck/internal/models"
)

// State is the only state persisted across user actions. Results are
// append-only within a session except for full-list clears; repeated
// fetches for the same event and type produce distinct entries.
type State struct {
	Creds   models.Credentials
	Events  models.Table
	Results []models.FetchResult
}

// New returns an empty session state.
func New() *State {
	return &State{}
}

// SetEvents replaces the events table unconditionally.
func (s *State) SetEvents(events models.Table) {
	s.Events = events
}

// ClearEvents drops the events table.
func (s *State) ClearEvents() {
	s.Events = models.Table{}
}

// ClearResults drops all fetch results.
func (s *State) ClearResults() {
	s.Results = nil
}

// ClearResultsAndEvents drops both the events table and all fetch results.
func (s *State) ClearResultsAndEvents() {
	s.ClearResults()
	s.ClearEvents()
}

// AppendResult appends a fetch result. Entries are never deduplicated,
// merged, or sorted.
func (s *State) AppendResult(result models.FetchResult) {
	s.Results = append(s.Results, result)
}

// OnTokenChanged updates the token. Cached events and results were fetched
// under the old credential, so both are invalidated. Setting the same
// token again is a no-op.
func (s *State) OnTokenChanged(token string) {
	if token == s.Creds.Token {
		return
	}
	s.Creds.Token = token
	s.ClearResultsAndEvents()
}

// OnVersionChanged updates the API version. The events table belongs to
// the previous version's namespace and is cleared; results keep their own
// version tag and survive. Selecting the same version again is a no-op.
func (s *State) OnVersionChanged(version models.APIVersion) {
	if version == s.Creds.Version {
		return
	}
	s.Creds.Version = version
	s.ClearEvents()
}
