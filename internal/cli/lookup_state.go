package cli

import (
	"strings"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/google/uuid"
)

// QueryState is everything the lookup panel displays. It is owned by the
// bubbletea update loop and mutated only through the methods below.
type QueryState struct {
	Query     string
	Result    *domain.LookupResult
	Loading   bool
	ActiveTab domain.Tab

	// Searched is the query text Result was produced for.
	Searched string

	pendingID    string
	pendingQuery string
}

func newQueryState() *QueryState {
	return &QueryState{ActiveTab: domain.TabChat}
}

// SetQuery replaces the input text verbatim.
func (s *QueryState) SetQuery(text string) {
	s.Query = text
}

// CanSearch reports whether the submit control is enabled.
func (s *QueryState) CanSearch() bool {
	return !s.Loading && strings.TrimSpace(s.Query) != ""
}

// Search starts a search for the current query and returns its ID. Blank
// input is a no-op. A search started while another is pending supersedes
// it: only the newest ID is accepted by Deliver.
func (s *QueryState) Search() (string, bool) {
	if strings.TrimSpace(s.Query) == "" {
		return "", false
	}
	s.Loading = true
	s.pendingID = uuid.NewString()
	s.pendingQuery = s.Query
	return s.pendingID, true
}

// Pending returns the ID of the outstanding search, if any.
func (s *QueryState) Pending() string {
	return s.pendingID
}

// Deliver records the result of search id. Results for superseded or
// unknown searches are dropped and Deliver returns false.
func (s *QueryState) Deliver(id string, result *domain.LookupResult) bool {
	if id == "" || id != s.pendingID {
		return false
	}
	s.Result = result
	s.Searched = s.pendingQuery
	s.Loading = false
	s.pendingID = ""
	s.pendingQuery = ""
	return true
}

// SelectTab switches the visible tab. The result is untouched.
func (s *QueryState) SelectTab(tab domain.Tab) {
	if tab.Valid() {
		s.ActiveTab = tab
	}
}
