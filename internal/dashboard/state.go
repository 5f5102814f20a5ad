// Package dashboard models the filter state the browser dashboard
// holds: one exclusive filter mode, an orthogonal department
// multi-select and pagination. The rendering itself lives in the
// front-end; this package pins down the transition rules the listing
// endpoint is queried with.
package dashboard

import (
	"net/url"
	"strconv"

	"github.com/technikait/bokser-dashboard-backend/internal/query"
)

type State struct {
	mode      query.Mode
	startDate string
	endDate   string
	term      string

	departments []string
	page        int
	limit       int

	// fetchSeq orders fetches so that a superseded response can be
	// recognized and dropped instead of overwriting newer state.
	fetchSeq int
}

func NewState() *State {
	return &State{mode: query.ModeNone, page: 1, limit: 15}
}

func (s *State) Mode() query.Mode      { return s.mode }
func (s *State) Page() int             { return s.page }
func (s *State) Departments() []string { return s.departments }

// SetDateRange activates date-range mode, clearing any search or
// overdue mode. Both dates are required for the range to be active.
func (s *State) SetDateRange(start, end string) {
	s.term = ""
	s.startDate = start
	s.endDate = end
	if start != "" && end != "" {
		s.mode = query.ModeDateRange
	} else {
		s.mode = query.ModeNone
	}
	s.resetPage()
}

// SetOverdue toggles overdue mode. Activating it clears the date range
// and every search term.
func (s *State) SetOverdue(on bool) {
	if on {
		s.clearNonDepartment()
		s.mode = query.ModeOverdue
	} else if s.mode == query.ModeOverdue {
		s.mode = query.ModeNone
	}
	s.resetPage()
}

// SetSearch activates one of the search modes with the given term. An
// empty term deactivates the mode. Other modes and the date range are
// cleared.
func (s *State) SetSearch(mode query.Mode, term string) {
	switch mode {
	case query.ModeContractorSearch, query.ModeNumberSearch, query.ModeRemarksSearch:
	default:
		return
	}
	s.clearNonDepartment()
	if term != "" {
		s.mode = mode
		s.term = term
	}
	s.resetPage()
}

// SetDepartments replaces the department multi-select. Departments are
// orthogonal: the active mode survives.
func (s *State) SetDepartments(departments []string) {
	s.departments = append([]string(nil), departments...)
	s.resetPage()
}

// SetPage moves pagination without touching filters.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

func (s *State) clearNonDepartment() {
	s.mode = query.ModeNone
	s.startDate = ""
	s.endDate = ""
	s.term = ""
}

func (s *State) resetPage() {
	s.page = 1
}

// Query renders the query-string parameters the case listing accepts
// for the current state.
func (s *State) Query() url.Values {
	v := url.Values{}
	if len(s.departments) > 0 {
		deps := ""
		for i, d := range s.departments {
			if i > 0 {
				deps += ","
			}
			deps += d
		}
		v.Set("departments", deps)
	}
	switch s.mode {
	case query.ModeDateRange:
		v.Set("startDate", s.startDate)
		v.Set("endDate", s.endDate)
	case query.ModeOverdue:
		v.Set("overdueOnly", "true")
	case query.ModeContractorSearch:
		v.Set("contractorSearch", s.term)
	case query.ModeNumberSearch:
		v.Set("numberSearch", s.term)
	case query.ModeRemarksSearch:
		v.Set("remarksSearch", s.term)
	}
	v.Set("page", strconv.Itoa(s.page))
	v.Set("limit", strconv.Itoa(s.limit))
	return v
}

// BeginFetch marks a new in-flight fetch and returns its sequence
// number.
func (s *State) BeginFetch() int {
	s.fetchSeq++
	return s.fetchSeq
}

// Stale reports whether a response belongs to a superseded fetch and
// must not overwrite newer state.
func (s *State) Stale(seq int) bool {
	return seq != s.fetchSeq
}
