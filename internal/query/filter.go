package query

import "time"

// Mode is the single "special" filter active on a case listing. The
// department list is orthogonal and combines with every mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeDateRange
	ModeOverdue
	ModeContractorSearch
	ModeNumberSearch
	ModeRemarksSearch
)

func (m Mode) String() string {
	switch m {
	case ModeDateRange:
		return "date-range"
	case ModeOverdue:
		return "overdue"
	case ModeContractorSearch:
		return "contractor-search"
	case ModeNumberSearch:
		return "number-search"
	case ModeRemarksSearch:
		return "remarks-search"
	default:
		return "none"
	}
}

// CaseFilter carries the optional filters of a case listing request.
type CaseFilter struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Departments      []string
	NumberSearch     string
	ContractorSearch string
	RemarksSearch    string
	OverdueOnly      bool
	Page             int
	Limit            int
}

// Mode resolves which special filter applies. Priority is fixed:
// overdue, then contractor-city search, then case-number search, then
// remarks search. The date range only applies when no special filter is
// set and both dates are present.
func (f CaseFilter) Mode() Mode {
	switch {
	case f.OverdueOnly:
		return ModeOverdue
	case f.ContractorSearch != "":
		return ModeContractorSearch
	case f.NumberSearch != "":
		return ModeNumberSearch
	case f.RemarksSearch != "":
		return ModeRemarksSearch
	case f.StartDate != nil && f.EndDate != nil:
		return ModeDateRange
	default:
		return ModeNone
	}
}

// Empty reports whether the filter would match the whole table: no
// departments, no special filter and no complete date range. Listings
// with an empty filter return an empty page instead of scanning.
func (f CaseFilter) Empty() bool {
	return len(f.Departments) == 0 && f.Mode() == ModeNone
}

// Apply adds the filter's conditions to b. Table aliases follow the
// listing query: s = cases, k = contractors, z = tasks.
func (f CaseFilter) Apply(b *Builder) {
	b.AndIn("s.dzial", f.Departments)

	switch f.Mode() {
	case ModeOverdue:
		b.And("s.data_plan < now() AND s.status IN (1, 2)")
	case ModeContractorSearch:
		b.And("k.miasto LIKE " + b.Bind("%"+f.ContractorSearch+"%"))
	case ModeNumberSearch:
		b.And("s.nr_sprawy LIKE " + b.Bind("%"+f.NumberSearch+"%"))
	case ModeRemarksSearch:
		b.And("z.uwagi LIKE " + b.Bind("%"+f.RemarksSearch+"%"))
	case ModeDateRange:
		b.And("s.data_plan >= " + b.Bind(*f.StartDate) +
			" AND s.data_plan < " + b.Bind(f.EndDate.AddDate(0, 0, 1)))
	}
}

// Offset is the row offset of the requested page.
func (f CaseFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
