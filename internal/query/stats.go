package query

import "time"

// StatsFilter carries the shared filters of the statistics endpoints:
// an optional date range applied to an endpoint-specific column and an
// optional department list.
type StatsFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Departments []string
}

// ApplyDateRange adds the date conditions on col. With both dates the
// range is start-inclusive and end-exclusive (end + 1 day); with only a
// start date it is open-ended.
func (f StatsFilter) ApplyDateRange(b *Builder, col string) {
	switch {
	case f.StartDate != nil && f.EndDate != nil:
		f.applyBoth(b, col)
	case f.StartDate != nil:
		b.And(col + " >= " + b.Bind(*f.StartDate))
	}
}

// ApplyDateRangeBoth adds the date conditions on col only when both
// dates are present. Some reports ignore a lone start date.
func (f StatsFilter) ApplyDateRangeBoth(b *Builder, col string) {
	if f.StartDate != nil && f.EndDate != nil {
		f.applyBoth(b, col)
	}
}

func (f StatsFilter) applyBoth(b *Builder, col string) {
	b.And(col + " >= " + b.Bind(*f.StartDate) +
		" AND " + col + " < " + b.Bind(f.EndDate.AddDate(0, 0, 1)))
}

// ApplyDepartments adds the department IN condition on col.
func (f StatsFilter) ApplyDepartments(b *Builder, col string) {
	b.AndIn(col, f.Departments)
}

// ApplyCompetencyGate restricts active servicers to those holding a
// competency flag matching a selected department. Only meaningful on
// queries that join the active-servicer CTE under the alias aser.
func (f StatsFilter) ApplyCompetencyGate(b *Builder) {
	if cond := CompetencyCondition(f.Departments); cond != "" {
		b.And(cond)
	}
}
