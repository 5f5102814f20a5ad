package model

// StatusCount is one slice of the status-distribution chart. The
// case-number list feeds the drill-down view.
type StatusCount struct {
	Count       int    `json:"count"`
	StatusLabel string `json:"statusLabel"`
	CaseNumbers string `json:"caseNumbers,omitempty"`
}

// ServicerTaskCount is one bar of the servicer-workload chart.
type ServicerTaskCount struct {
	Servicer  string `json:"servicer"`
	TaskCount int    `json:"taskCount"`
}

// SubjectCount is one bar of the top-subjects chart.
type SubjectCount struct {
	Subject   string `json:"subject"`
	TaskCount int    `json:"taskCount"`
}

// MonthSubjectCount is one cell of the yearly review (current year,
// month x subject).
type MonthSubjectCount struct {
	Month     int    `json:"month"`
	Subject   string `json:"subject"`
	TaskCount int    `json:"taskCount"`
}

// CompetencyCount is one cell of the servicer x subject competency
// matrix.
type CompetencyCount struct {
	Servicer  string `json:"servicer"`
	Subject   string `json:"subject"`
	TaskCount int    `json:"taskCount"`
}

// ProgramServicerCount is one cell of the program x servicer chart.
type ProgramServicerCount struct {
	Subject   string `json:"subject"`
	Servicer  string `json:"servicer"`
	TaskCount int    `json:"taskCount"`
}

// ServicerCaseCount is one bar of the closed-case workload chart.
type ServicerCaseCount struct {
	Servicer  string `json:"servicer"`
	CaseCount int    `json:"caseCount"`
}

// VersionCount is one bar of the installed-version distribution, keyed
// by normalized subject family.
type VersionCount struct {
	Subject string `json:"subject"`
	Version string `json:"version"`
	Count   int    `json:"count"`
}

// VersionBreakdown is one row of the per-family version drill-down.
type VersionBreakdown struct {
	Version string `json:"version"`
	Count   int    `json:"count"`
}
