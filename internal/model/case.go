package model

// CaseSummary is one row of the paginated case listing.
type CaseSummary struct {
	CaseNumber     string   `json:"caseNumber"`
	Subjects       []string `json:"subjects"`
	ContractorName string   `json:"contractorName,omitempty"`
	Acronym        string   `json:"acronym,omitempty"`
	Contact        string   `json:"contact,omitempty"`
	PlannedDate    *string  `json:"plannedDate"`
	PlannedTime    *string  `json:"plannedTime"`
	ClosedDate     *string  `json:"closedDate"`
	StatusLabel    string   `json:"statusLabel"`
	StatusClass    string   `json:"statusClass"`
}

// CasePage is the case listing response envelope.
type CasePage struct {
	Items        []CaseSummary `json:"items"`
	TotalRecords int           `json:"totalRecords"`
	TotalPages   int           `json:"totalPages"`
}

// CaseTask is one task row under a case.
type CaseTask struct {
	Activity      string  `json:"activity,omitempty"`
	Subject       string  `json:"subject,omitempty"`
	Version       string  `json:"version,omitempty"`
	Servicer      string  `json:"servicer,omitempty"`
	CompletedDate *string `json:"completedDate"`
	StatusLabel   string  `json:"statusLabel"`
	Remarks       string  `json:"remarks,omitempty"`
}

// CaseDetails is the single-case detail record used by the print view.
type CaseDetails struct {
	Acronym      string  `json:"acronym,omitempty"`
	ClosedDate   *string `json:"closedDate"`
	Owner        string  `json:"owner,omitempty"`
	RegisteredBy string  `json:"registeredBy,omitempty"`
	Contact      string  `json:"contact,omitempty"`
	Description  string  `json:"description,omitempty"`
	AllRemarks   string  `json:"allRemarks,omitempty"`
	AllSubjects  string  `json:"allSubjects,omitempty"`
}

// HistoryEntry is one operation-log row of a case.
type HistoryEntry struct {
	Date        *string `json:"date"`
	Actor       string  `json:"actor,omitempty"`
	Description string  `json:"description,omitempty"`
}
