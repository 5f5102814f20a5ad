package handlers

import (
	"database/sql"
	"strings"
	"time"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
)

const dateLayout = "2006-01-02"

// parseDate parses an optional ISO date parameter. ("", nil, nil) when
// the parameter is absent.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDepartments splits the comma-separated department list,
// dropping empty entries.
func parseDepartments(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formatDate renders a nullable date as "2006-01-02".
func formatDate(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(dateLayout)
	return &s
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// statusLabels maps a nullable status code through the fixed mapping.
func statusLabels(status sql.NullInt64) (label, class string) {
	return model.StatusLabel(int(status.Int64), status.Valid),
		model.StatusClass(int(status.Int64), status.Valid)
}

// totalPages is ceil(totalRecords / limit) for a positive limit.
func totalPages(totalRecords, limit int) int {
	if totalRecords <= 0 {
		return 0
	}
	return (totalRecords + limit - 1) / limit
}

// splitSubjects turns the aggregated subject column into a list.
func splitSubjects(s sql.NullString) []string {
	if !s.Valid || s.String == "" {
		return []string{}
	}
	return strings.Split(s.String, "\n")
}
