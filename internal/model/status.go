package model

// Case and task status codes as stored in the database.
const (
	StatusOpen       = 1
	StatusInProgress = 2
	StatusClosed     = 3
)

// StatusLabel maps a status code to its display label. The mapping is
// total: anything outside the known codes is Unknown, including NULL
// statuses (pass hasStatus=false).
func StatusLabel(code int, hasStatus bool) string {
	if !hasStatus {
		return "Unknown"
	}
	switch code {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In Progress"
	case StatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// StatusClass maps a status code to the display class the dashboard
// styles rows and chart slices with.
func StatusClass(code int, hasStatus bool) string {
	if !hasStatus {
		return "unknown"
	}
	switch code {
	case StatusOpen:
		return "open"
	case StatusInProgress:
		return "in-progress"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}
