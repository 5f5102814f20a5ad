package model

import "testing"

func TestStatusLabelTotal(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		hasStatus bool
		wantLabel string
		wantClass string
	}{
		{"open", 1, true, "Open", "open"},
		{"in progress", 2, true, "In Progress", "in-progress"},
		{"closed", 3, true, "Closed", "closed"},
		{"unknown code", 4, true, "Unknown", "unknown"},
		{"zero code", 0, true, "Unknown", "unknown"},
		{"null status", 0, false, "Unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLabel(tt.code, tt.hasStatus); got != tt.wantLabel {
				t.Errorf("StatusLabel(%d, %v) = %q, want %q", tt.code, tt.hasStatus, got, tt.wantLabel)
			}
			if got := StatusClass(tt.code, tt.hasStatus); got != tt.wantClass {
				t.Errorf("StatusClass(%d, %v) = %q, want %q", tt.code, tt.hasStatus, got, tt.wantClass)
			}
		})
	}
}
