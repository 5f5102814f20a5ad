package handlers

import (
	"database/sql"
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 15, 0},
		{1, 15, 1},
		{15, 15, 1},
		{16, 15, 2},
		{20, 15, 2},
		{30, 15, 2},
		{31, 15, 3},
		{7, 1, 7},
	}
	for _, tt := range tests {
		if got := totalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestParseDepartments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"U1S", []string{"U1S"}},
		{"U1S,U3S,U3E", []string{"U1S", "U3S", "U3E"}},
		{"U1S,,U3S", []string{"U1S", "U3S"}},
	}
	for _, tt := range tests {
		if got := parseDepartments(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseDepartments(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitSubjects(t *testing.T) {
	if got := splitSubjects(sql.NullString{}); len(got) != 0 {
		t.Fatalf("null subjects should split to empty list, got %v", got)
	}
	got := splitSubjects(sql.NullString{String: "PB_USC\ntEZD", Valid: true})
	if !reflect.DeepEqual(got, []string{"PB_USC", "tEZD"}) {
		t.Fatalf("splitSubjects = %v", got)
	}
}

func TestParseDate(t *testing.T) {
	if d, err := parseDate(""); err != nil || d != nil {
		t.Fatal("empty date should parse to nil")
	}
	if _, err := parseDate("31-01-2024"); err == nil {
		t.Fatal("non-ISO date should fail")
	}
	d, err := parseDate("2024-01-31")
	if err != nil || d == nil {
		t.Fatalf("valid date rejected: %v", err)
	}
}
