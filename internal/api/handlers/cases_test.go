package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
	"github.com/technikait/bokser-dashboard-backend/internal/query"
	"github.com/technikait/bokser-dashboard-backend/internal/repository"
)

type fakeCaseStore struct {
	listCalls  int
	lastFilter query.CaseFilter

	total   int
	rows    []repository.CaseRow
	tasks   []repository.TaskRow
	details *repository.CaseDetailsRow
	history []repository.HistoryRow
	overdue int

	err error
}

func (f *fakeCaseStore) ListDepartments(ctx context.Context) ([]string, error) {
	return []string{"U1S", "U3E", "U3S"}, f.err
}

func (f *fakeCaseStore) ListCases(ctx context.Context, filter query.CaseFilter) (int, []repository.CaseRow, error) {
	f.listCalls++
	f.lastFilter = filter
	return f.total, f.rows, f.err
}

func (f *fakeCaseStore) ListCaseTasks(ctx context.Context, caseNumber string) ([]repository.TaskRow, error) {
	return f.tasks, f.err
}

func (f *fakeCaseStore) GetCaseDetails(ctx context.Context, caseNumber string) (*repository.CaseDetailsRow, error) {
	if f.details == nil {
		return nil, sql.ErrNoRows
	}
	return f.details, f.err
}

func (f *fakeCaseStore) ListCaseHistory(ctx context.Context, caseNumber string) ([]repository.HistoryRow, error) {
	return f.history, f.err
}

func (f *fakeCaseStore) CountOverdueCases(ctx context.Context) (int, error) {
	return f.overdue, f.err
}

func newCaseRouter(store CaseStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCaseHandler(store)
	r := gin.New()
	r.GET("/api/departments", h.ListDepartments)
	r.GET("/api/cases", h.ListCases)
	r.GET("/api/cases/overdue-count", h.OverdueCount)
	r.GET("/api/cases/:id/tasks", h.ListCaseTasks)
	r.GET("/api/cases/:id/details", h.GetCaseDetails)
	r.GET("/api/cases/:id/history", h.ListCaseHistory)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListCasesPagination(t *testing.T) {
	store := &fakeCaseStore{total: 20}
	for i := 0; i < 15; i++ {
		store.rows = append(store.rows, repository.CaseRow{
			CaseNumber: fmt.Sprintf("SPR/%02d", i+1),
			Status:     sql.NullInt64{Int64: 1, Valid: true},
		})
	}
	r := newCaseRouter(store)

	w := doGet(t, r, "/api/cases?departments=U1S&page=1&limit=15")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var page model.CasePage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 15 {
		t.Fatalf("items = %d, want 15", len(page.Items))
	}
	if page.TotalRecords != 20 || page.TotalPages != 2 {
		t.Fatalf("totals = %d/%d, want 20/2", page.TotalRecords, page.TotalPages)
	}
	if page.Items[0].StatusLabel != "Open" || page.Items[0].StatusClass != "open" {
		t.Fatalf("status shaping wrong: %+v", page.Items[0])
	}

	got := store.lastFilter
	if len(got.Departments) != 1 || got.Departments[0] != "U1S" {
		t.Fatalf("departments = %v", got.Departments)
	}
	if got.Mode() != query.ModeNone {
		t.Fatalf("mode = %v, want none (department-only listing)", got.Mode())
	}
}

func TestListCasesEmptyFilterGuard(t *testing.T) {
	store := &fakeCaseStore{total: 999}
	r := newCaseRouter(store)

	w := doGet(t, r, "/api/cases")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var page model.CasePage
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 0 || page.TotalRecords != 0 || page.TotalPages != 0 {
		t.Fatalf("unfiltered listing must be empty, got %+v", page)
	}
	if store.listCalls != 0 {
		t.Fatal("unfiltered listing must not hit the database")
	}
}

func TestListCasesBadParams(t *testing.T) {
	r := newCaseRouter(&fakeCaseStore{})

	for _, path := range []string{
		"/api/cases?startDate=01-02-2024",
		"/api/cases?endDate=nope",
		"/api/cases?departments=U1S&page=0",
		"/api/cases?departments=U1S&limit=-5",
		"/api/cases?departments=U1S&limit=abc",
	} {
		if w := doGet(t, r, path); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestListCasesSearchMode(t *testing.T) {
	store := &fakeCaseStore{}
	r := newCaseRouter(store)

	w := doGet(t, r, "/api/cases?contractorSearch=Krak%C3%B3w&numberSearch=77")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	// contractor search outranks number search
	if store.lastFilter.Mode() != query.ModeContractorSearch {
		t.Fatalf("mode = %v", store.lastFilter.Mode())
	}
}

func TestGetCaseDetailsNotFound(t *testing.T) {
	r := newCaseRouter(&fakeCaseStore{details: nil})
	if w := doGet(t, r, "/api/cases/SPR%2F01/details"); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetCaseDetails(t *testing.T) {
	store := &fakeCaseStore{details: &repository.CaseDetailsRow{
		Acronym:     sql.NullString{String: "UMWAW", Valid: true},
		AllRemarks:  sql.NullString{String: "done\r\n--------------------\r\nretested", Valid: true},
		AllSubjects: sql.NullString{String: "PB_USC", Valid: true},
	}}
	r := newCaseRouter(store)

	w := doGet(t, r, "/api/cases/SPR-01/details")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var d model.CaseDetails
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatal(err)
	}
	if d.Acronym != "UMWAW" || d.AllSubjects != "PB_USC" {
		t.Fatalf("details shaping wrong: %+v", d)
	}
}

func TestOverdueCount(t *testing.T) {
	r := newCaseRouter(&fakeCaseStore{overdue: 7})
	w := doGet(t, r, "/api/cases/overdue-count")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["count"] != 7 {
		t.Fatalf("count = %d, want 7", body["count"])
	}
}

func TestListDepartments(t *testing.T) {
	r := newCaseRouter(&fakeCaseStore{})
	w := doGet(t, r, "/api/departments")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var deps []string
	if err := json.Unmarshal(w.Body.Bytes(), &deps); err != nil {
		t.Fatal(err)
	}
	if len(deps) != 3 {
		t.Fatalf("departments = %v", deps)
	}
}
