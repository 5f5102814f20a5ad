package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
	"github.com/technikait/bokser-dashboard-backend/internal/query"
	"github.com/technikait/bokser-dashboard-backend/internal/repository"
)

type fakeStatsStore struct {
	lastFilter  query.StatsFilter
	lastSubject string
	lastVersion string

	statusRows    []repository.StatusCountRow
	breakdownRows []repository.VersionBreakdownRow
	contractors   []string
}

func (f *fakeStatsStore) StatusDistribution(ctx context.Context, filter query.StatsFilter) ([]repository.StatusCountRow, error) {
	f.lastFilter = filter
	return f.statusRows, nil
}

func (f *fakeStatsStore) ServicerWorkload(ctx context.Context, filter query.StatsFilter) ([]repository.ServicerTaskCountRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStatsStore) TopSubjects(ctx context.Context, filter query.StatsFilter) ([]repository.SubjectCountRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStatsStore) YearlyReview(ctx context.Context, filter query.StatsFilter) ([]repository.MonthSubjectCountRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStatsStore) CompetencyMatrix(ctx context.Context, filter query.StatsFilter) ([]repository.CompetencyCountRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStatsStore) ProgramServicer(ctx context.Context, filter query.StatsFilter) ([]repository.ProgramServicerCountRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStatsStore) CaseWorkload(ctx context.Context, filter query.StatsFilter) ([]repository.ServicerCaseCountRow, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeStatsStore) CurrentVersions(ctx context.Context) ([]repository.VersionCountRow, error) {
	return nil, nil
}

func (f *fakeStatsStore) VersionBreakdown(ctx context.Context, subject string) ([]repository.VersionBreakdownRow, error) {
	f.lastSubject = subject
	return f.breakdownRows, nil
}

func (f *fakeStatsStore) ContractorsByVersion(ctx context.Context, subject, version string) ([]string, error) {
	f.lastSubject = subject
	f.lastVersion = version
	return f.contractors, nil
}

func newStatsRouter(store StatsStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStatsHandler(store)
	r := gin.New()
	r.GET("/api/stats/status", h.StatusDistribution)
	r.GET("/api/stats/servicer-workload", h.ServicerWorkload)
	r.GET("/api/stats/version-breakdown", h.VersionBreakdown)
	r.GET("/api/stats/contractors-by-version", h.ContractorsByVersion)
	return r
}

func TestStatusDistributionShaping(t *testing.T) {
	store := &fakeStatsStore{statusRows: []repository.StatusCountRow{
		{Status: sql.NullInt64{Int64: 2, Valid: true}, Count: 4, CaseNumbers: sql.NullString{String: "SPR/01, SPR/02", Valid: true}},
		{Status: sql.NullInt64{}, Count: 1},
	}}
	r := newStatsRouter(store)

	w := doGet(t, r, "/api/stats/status?startDate=2024-01-01&endDate=2024-01-31&departments=U1S,U3E")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var out []model.StatusCount
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("rows = %d", len(out))
	}
	if out[0].StatusLabel != "In Progress" || out[0].CaseNumbers != "SPR/01, SPR/02" {
		t.Fatalf("row shaping wrong: %+v", out[0])
	}
	if out[1].StatusLabel != "Unknown" {
		t.Fatalf("null status should map to Unknown, got %q", out[1].StatusLabel)
	}

	f := store.lastFilter
	if f.StartDate == nil || f.EndDate == nil || len(f.Departments) != 2 {
		t.Fatalf("filter not forwarded: %+v", f)
	}
}

func TestStatsFilterBadDate(t *testing.T) {
	r := newStatsRouter(&fakeStatsStore{})
	if w := doGet(t, r, "/api/stats/servicer-workload?startDate=31.01.2024"); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestVersionBreakdownMissingSubject(t *testing.T) {
	r := newStatsRouter(&fakeStatsStore{})
	if w := doGet(t, r, "/api/stats/version-breakdown"); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestVersionBreakdown(t *testing.T) {
	store := &fakeStatsStore{breakdownRows: []repository.VersionBreakdownRow{
		{Version: "7.12.0", Count: 9},
	}}
	r := newStatsRouter(store)

	w := doGet(t, r, "/api/stats/version-breakdown?subject=PB_EWID")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if store.lastSubject != "PB_EWID" {
		t.Fatalf("subject = %q", store.lastSubject)
	}
	var out []model.VersionBreakdown
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Version != "7.12.0" || out[0].Count != 9 {
		t.Fatalf("breakdown shaping wrong: %+v", out)
	}
}

func TestContractorsByVersionMissingParams(t *testing.T) {
	r := newStatsRouter(&fakeStatsStore{})
	for _, path := range []string{
		"/api/stats/contractors-by-version",
		"/api/stats/contractors-by-version?subject=PB_EWID",
		"/api/stats/contractors-by-version?version=7.12.0",
	} {
		if w := doGet(t, r, path); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, w.Code)
		}
	}
}

func TestContractorsByVersion(t *testing.T) {
	store := &fakeStatsStore{contractors: []string{"UMWAW", "UMKRK"}}
	r := newStatsRouter(store)

	w := doGet(t, r, "/api/stats/contractors-by-version?subject=PB_EWID&version=7.12.0")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if store.lastSubject != "PB_EWID" || store.lastVersion != "7.12.0" {
		t.Fatalf("params = %q/%q", store.lastSubject, store.lastVersion)
	}
	var names []string
	if err := json.Unmarshal(w.Body.Bytes(), &names); err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("names = %v", names)
	}
}
