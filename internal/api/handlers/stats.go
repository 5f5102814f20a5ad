package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
	"github.com/technikait/bokser-dashboard-backend/internal/query"
	"github.com/technikait/bokser-dashboard-backend/internal/repository"
)

// StatsStore is the slice of the repository the statistics endpoints
// need.
type StatsStore interface {
	StatusDistribution(ctx context.Context, f query.StatsFilter) ([]repository.StatusCountRow, error)
	ServicerWorkload(ctx context.Context, f query.StatsFilter) ([]repository.ServicerTaskCountRow, error)
	TopSubjects(ctx context.Context, f query.StatsFilter) ([]repository.SubjectCountRow, error)
	YearlyReview(ctx context.Context, f query.StatsFilter) ([]repository.MonthSubjectCountRow, error)
	CompetencyMatrix(ctx context.Context, f query.StatsFilter) ([]repository.CompetencyCountRow, error)
	ProgramServicer(ctx context.Context, f query.StatsFilter) ([]repository.ProgramServicerCountRow, error)
	CaseWorkload(ctx context.Context, f query.StatsFilter) ([]repository.ServicerCaseCountRow, error)
	CurrentVersions(ctx context.Context) ([]repository.VersionCountRow, error)
	VersionBreakdown(ctx context.Context, subject string) ([]repository.VersionBreakdownRow, error)
	ContractorsByVersion(ctx context.Context, subject, version string) ([]string, error)
}

type StatsHandler struct {
	Store StatsStore
}

func NewStatsHandler(store StatsStore) *StatsHandler {
	return &StatsHandler{Store: store}
}

// parseStatsFilter reads the shared date/department parameters. On a
// malformed date it responds 400 and reports false.
func parseStatsFilter(c *gin.Context) (query.StatsFilter, bool) {
	startDate, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, use YYYY-MM-DD"})
		return query.StatsFilter{}, false
	}
	endDate, err := parseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, use YYYY-MM-DD"})
		return query.StatsFilter{}, false
	}
	return query.StatsFilter{
		StartDate:   startDate,
		EndDate:     endDate,
		Departments: parseDepartments(c.Query("departments")),
	}, true
}

func serverError(c *gin.Context, what string, err error) {
	log.Printf("%s query failed: %v", what, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

func (h *StatsHandler) StatusDistribution(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.StatusDistribution(c.Request.Context(), f)
	if err != nil {
		serverError(c, "status distribution", err)
		return
	}
	out := make([]model.StatusCount, 0, len(rows))
	for _, row := range rows {
		label, _ := statusLabels(row.Status)
		out = append(out, model.StatusCount{
			Count:       row.Count,
			StatusLabel: label,
			CaseNumbers: stringOrEmpty(row.CaseNumbers),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) ServicerWorkload(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.ServicerWorkload(c.Request.Context(), f)
	if err != nil {
		serverError(c, "servicer workload", err)
		return
	}
	out := make([]model.ServicerTaskCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ServicerTaskCount{Servicer: row.Servicer, TaskCount: row.TaskCount})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) TopSubjects(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.TopSubjects(c.Request.Context(), f)
	if err != nil {
		serverError(c, "top subjects", err)
		return
	}
	out := make([]model.SubjectCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.SubjectCount{Subject: row.Subject, TaskCount: row.TaskCount})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) YearlyReview(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.YearlyReview(c.Request.Context(), f)
	if err != nil {
		serverError(c, "yearly review", err)
		return
	}
	out := make([]model.MonthSubjectCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.MonthSubjectCount{Month: row.Month, Subject: row.Subject, TaskCount: row.TaskCount})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) Competencies(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.CompetencyMatrix(c.Request.Context(), f)
	if err != nil {
		serverError(c, "competency matrix", err)
		return
	}
	out := make([]model.CompetencyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CompetencyCount{Servicer: row.Servicer, Subject: row.Subject, TaskCount: row.TaskCount})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) ProgramServicer(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.ProgramServicer(c.Request.Context(), f)
	if err != nil {
		serverError(c, "program-servicer", err)
		return
	}
	out := make([]model.ProgramServicerCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ProgramServicerCount{Subject: row.Subject, Servicer: row.Servicer, TaskCount: row.TaskCount})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) CaseWorkload(c *gin.Context) {
	f, ok := parseStatsFilter(c)
	if !ok {
		return
	}
	rows, err := h.Store.CaseWorkload(c.Request.Context(), f)
	if err != nil {
		serverError(c, "case workload", err)
		return
	}
	out := make([]model.ServicerCaseCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.ServicerCaseCount{Servicer: row.Servicer, CaseCount: row.CaseCount})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) CurrentVersions(c *gin.Context) {
	rows, err := h.Store.CurrentVersions(c.Request.Context())
	if err != nil {
		serverError(c, "current versions", err)
		return
	}
	out := make([]model.VersionCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.VersionCount{Subject: row.Subject, Version: row.Version, Count: row.Count})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) VersionBreakdown(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing subject parameter"})
		return
	}
	rows, err := h.Store.VersionBreakdown(c.Request.Context(), subject)
	if err != nil {
		serverError(c, "version breakdown", err)
		return
	}
	out := make([]model.VersionBreakdown, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.VersionBreakdown{Version: row.Version, Count: row.Count})
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsHandler) ContractorsByVersion(c *gin.Context) {
	subject := c.Query("subject")
	version := c.Query("version")
	if subject == "" || version == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing subject or version parameter"})
		return
	}
	names, err := h.Store.ContractorsByVersion(c.Request.Context(), subject, version)
	if err != nil {
		serverError(c, "contractors by version", err)
		return
	}
	c.JSON(http.StatusOK, names)
}
