package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
	"github.com/technikait/bokser-dashboard-backend/internal/query"
	"github.com/technikait/bokser-dashboard-backend/internal/repository"
)

const defaultPageSize = 15

// CaseStore is the slice of the repository the case endpoints need.
type CaseStore interface {
	ListDepartments(ctx context.Context) ([]string, error)
	ListCases(ctx context.Context, f query.CaseFilter) (int, []repository.CaseRow, error)
	ListCaseTasks(ctx context.Context, caseNumber string) ([]repository.TaskRow, error)
	GetCaseDetails(ctx context.Context, caseNumber string) (*repository.CaseDetailsRow, error)
	ListCaseHistory(ctx context.Context, caseNumber string) ([]repository.HistoryRow, error)
	CountOverdueCases(ctx context.Context) (int, error)
}

type CaseHandler struct {
	Store CaseStore
}

func NewCaseHandler(store CaseStore) *CaseHandler {
	return &CaseHandler{Store: store}
}

func (h *CaseHandler) ListDepartments(c *gin.Context) {
	departments, err := h.Store.ListDepartments(c.Request.Context())
	if err != nil {
		log.Println("departments query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, departments)
}

// ListCases serves the paginated, filterable case listing. Filters
// parse into a query.CaseFilter; an empty filter short-circuits to an
// empty page instead of scanning the whole table.
func (h *CaseHandler) ListCases(c *gin.Context) {
	startDate, err := parseDate(c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, use YYYY-MM-DD"})
		return
	}
	endDate, err := parseDate(c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, use YYYY-MM-DD"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	f := query.CaseFilter{
		StartDate:        startDate,
		EndDate:          endDate,
		Departments:      parseDepartments(c.Query("departments")),
		NumberSearch:     c.Query("numberSearch"),
		ContractorSearch: c.Query("contractorSearch"),
		RemarksSearch:    c.Query("remarksSearch"),
		OverdueOnly:      c.Query("overdueOnly") == "true",
		Page:             page,
		Limit:            limit,
	}

	if f.Empty() {
		c.JSON(http.StatusOK, model.CasePage{Items: []model.CaseSummary{}})
		return
	}

	total, rows, err := h.Store.ListCases(c.Request.Context(), f)
	if err != nil {
		log.Println("case listing query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	items := make([]model.CaseSummary, 0, len(rows))
	for _, row := range rows {
		label, class := statusLabels(row.Status)
		items = append(items, model.CaseSummary{
			CaseNumber:     row.CaseNumber,
			Subjects:       splitSubjects(row.Subjects),
			ContractorName: stringOrEmpty(row.ContractorName),
			Acronym:        stringOrEmpty(row.Acronym),
			Contact:        stringOrEmpty(row.Contact),
			PlannedDate:    formatDate(row.PlannedDate),
			PlannedTime:    nullableString(row.PlannedTime),
			ClosedDate:     formatDate(row.ClosedDate),
			StatusLabel:    label,
			StatusClass:    class,
		})
	}

	c.JSON(http.StatusOK, model.CasePage{
		Items:        items,
		TotalRecords: total,
		TotalPages:   totalPages(total, limit),
	})
}

func (h *CaseHandler) ListCaseTasks(c *gin.Context) {
	caseNumber := c.Param("id")
	if caseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing case number"})
		return
	}

	rows, err := h.Store.ListCaseTasks(c.Request.Context(), caseNumber)
	if err != nil {
		log.Println("case tasks query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	tasks := make([]model.CaseTask, 0, len(rows))
	for _, row := range rows {
		label, _ := statusLabels(row.Status)
		tasks = append(tasks, model.CaseTask{
			Activity:      stringOrEmpty(row.Activity),
			Subject:       stringOrEmpty(row.Subject),
			Version:       stringOrEmpty(row.Version),
			Servicer:      stringOrEmpty(row.Servicer),
			CompletedDate: formatDate(row.CompletedDate),
			StatusLabel:   label,
			Remarks:       stringOrEmpty(row.Remarks),
		})
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *CaseHandler) GetCaseDetails(c *gin.Context) {
	caseNumber := c.Param("id")
	if caseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing case number"})
		return
	}

	row, err := h.Store.GetCaseDetails(c.Request.Context(), caseNumber)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	if err != nil {
		log.Println("case details query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, model.CaseDetails{
		Acronym:      stringOrEmpty(row.Acronym),
		ClosedDate:   formatDate(row.ClosedDate),
		Owner:        stringOrEmpty(row.Owner),
		RegisteredBy: stringOrEmpty(row.RegisteredBy),
		Contact:      stringOrEmpty(row.Contact),
		Description:  stringOrEmpty(row.Description),
		AllRemarks:   stringOrEmpty(row.AllRemarks),
		AllSubjects:  stringOrEmpty(row.AllSubjects),
	})
}

func (h *CaseHandler) ListCaseHistory(c *gin.Context) {
	caseNumber := c.Param("id")
	if caseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing case number"})
		return
	}

	rows, err := h.Store.ListCaseHistory(c.Request.Context(), caseNumber)
	if err != nil {
		log.Println("case history query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	entries := make([]model.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		var date *string
		if row.Date.Valid {
			s := row.Date.Time.Format("2006-01-02 15:04:05")
			date = &s
		}
		entries = append(entries, model.HistoryEntry{
			Date:        date,
			Actor:       stringOrEmpty(row.Actor),
			Description: stringOrEmpty(row.Description),
		})
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CaseHandler) OverdueCount(c *gin.Context) {
	count, err := h.Store.CountOverdueCases(c.Request.Context())
	if err != nil {
		log.Println("overdue count query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
