package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technikait/bokser-dashboard-backend/internal/model"
	"github.com/technikait/bokser-dashboard-backend/internal/repository"
)

// ContractorStore is the slice of the repository the contractor
// endpoints need.
type ContractorStore interface {
	GetContractor(ctx context.Context, acronym string) (*repository.ContractorRow, error)
	ListContracts(ctx context.Context, acronym string) ([]repository.ContractRow, error)
	ListContractorContacts(ctx context.Context, acronym string) ([]string, error)
}

type ContractorHandler struct {
	Store ContractorStore
}

func NewContractorHandler(store ContractorStore) *ContractorHandler {
	return &ContractorHandler{Store: store}
}

// GetContractor returns the contractor detail record with its
// contracts. A contractor without contracts gets an empty list, not an
// error.
func (h *ContractorHandler) GetContractor(c *gin.Context) {
	acronym := c.Param("acronym")

	row, err := h.Store.GetContractor(c.Request.Context(), acronym)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "contractor not found"})
		return
	}
	if err != nil {
		log.Println("contractor query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	contractRows, err := h.Store.ListContracts(c.Request.Context(), acronym)
	if err != nil {
		log.Println("contracts query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	contracts := make([]model.Contract, 0, len(contractRows))
	for _, cr := range contractRows {
		contracts = append(contracts, model.Contract{
			Subject:    stringOrEmpty(cr.Subject),
			ExpiryDate: formatDate(cr.ExpiryDate),
			Remarks:    stringOrEmpty(cr.Remarks),
			ServicedBy: stringOrEmpty(cr.ServicedBy),
		})
	}

	c.JSON(http.StatusOK, model.Contractor{
		Acronym:    row.Acronym,
		Name:       stringOrEmpty(row.Name),
		City:       stringOrEmpty(row.City),
		Address:    stringOrEmpty(row.Address),
		Phone:      stringOrEmpty(row.Phone),
		Email:      stringOrEmpty(row.Email),
		PostalCode: stringOrEmpty(row.PostalCode),
		USCID:      stringOrEmpty(row.USCID),
		Contracts:  contracts,
	})
}

func (h *ContractorHandler) ListContacts(c *gin.Context) {
	acronym := c.Param("acronym")

	contacts, err := h.Store.ListContractorContacts(c.Request.Context(), acronym)
	if err != nil {
		log.Println("contacts query failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}
