package controllers

import (
	"net/http"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/services"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

type TransactionController struct {
	transactionService services.TransactionService
	earningsService    services.EarningsService
}

func NewTransactionController(
	transactionService services.TransactionService,
	earningsService services.EarningsService,
) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		earningsService:    earningsService,
	}
}

func (c *TransactionController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateTransactionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := c.transactionService.CreateTransaction(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithEnvelope(w, http.StatusCreated, "Transaction recorded", detail)
}

func (c *TransactionController) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustUserID(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := c.transactionService.GetTransaction(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Transaction retrieved", detail)
}

func (c *TransactionController) GetInvoice(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustUserID(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	inv, err := c.transactionService.GetInvoice(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Invoice retrieved", inv)
}

func (c *TransactionController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	txns, err := c.transactionService.ListUserTransactions(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Transactions retrieved", txns)
}

func (c *TransactionController) ListAll(w http.ResponseWriter, r *http.Request) {
	txns, err := c.transactionService.ListAllTransactions(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Transactions retrieved", txns)
}

func (c *TransactionController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustUserID(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdateTransactionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	txn, err := c.transactionService.UpdateTransaction(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Transaction updated", txn)
}

func (c *TransactionController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.transactionService.DeleteTransaction(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Transaction deleted", nil)
}

// Earnings returns the four-figure summary for the authenticated seller.
func (c *TransactionController) Earnings(w http.ResponseWriter, r *http.Request) {
	userID, ok := mustUserID(w, r)
	if !ok {
		return
	}

	summary, err := c.earningsService.GetEarningsSummary(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithEnvelope(w, http.StatusOK, "Earnings summary retrieved", summary)
}
