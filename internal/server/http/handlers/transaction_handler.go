package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/server/http/dto"
	"github.com/polkiloo/fintrack/internal/usecase"
)

// TransactionHandler manages owner-scoped transaction endpoints.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// List handles GET /transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	transactions, err := h.facade.Transactions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, toTransactionResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	transaction, err := h.facade.CreateTransaction(c.Request.Context(), userID, toInput(req))
	if err != nil {
		writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Message:     "Transaction created",
		Transaction: toTransactionResponse(*transaction),
	})
}

// Update handles PUT /transactions. A zero affected count is still a
// success: the record either never existed or belongs to another user.
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	count, err := h.facade.UpdateTransaction(c.Request.Context(), userID, req.ID, toInput(req))
	if err != nil {
		writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateTransactionResponse{
		Message:     "Transaction updated",
		Transaction: dto.UpdateResult{Count: count},
	})
}

// Delete handles DELETE /transactions, with the same silent no-op contract
// as Update.
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.DeleteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Transaction ID required"})
		return
	}

	if _, err := h.facade.DeleteTransaction(c.Request.Context(), userID, req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// Summary handles GET /transactions/summary.
func (h *TransactionHandler) Summary(c *gin.Context) {
	userID := CurrentUserID(c)
	summary, err := h.facade.TransactionSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Income:  summary.Income.InexactFloat64(),
		Expense: summary.Expense.InexactFloat64(),
		Balance: summary.Balance.InexactFloat64(),
	})
}

func toInput(req dto.TransactionRequest) usecase.TransactionInput {
	return usecase.TransactionInput{
		Type:     req.Type,
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
		Date:     req.Date,
	}
}

func writeTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrMissingFields):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
	case errors.Is(err, domainErrors.ErrInvalidTransactionType):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction type"})
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount"})
	case errors.Is(err, domainErrors.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
	}
}
