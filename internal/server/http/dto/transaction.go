package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRequest describes create/update payloads. Amount is a decimal
// so both `"1000"` and `1000` parse; Date stays a string until validated.
type TransactionRequest struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
}

// DeleteTransactionRequest carries the id of the record to remove.
type DeleteTransactionRequest struct {
	ID int64 `json:"id"`
}

// TransactionResponse is a stored transaction as returned to clients.
// Amount serializes as a JSON number.
type TransactionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTransactionResponse wraps a created transaction.
type CreateTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// UpdateResult reports how many rows an update touched.
type UpdateResult struct {
	Count int64 `json:"count"`
}

// UpdateTransactionResponse mirrors the permissive update contract: zero
// affected rows is still a success.
type UpdateTransactionResponse struct {
	Message     string       `json:"message"`
	Transaction UpdateResult `json:"transaction"`
}

// SummaryResponse aggregates per-user totals.
type SummaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
