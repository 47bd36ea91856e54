package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known enum values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction describes a single income or expense record owned by one user.
type Transaction struct {
	ID        int64
	UserID    int64
	Type      TransactionType
	Category  string
	Amount    decimal.Decimal
	Note      string
	Date      time.Time
	CreatedAt time.Time
}

// TransactionSummary aggregates a user's totals.
type TransactionSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}
