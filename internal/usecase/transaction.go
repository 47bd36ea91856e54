package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/domain/repository"
)

// TransactionInput carries the user-supplied fields of a transaction before
// validation. Date stays a string until parsed.
type TransactionInput struct {
	Type     string
	Category string
	Amount   decimal.Decimal
	Note     string
	Date     string
}

// TransactionUseCase manages owner-scoped transaction records.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
}

// NewTransactionUseCase constructs TransactionUseCase.
func NewTransactionUseCase(t repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{transactions: t}
}

// ListByUser returns the user's transactions, newest date first.
func (u *TransactionUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return u.transactions.ListByUser(ctx, userID)
}

// Create validates input and stores a new transaction for the user.
func (u *TransactionUseCase) Create(ctx context.Context, userID int64, in TransactionInput) (*model.Transaction, error) {
	t, err := buildTransaction(userID, in)
	if err != nil {
		return nil, err
	}
	return u.transactions.Create(ctx, *t)
}

// Update replaces a transaction keyed by (id, user id) and returns the
// affected row count. Zero means the record is missing or foreign; that is
// reported as success with no effect.
func (u *TransactionUseCase) Update(ctx context.Context, userID, id int64, in TransactionInput) (int64, error) {
	if id == 0 {
		return 0, domainErrors.ErrMissingFields
	}
	t, err := buildTransaction(userID, in)
	if err != nil {
		return 0, err
	}
	t.ID = id
	return u.transactions.Update(ctx, *t)
}

// Delete removes a transaction keyed by (id, user id) with the same silent
// no-op semantics as Update.
func (u *TransactionUseCase) Delete(ctx context.Context, userID, id int64) (int64, error) {
	if id == 0 {
		return 0, domainErrors.ErrMissingFields
	}
	return u.transactions.Delete(ctx, id, userID)
}

// Summary aggregates income/expense totals for the user.
func (u *TransactionUseCase) Summary(ctx context.Context, userID int64) (*model.TransactionSummary, error) {
	return u.transactions.Summary(ctx, userID)
}

func buildTransaction(userID int64, in TransactionInput) (*model.Transaction, error) {
	in.Type = strings.TrimSpace(in.Type)
	in.Category = strings.TrimSpace(in.Category)
	if in.Type == "" || in.Category == "" || in.Amount.IsZero() || in.Date == "" {
		return nil, domainErrors.ErrMissingFields
	}

	txType := model.TransactionType(in.Type)
	if !txType.Valid() {
		return nil, domainErrors.ErrInvalidTransactionType
	}

	if in.Amount.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	y, m, d := date.Date()

	return &model.Transaction{
		UserID:   userID,
		Type:     txType,
		Category: in.Category,
		Amount:   in.Amount,
		Note:     in.Note,
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}, nil
}
