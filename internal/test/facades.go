package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/usecase"
)

// TransactionFacadeStub provides controllable behaviour for transaction endpoints.
type TransactionFacadeStub struct {
	ListFn    func(context.Context, int64) ([]model.Transaction, error)
	CreateFn  func(context.Context, int64, usecase.TransactionInput) (*model.Transaction, error)
	UpdateFn  func(context.Context, int64, int64, usecase.TransactionInput) (int64, error)
	DeleteFn  func(context.Context, int64, int64) (int64, error)
	SummaryFn func(context.Context, int64) (*model.TransactionSummary, error)
}

// Transactions returns predefined records for given user.
func (s TransactionFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Transaction{{
		ID:       1,
		UserID:   userID,
		Type:     model.TransactionTypeIncome,
		Category: "Salary",
		Amount:   decimal.NewFromInt(1000),
		Date:     time.Unix(0, 0).UTC(),
	}}, nil
}

// CreateTransaction delegates to provided function or echoes the input.
func (s TransactionFacadeStub) CreateTransaction(ctx context.Context, userID int64, in usecase.TransactionInput) (*model.Transaction, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, in)
	}
	return &model.Transaction{
		ID:       1,
		UserID:   userID,
		Type:     model.TransactionType(in.Type),
		Category: in.Category,
		Amount:   in.Amount,
		Note:     in.Note,
	}, nil
}

// UpdateTransaction reports one affected row by default.
func (s TransactionFacadeStub) UpdateTransaction(ctx context.Context, userID, id int64, in usecase.TransactionInput) (int64, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, id, in)
	}
	return 1, nil
}

// DeleteTransaction reports one affected row by default.
func (s TransactionFacadeStub) DeleteTransaction(ctx context.Context, userID, id int64) (int64, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, id)
	}
	return 1, nil
}

// TransactionSummary returns configured totals.
func (s TransactionFacadeStub) TransactionSummary(ctx context.Context, userID int64) (*model.TransactionSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	return &model.TransactionSummary{}, nil
}

// HealthFacadeStub reports configured storage availability.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// FinanceFacadeStub aggregates facade dependencies for HTTP layer tests.
type FinanceFacadeStub struct {
	AuthFacadeStub
	TransactionFacadeStub
	HealthFacadeStub
}
