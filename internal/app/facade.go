package app

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/usecase"
)

// StorageHealth reports persistence availability.
type StorageHealth interface {
	HealthCheck(ctx context.Context) error
}

// FinanceFacade is the single entry point the HTTP layer talks to.
type FinanceFacade struct {
	auth         *usecase.AuthUseCase
	transactions *usecase.TransactionUseCase
	storage      StorageHealth
}

// NewFinanceFacade constructs FinanceFacade.
func NewFinanceFacade(auth *usecase.AuthUseCase, transactions *usecase.TransactionUseCase, storage StorageHealth) *FinanceFacade {
	return &FinanceFacade{auth: auth, transactions: transactions, storage: storage}
}

func (f *FinanceFacade) SignUp(ctx context.Context, email, password, name string) (*model.User, error) {
	return f.auth.Register(ctx, email, password, name)
}

func (f *FinanceFacade) SignIn(ctx context.Context, email, password string) (string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *FinanceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *FinanceFacade) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return f.transactions.ListByUser(ctx, userID)
}

func (f *FinanceFacade) CreateTransaction(ctx context.Context, userID int64, in usecase.TransactionInput) (*model.Transaction, error) {
	return f.transactions.Create(ctx, userID, in)
}

func (f *FinanceFacade) UpdateTransaction(ctx context.Context, userID, id int64, in usecase.TransactionInput) (int64, error) {
	return f.transactions.Update(ctx, userID, id, in)
}

func (f *FinanceFacade) DeleteTransaction(ctx context.Context, userID, id int64) (int64, error) {
	return f.transactions.Delete(ctx, userID, id)
}

func (f *FinanceFacade) TransactionSummary(ctx context.Context, userID int64) (*model.TransactionSummary, error) {
	return f.transactions.Summary(ctx, userID)
}

func (f *FinanceFacade) HealthCheck(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}
