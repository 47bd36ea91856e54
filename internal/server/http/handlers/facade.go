package handlers

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
	"github.com/polkiloo/fintrack/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, email, password, name string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// TransactionFacade encapsulates transaction operations exposed via HTTP.
type TransactionFacade interface {
	Transactions(ctx context.Context, userID int64) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, in usecase.TransactionInput) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, in usecase.TransactionInput) (int64, error)
	DeleteTransaction(ctx context.Context, userID, id int64) (int64, error)
	TransactionSummary(ctx context.Context, userID int64) (*model.TransactionSummary, error)
}

// HealthFacade exposes the storage availability probe.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// FinanceFacade aggregates the full set of operations used across handlers.
type FinanceFacade interface {
	AuthFacade
	TransactionFacade
	HealthFacade
}
