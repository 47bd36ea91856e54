package repository

import (
	"context"

	"github.com/polkiloo/fintrack/internal/domain/model"
)

// TransactionRepository describes persistence operations with transactions.
// Update and Delete are scoped by (id, user id) and report the number of rows
// they touched; zero is not an error.
type TransactionRepository interface {
	Create(ctx context.Context, t model.Transaction) (*model.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error)
	Update(ctx context.Context, t model.Transaction) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
	Summary(ctx context.Context, userID int64) (*model.TransactionSummary, error)
}
