package test

import (
	"context"
	"sort"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	"github.com/polkiloo/fintrack/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (r *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if _, ok := r.Users[email]; ok {
		return nil, domainErrors.ErrAlreadyExists
	}
	u := &model.User{ID: r.Next, Email: email, Name: name, PasswordHash: passwordHash}
	r.Next++
	r.Users[email] = u
	r.ByID[u.ID] = u
	return u, nil
}

// GetByEmail returns stored user or ErrNotFound.
func (r *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.Users[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

// GetByID returns stored user or ErrNotFound.
func (r *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return u, nil
}

// TransactionRepositoryStub keeps transactions in-memory with owner scoping.
type TransactionRepositoryStub struct {
	Records map[int64]*model.Transaction
	Next    int64
	Err     error
}

// NewTransactionRepositoryStub constructs stub repository.
func NewTransactionRepositoryStub() *TransactionRepositoryStub {
	return &TransactionRepositoryStub{
		Records: make(map[int64]*model.Transaction),
		Next:    1,
	}
}

// Create stores the transaction and assigns an id.
func (r *TransactionRepositoryStub) Create(ctx context.Context, t model.Transaction) (*model.Transaction, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	t.ID = r.Next
	r.Next++
	stored := t
	r.Records[t.ID] = &stored
	return &t, nil
}

// ListByUser returns the owner's transactions ordered by date descending.
func (r *TransactionRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var result []model.Transaction
	for _, t := range r.Records {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

// Update replaces a record matching (id, user id) and reports the count.
func (r *TransactionRepositoryStub) Update(ctx context.Context, t model.Transaction) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	existing, ok := r.Records[t.ID]
	if !ok || existing.UserID != t.UserID {
		return 0, nil
	}
	t.CreatedAt = existing.CreatedAt
	r.Records[t.ID] = &t
	return 1, nil
}

// Delete removes a record matching (id, user id) and reports the count.
func (r *TransactionRepositoryStub) Delete(ctx context.Context, id, userID int64) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	existing, ok := r.Records[id]
	if !ok || existing.UserID != userID {
		return 0, nil
	}
	delete(r.Records, id)
	return 1, nil
}

// Summary aggregates totals across the owner's records.
func (r *TransactionRepositoryStub) Summary(ctx context.Context, userID int64) (*model.TransactionSummary, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	var summary model.TransactionSummary
	for _, t := range r.Records {
		if t.UserID != userID {
			continue
		}
		switch t.Type {
		case model.TransactionTypeIncome:
			summary.Income = summary.Income.Add(t.Amount)
		case model.TransactionTypeExpense:
			summary.Expense = summary.Expense.Add(t.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expense)
	return &summary, nil
}
