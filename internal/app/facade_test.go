package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/fintrack/internal/domain/errors"
	testhelpers "github.com/polkiloo/fintrack/internal/test"
	"github.com/polkiloo/fintrack/internal/usecase"
)

func newFacade(healthErr error) (*FinanceFacade, *testhelpers.UserRepositoryStub, *testhelpers.TransactionRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy)

	transactions := testhelpers.NewTransactionRepositoryStub()
	transactionUC := usecase.NewTransactionUseCase(transactions)

	facade := NewFinanceFacade(authUC, transactionUC, testhelpers.HealthFacadeStub{Err: healthErr})
	return facade, users, transactions
}

func TestFinanceFacadeAuth(t *testing.T) {
	facade, users, _ := newFacade(nil)
	ctx := context.Background()

	user, err := facade.SignUp(ctx, "a@x.com", "pass", "A")
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned user id")
	}

	stored, err := users.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Name != "A" {
		t.Fatalf("unexpected stored name %q", stored.Name)
	}

	token, err := facade.SignIn(ctx, "a@x.com", "pass")
	if err != nil {
		t.Fatalf("signin returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := facade.SignIn(ctx, "a@x.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestFinanceFacadeTransactions(t *testing.T) {
	facade, _, _ := newFacade(nil)
	ctx := context.Background()

	in := usecase.TransactionInput{Type: "income", Category: "Salary", Amount: decimal.NewFromInt(1000), Date: "2024-01-01"}
	created, err := facade.CreateTransaction(ctx, 7, in)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	list, err := facade.Transactions(ctx, 7)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one transaction, got %v err=%v", list, err)
	}

	in.Category = "Bonus"
	count, err := facade.UpdateTransaction(ctx, 7, created.ID, in)
	if err != nil || count != 1 {
		t.Fatalf("unexpected update result count=%d err=%v", count, err)
	}

	summary, err := facade.TransactionSummary(ctx, 7)
	if err != nil {
		t.Fatalf("summary returned error: %v", err)
	}
	if !summary.Income.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected income %s", summary.Income)
	}

	count, err = facade.DeleteTransaction(ctx, 7, created.ID)
	if err != nil || count != 1 {
		t.Fatalf("unexpected delete result count=%d err=%v", count, err)
	}
}

func TestFinanceFacadeHealthCheck(t *testing.T) {
	facade, _, _ := newFacade(nil)
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}

	facade, _, _ = newFacade(errors.New("down"))
	if err := facade.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}
