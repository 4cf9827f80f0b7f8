package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"library/internal/domain/repository"
	mockRepo "library/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixtures wires a mocked transaction manager to mocked repositories.
type txFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	bookRepo  *mockRepo.MockBookRepository
	loanRepo  *mockRepo.MockLoanRepository
	userRepo  *mockRepo.MockUserRepository
}

func newTxFixtures(t *testing.T) txFixtures {
	return txFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		bookRepo:  mockRepo.NewMockBookRepository(t),
		loanRepo:  mockRepo.NewMockLoanRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}
}

// expectTx runs the transaction callback against the mocked repository factory
// and returns whatever the callback returns.
func (tx txFixtures) expectTx() {
	tx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		})
	tx.factory.EXPECT().BookRepo().Return(tx.bookRepo).Maybe()
	tx.factory.EXPECT().LoanRepo().Return(tx.loanRepo).Maybe()
	tx.factory.EXPECT().UserRepo().Return(tx.userRepo).Maybe()
}
