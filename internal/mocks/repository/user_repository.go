// Package repository provides test doubles for the domain repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chirp/internal/domain/entity"
	"chirp/internal/domain/repository"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock with expectations asserted on cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) MarkConfirmed(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

// StubRepositoryFactory hands out a fixed repository; used together with
// StubTransactionManager to run transactional code against mocks.
type StubRepositoryFactory struct {
	UserRepository repository.UserRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

// StubTransactionManager runs the callback directly without any transaction.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (tm *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
