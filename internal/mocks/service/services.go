// Package service provides test doubles for the domain service interfaces.
package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"chirp/internal/domain/service"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t mockConstructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t mockConstructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(subject string, purpose service.TokenPurpose) (string, error) {
	args := m.Called(subject, purpose)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string, expected service.TokenPurpose) (string, error) {
	args := m.Called(token, expected)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GetConfirmationTokenDuration() time.Duration {
	args := m.Called()

	duration, _ := args.Get(0).(time.Duration)

	return duration
}

// MockMailer is a testify mock for service.Mailer.
type MockMailer struct {
	mock.Mock
}

func NewMockMailer(t mockConstructorTestingT) *MockMailer {
	m := &MockMailer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMailer) SendConfirmationEmail(ctx context.Context, to, confirmationLink string) error {
	args := m.Called(ctx, to, confirmationLink)

	return args.Error(0)
}
