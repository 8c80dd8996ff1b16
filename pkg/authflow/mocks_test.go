package authflow_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/authfront/authfront/pkg/hostedauth"
)

// MockClient is a mock implementation of hostedauth.Client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetSession(ctx context.Context) (*hostedauth.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostedauth.Session), args.Error(1)
}

func (m *MockClient) SignInWithPassword(ctx context.Context, email, password string) (*hostedauth.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostedauth.Session), args.Error(1)
}

func (m *MockClient) SignInWithMagicLink(ctx context.Context, email, redirectURL string) error {
	args := m.Called(ctx, email, redirectURL)
	return args.Error(0)
}

func (m *MockClient) SignInWithOAuth(ctx context.Context, provider, redirectURL string) (string, error) {
	args := m.Called(ctx, provider, redirectURL)
	return args.String(0), args.Error(1)
}

func (m *MockClient) SignUp(ctx context.Context, email, password, redirectURL string) (*hostedauth.SignUpOutcome, error) {
	args := m.Called(ctx, email, password, redirectURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hostedauth.SignUpOutcome), args.Error(1)
}

func (m *MockClient) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClient) OnSessionChange(listener hostedauth.SessionListener) func() {
	return func() {}
}

// MockPrecheckClient additionally implements hostedauth.ExistenceChecker.
type MockPrecheckClient struct {
	MockClient
}

func (m *MockPrecheckClient) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
