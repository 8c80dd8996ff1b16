package authguard_test

import (
	"context"
	"sync"

	"github.com/authfront/authfront/pkg/hostedauth"
)

// fakeClient is a minimal provider client whose session can be swapped
// between refreshes.
type fakeClient struct {
	mu      sync.Mutex
	session *hostedauth.Session
}

func (f *fakeClient) GetSession(ctx context.Context) (*hostedauth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, nil
}

func (f *fakeClient) SignInWithPassword(ctx context.Context, email, password string) (*hostedauth.Session, error) {
	panic("not used")
}

func (f *fakeClient) SignInWithMagicLink(ctx context.Context, email, redirectURL string) error {
	panic("not used")
}

func (f *fakeClient) SignInWithOAuth(ctx context.Context, provider, redirectURL string) (string, error) {
	panic("not used")
}

func (f *fakeClient) SignUp(ctx context.Context, email, password, redirectURL string) (*hostedauth.SignUpOutcome, error) {
	panic("not used")
}

func (f *fakeClient) SignOut(ctx context.Context) error {
	panic("not used")
}

func (f *fakeClient) OnSessionChange(listener hostedauth.SessionListener) func() {
	return func() {}
}
