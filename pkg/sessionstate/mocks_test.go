package sessionstate_test

import (
	"context"
	"sync"

	"github.com/authfront/authfront/pkg/hostedauth"
)

// fakeClient is a controllable provider client. GetSessionFunc may block on a
// channel to exercise overlapping refresh interleavings; Push simulates a
// provider-driven session change.
type fakeClient struct {
	GetSessionFunc func(ctx context.Context) (*hostedauth.Session, error)

	mu        sync.Mutex
	listeners []hostedauth.SessionListener
}

func (f *fakeClient) GetSession(ctx context.Context) (*hostedauth.Session, error) {
	if f.GetSessionFunc != nil {
		return f.GetSessionFunc(ctx)
	}
	return nil, nil
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
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, listener)
	idx := len(f.listeners) - 1
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.listeners[idx] = nil
	}
}

func (f *fakeClient) Push(session *hostedauth.Session) {
	f.mu.Lock()
	listeners := make([]hostedauth.SessionListener, len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.Unlock()

	for _, l := range listeners {
		if l != nil {
			l(session)
		}
	}
}

func (f *fakeClient) subscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.listeners {
		if l != nil {
			n++
		}
	}
	return n
}
