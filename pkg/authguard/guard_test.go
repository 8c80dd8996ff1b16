package authguard_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authfront/authfront/pkg/authguard"
	"github.com/authfront/authfront/pkg/hostedauth"
	"github.com/authfront/authfront/pkg/navigation"
	"github.com/authfront/authfront/pkg/sessionstate"
)

func presentState() sessionstate.State {
	return sessionstate.State{
		Status:  sessionstate.StatusPresent,
		Session: &hostedauth.Session{UserID: uuid.New(), Email: "user@example.com"},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	authRequired := authguard.AccessPolicy{RequireAuth: true}
	guestOnly := authguard.AccessPolicy{RequireAuth: false, RedirectTo: "/dashboard"}

	tests := []struct {
		name   string
		state  sessionstate.State
		policy authguard.AccessPolicy
		want   authguard.Decision
	}{
		{
			name:   "loading with auth required renders placeholder",
			state:  sessionstate.State{Status: sessionstate.StatusLoading},
			policy: authRequired,
			want:   authguard.Decision{Action: authguard.ActionPlaceholder},
		},
		{
			name:   "loading on guest page renders placeholder",
			state:  sessionstate.State{Status: sessionstate.StatusLoading},
			policy: guestOnly,
			want:   authguard.Decision{Action: authguard.ActionPlaceholder},
		},
		{
			name:   "absent with auth required redirects to signin",
			state:  sessionstate.State{Status: sessionstate.StatusAbsent},
			policy: authRequired,
			want:   authguard.Decision{Action: authguard.ActionRedirect, Target: "/signin"},
		},
		{
			name:   "absent on guest page renders children",
			state:  sessionstate.State{Status: sessionstate.StatusAbsent},
			policy: guestOnly,
			want:   authguard.Decision{Action: authguard.ActionRender},
		},
		{
			name:   "present with auth required renders children",
			state:  presentState(),
			policy: authRequired,
			want:   authguard.Decision{Action: authguard.ActionRender},
		},
		{
			name:   "present on guest page redirects to policy target",
			state:  presentState(),
			policy: guestOnly,
			want:   authguard.Decision{Action: authguard.ActionRedirect, Target: "/dashboard"},
		},
		{
			name:   "present on guest page without target falls back to root",
			state:  presentState(),
			policy: authguard.AccessPolicy{RequireAuth: false},
			want:   authguard.Decision{Action: authguard.ActionRedirect, Target: "/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := authguard.Evaluate(tt.state, tt.policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuard_Observe(t *testing.T) {
	t.Parallel()

	t.Run("redirect fires once per settled state", func(t *testing.T) {
		t.Parallel()

		nav := navigation.NewRecorder()
		guard := authguard.NewGuard(authguard.AccessPolicy{RequireAuth: true}, nav)

		absent := sessionstate.State{Status: sessionstate.StatusAbsent}

		decision := guard.Observe(absent)
		assert.Equal(t, authguard.ActionRedirect, decision.Action)

		kind, path := nav.Last()
		assert.Equal(t, navigation.KindReplace, kind)
		assert.Equal(t, "/signin", path)

		// Re-render with the same settled state must not navigate again
		nav.Reset()
		decision = guard.Observe(absent)
		assert.Equal(t, authguard.ActionRedirect, decision.Action)

		kind, _ = nav.Last()
		assert.Equal(t, navigation.KindNone, kind)
	})

	t.Run("redirect fires again after an intervening state", func(t *testing.T) {
		t.Parallel()

		nav := navigation.NewRecorder()
		guard := authguard.NewGuard(authguard.AccessPolicy{RequireAuth: true}, nav)

		absent := sessionstate.State{Status: sessionstate.StatusAbsent}

		guard.Observe(absent)
		guard.Observe(presentState()) // user signed in, guard renders
		nav.Reset()

		guard.Observe(absent) // signed out again
		kind, path := nav.Last()
		assert.Equal(t, navigation.KindReplace, kind)
		assert.Equal(t, "/signin", path)
	})

	t.Run("render and placeholder never navigate", func(t *testing.T) {
		t.Parallel()

		nav := navigation.NewRecorder()
		guard := authguard.NewGuard(authguard.AccessPolicy{RequireAuth: true}, nav)

		guard.Observe(sessionstate.State{Status: sessionstate.StatusLoading})
		guard.Observe(presentState())

		kind, _ := nav.Last()
		assert.Equal(t, navigation.KindNone, kind)
	})
}

func TestGuard_Watch(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	store := sessionstate.New(client)
	defer store.Close()

	nav := navigation.NewRecorder()
	guard := authguard.NewGuard(authguard.AccessPolicy{RequireAuth: true}, nav)

	unwatch := guard.Watch(store)
	defer unwatch()

	// Initial loading state: placeholder, no navigation
	kind, _ := nav.Last()
	assert.Equal(t, navigation.KindNone, kind)

	// Store settles absent: the guard redirects
	require.NoError(t, store.Refresh(context.Background()))

	kind, path := nav.Last()
	assert.Equal(t, navigation.KindReplace, kind)
	assert.Equal(t, "/signin", path)

	// After unwatch, transitions no longer reach the guard
	unwatch()
	nav.Reset()
	client.session = &hostedauth.Session{UserID: uuid.New(), Email: "user@example.com"}
	require.NoError(t, store.Refresh(context.Background()))

	kind, _ = nav.Last()
	assert.Equal(t, navigation.KindNone, kind)
}
