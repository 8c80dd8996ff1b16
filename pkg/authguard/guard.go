package authguard

import (
	"sync"

	"github.com/authfront/authfront/pkg/navigation"
	"github.com/authfront/authfront/pkg/sessionstate"
)

// SignInPath is where unauthenticated users are sent when they hit a
// protected page.
const SignInPath = "/signin"

// AccessPolicy declares how a page relates to authentication. RequireAuth
// pages redirect absent users to the sign-in page; guest pages (sign-in,
// sign-up) redirect authenticated users to RedirectTo.
type AccessPolicy struct {
	RequireAuth bool
	RedirectTo  string
}

// Action is what the guard decided to do with the guarded subtree.
type Action int

const (
	// ActionPlaceholder renders a non-terminal loading placeholder.
	ActionPlaceholder Action = iota
	// ActionRender renders the guarded children.
	ActionRender
	// ActionRedirect renders nothing and navigates away.
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionPlaceholder:
		return "placeholder"
	case ActionRender:
		return "render"
	case ActionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict for one observed state. Target is set only
// for ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

// Evaluate is the pure guard state machine:
//
//	             requireAuth=true    requireAuth=false
//	loading      placeholder         placeholder
//	absent       redirect /signin    render
//	present      render              redirect policy.RedirectTo
func Evaluate(state sessionstate.State, policy AccessPolicy) Decision {
	if !state.Settled() {
		return Decision{Action: ActionPlaceholder}
	}

	if policy.RequireAuth {
		if state.Authenticated() {
			return Decision{Action: ActionRender}
		}
		return Decision{Action: ActionRedirect, Target: SignInPath}
	}

	if state.Authenticated() {
		target := policy.RedirectTo
		if target == "" {
			target = "/"
		}
		return Decision{Action: ActionRedirect, Target: target}
	}
	return Decision{Action: ActionRender}
}

// Guard binds an access policy to a navigator and applies the decision on
// every observed state. Redirects replace the history entry and fire at most
// once per settled state, so re-renders never cause repeat navigations or
// user-visible redirect loops.
type Guard struct {
	policy AccessPolicy
	nav    navigation.Navigator

	mu        sync.Mutex
	fired     bool
	firedFor  sessionstate.Status
	firedPath string
}

// NewGuard creates a guard for the given policy.
func NewGuard(policy AccessPolicy, nav navigation.Navigator) *Guard {
	return &Guard{policy: policy, nav: nav}
}

// Observe evaluates the state and performs the redirect if one is due.
// It returns the decision so callers know what to render.
func (g *Guard) Observe(state sessionstate.State) Decision {
	decision := Evaluate(state, g.policy)

	g.mu.Lock()
	defer g.mu.Unlock()

	if decision.Action != ActionRedirect {
		g.fired = false
		return decision
	}

	if g.fired && g.firedFor == state.Status && g.firedPath == decision.Target {
		return decision
	}

	g.fired = true
	g.firedFor = state.Status
	g.firedPath = decision.Target
	g.nav.Replace(decision.Target)

	return decision
}

// Watch observes the store's current state and every subsequent transition
// until the returned function is called.
func (g *Guard) Watch(store *sessionstate.Store) (unwatch func()) {
	g.Observe(store.State())
	return store.Subscribe(func(state sessionstate.State) {
		g.Observe(state)
	})
}
