package sessionstate

import "github.com/authfront/authfront/pkg/hostedauth"

// Status describes what the store currently knows about the session.
type Status int

const (
	// StatusLoading means the session has not been loaded yet, or a first
	// query is still in flight. Guards render a placeholder in this state.
	StatusLoading Status = iota

	// StatusAbsent means the provider settled with no session.
	StatusAbsent

	// StatusPresent means an authenticated session exists.
	StatusPresent
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAbsent:
		return "absent"
	case StatusPresent:
		return "present"
	default:
		return "unknown"
	}
}

// State is the store's value at an instant: exactly one of loading, absent,
// or present(session). Session is non-nil if and only if Status is
// StatusPresent.
type State struct {
	Status  Status
	Session *hostedauth.Session
}

// Settled reports whether the state is terminal (absent or present).
func (s State) Settled() bool {
	return s.Status != StatusLoading
}

// Authenticated reports whether an authenticated session is present.
func (s State) Authenticated() bool {
	return s.Status == StatusPresent
}

func present(session *hostedauth.Session) State {
	return State{Status: StatusPresent, Session: session}
}

func absent() State {
	return State{Status: StatusAbsent}
}

func loading() State {
	return State{Status: StatusLoading}
}

func (s State) equal(other State) bool {
	if s.Status != other.Status {
		return false
	}
	if s.Session == nil || other.Session == nil {
		return s.Session == other.Session
	}
	return s.Session.UserID == other.Session.UserID && s.Session.Email == other.Session.Email
}
