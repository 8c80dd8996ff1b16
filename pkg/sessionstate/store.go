package sessionstate

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/authfront/authfront/pkg/hostedauth"
	"github.com/authfront/authfront/pkg/logger"
)

// ErrStoreClosed is returned by Refresh after Close.
var ErrStoreClosed = errors.New("sessionstate: store closed")

// Listener receives state transitions in the order they occurred.
//
// Listeners run synchronously on the goroutine that caused the transition
// and must not call Refresh from inside the callback.
type Listener func(State)

// Store is the single authoritative holder of session state. All consumers
// (guards, flow controllers, the OAuth callback resolver) read from it and
// subscribe to it; mutation happens only through Refresh and provider push
// notifications.
type Store struct {
	client hostedauth.Client
	logger *slog.Logger

	// dispatchMu serializes transitions so listeners observe them in the
	// order they occurred.
	dispatchMu sync.Mutex

	mu     sync.Mutex
	state  State
	issued uint64 // generation of the most recently issued query
	closed bool

	listenerMu sync.Mutex
	listeners  map[int]Listener
	nextID     int

	unsubscribeProvider func()
}

// Option configures the store.
type Option func(*Store)

// WithLogger sets a custom logger for the store.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// New creates a store bound to the given provider client. The store starts
// in the loading state and folds provider-driven session changes (token
// refresh, sign-out elsewhere) into its state without an explicit Refresh.
func New(client hostedauth.Client, opts ...Option) *Store {
	s := &Store{
		client:    client,
		logger:    logger.Discard(),
		state:     loading(),
		listeners: make(map[int]Listener),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.unsubscribeProvider = client.OnSessionChange(s.fold)

	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener for every subsequent transition and returns
// a function releasing the registration. After unsubscribe returns, the
// listener is never invoked again.
func (s *Store) Subscribe(listener Listener) (unsubscribe func()) {
	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, id)
		s.listenerMu.Unlock()
	}
}

// Refresh queries the provider for the current session and settles the state
// to absent or present. Overlapping calls are safe: the state resolves to
// the outcome of the most recently issued query, so a slow stale query never
// overwrites a fresher result. A failed query settles the state to absent
// and returns the error, so consumers never hang on a permanent placeholder.
func (s *Store) Refresh(ctx context.Context) error {
	s.dispatchMu.Lock()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.dispatchMu.Unlock()
		return ErrStoreClosed
	}
	s.issued++
	gen := s.issued
	changed := !s.state.equal(loading())
	if changed {
		s.state = loading()
	}
	s.mu.Unlock()
	if changed {
		s.notifyLocked(loading())
	}
	s.dispatchMu.Unlock()

	session, err := s.client.GetSession(ctx)

	next := absent()
	if err != nil {
		s.logger.ErrorContext(ctx, "session query failed",
			logger.Error(err),
			logger.Component("sessionstate"),
		)
	} else if session != nil {
		next = present(session)
	}

	s.apply(gen, next)
	return err
}

// fold integrates a provider push notification. A push carries fresher
// information than any query already in flight, so it also invalidates
// pending refresh results.
func (s *Store) fold(session *hostedauth.Session) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.issued++

	next := absent()
	if session != nil {
		next = present(session)
	}
	changed := !s.state.equal(next)
	if changed {
		s.state = next
	}
	s.mu.Unlock()

	if changed {
		s.notifyLocked(next)
	}
}

// apply installs a query result unless a newer query or push has been issued
// since (last-issued-wins).
func (s *Store) apply(gen uint64, next State) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	if s.closed || gen != s.issued {
		s.mu.Unlock()
		return
	}
	changed := !s.state.equal(next)
	if changed {
		s.state = next
	}
	s.mu.Unlock()

	if changed {
		s.notifyLocked(next)
	}
}

// notifyLocked invokes listeners; dispatchMu must be held.
func (s *Store) notifyLocked(state State) {
	s.listenerMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// Close releases the provider subscription and stops all further
// transitions. In-flight refresh results are discarded rather than
// dispatched into released state.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	unsubscribe := s.unsubscribeProvider
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	return nil
}
