// Package navigation abstracts the browser history operations the auth flows
// need: pushing a new entry or replacing the current one.
package navigation

import "sync"

// Navigator performs client-side navigation. Replace swaps the current
// history entry so back-navigation cannot return to a page that immediately
// redirects away; Push adds a new entry.
type Navigator interface {
	Replace(path string)
	Push(path string)
}

// Kind distinguishes how a navigation was issued.
type Kind int

const (
	KindNone Kind = iota
	KindReplace
	KindPush
)

// Recorder is a Navigator that remembers the most recent navigation. Server
// handlers drive the flow controllers against a Recorder and convert the
// recorded target into an HTTP redirect; tests assert on it directly.
type Recorder struct {
	mu   sync.Mutex
	kind Kind
	path string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Replace(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kind = KindReplace
	r.path = path
}

func (r *Recorder) Push(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kind = KindPush
	r.path = path
}

// Last returns the most recent navigation, or KindNone when nothing was
// recorded.
func (r *Recorder) Last() (Kind, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.kind, r.path
}

// Reset clears the recorded navigation.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kind = KindNone
	r.path = ""
}
