// Package sessionstate holds the process-wide answer to "am I
// authenticated" as a reactive cell over the hosted provider client.
//
// The store is always in exactly one of three states: loading (not yet
// known), absent (settled, no session), or present (settled, authenticated).
// Refresh re-queries the provider; overlapping refreshes resolve to the
// outcome of the most recently issued query, and provider push notifications
// (token refresh, sign-out triggered elsewhere) fold into the same state
// without an explicit Refresh.
//
// Consumers subscribe for transitions and release the subscription on
// teardown:
//
//	store := sessionstate.New(client)
//	defer store.Close()
//
//	unsubscribe := store.Subscribe(func(state sessionstate.State) {
//		// re-evaluate guard, re-render, ...
//	})
//	defer unsubscribe()
//
//	_ = store.Refresh(ctx)
package sessionstate
