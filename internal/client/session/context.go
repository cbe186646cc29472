package session

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the Store attached by NewContext. It panics when none
// is attached or the store was never initialized; both are wiring bugs.
func FromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	if !ok || s == nil {
		panic("session: no *session.Store in context, attach one with session.NewContext")
	}
	if !s.initialized() {
		panic("session: store in context was never initialized, call Store.Initialize first")
	}
	return s
}
