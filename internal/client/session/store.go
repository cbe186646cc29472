// Package session holds the signed-in user for the lifetime of the client
// process.
//
// A Store starts Uninitialized. Initialize moves it to Loading and reads the
// persisted record in the background; when that read settles the store is
// either Authenticated or Anonymous and only SetUser/Logout move it between
// those two states afterwards. Every change is written back to the key-value
// store by a single background worker. Persistence is best effort: failures
// are logged and never surface to callers or roll back in-memory state.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
)

// StorageKey is the key under which the user record is persisted.
const StorageKey = "@SoftwareSlayer:user"

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// KeyValueStore is the subset of metadata.Repository the store needs.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	mu    sync.Mutex
	state State
	user  *models.User

	// overridden is set when SetUser runs before the startup read settles;
	// the read result is then discarded.
	overridden bool

	ready   chan struct{}
	subs    map[int]func(*models.User)
	nextSub int

	kv      KeyValueStore
	log     logging.Logger
	persist *persister
}

func NewStore(kv KeyValueStore, logger logging.Logger) *Store {
	log := logger.With("component", "session")
	return &Store{
		state:   StateUninitialized,
		ready:   make(chan struct{}),
		subs:    make(map[int]func(*models.User)),
		kv:      kv,
		log:     log,
		persist: newPersister(kv, logger.With("sink", "session-persistence")),
	}
}

// Initialize starts the one-time load of the persisted user. It returns
// immediately; use Ready or WaitReady to observe completion. Calls after the
// first are no-ops.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return
	}
	s.state = StateLoading
	s.mu.Unlock()

	go s.load(ctx)
}

func (s *Store) load(ctx context.Context) {
	loaded := s.readPersisted(ctx)

	s.mu.Lock()
	if s.overridden {
		s.log.Debug(ctx, "discarding persisted session, user was set during load")
	} else {
		s.user = loaded
	}
	s.state = stateFor(s.user)
	user := s.user.Clone()
	subs := s.subscribers()
	close(s.ready)
	s.mu.Unlock()

	s.log.Info(ctx, "session loaded", "state", stateFor(user).String())
	notify(subs, user)
}

func (s *Store) readPersisted(ctx context.Context) *models.User {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.log.Error(ctx, "failed to read persisted session", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn(ctx, "persisted session is not valid json", "error", err)
		return nil
	}
	if !u.Valid() {
		s.log.Warn(ctx, "persisted session is incomplete, ignoring")
		return nil
	}
	return &u
}

// SetUser replaces the current user (nil signs out), notifies subscribers
// and schedules persistence. It never blocks on storage.
func (s *Store) SetUser(user *models.User) {
	u := user.Clone()

	s.mu.Lock()
	s.user = u
	switch s.state {
	case StateAuthenticated, StateAnonymous:
		s.state = stateFor(u)
	default:
		s.overridden = true
	}
	// enqueue under the lock so persisted order matches call order
	s.persist.enqueue(u)
	subs := s.subscribers()
	s.mu.Unlock()

	notify(subs, u.Clone())
}

func (s *Store) Logout() {
	s.SetUser(nil)
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) IsLoading() bool {
	return s.State() == StateLoading
}

func (s *Store) initialized() bool {
	return s.State() != StateUninitialized
}

// Ready is closed once the startup read has settled.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe registers fn to be called with a copy of the user after every
// change, including the end of the startup load. The returned func removes
// the subscription. fn runs on the goroutine that made the change and must
// not call back into SetUser.
func (s *Store) Subscribe(fn func(*models.User)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Flush blocks until every persistence job scheduled so far has been applied.
func (s *Store) Flush(ctx context.Context) error {
	return s.persist.flush(ctx)
}

// Close flushes pending writes and stops the persistence worker. Changes made
// afterwards stay in memory only.
func (s *Store) Close(ctx context.Context) error {
	err := s.persist.flush(ctx)
	s.persist.stop()
	return err
}

// subscribers must be called with mu held.
func (s *Store) subscribers() []func(*models.User) {
	out := make([]func(*models.User), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(*models.User), u *models.User) {
	for _, fn := range subs {
		fn(u.Clone())
	}
}

func stateFor(u *models.User) State {
	if u == nil {
		return StateAnonymous
	}
	return StateAuthenticated
}
