package state

import (
	"sync"

	"go.uber.org/zap"
)

// Store is the predictable state container. Dispatch applies the root
// reducer under a lock, persists the session snapshot, then notifies
// subscribers and fans the action out to effect handlers. Reducers are
// pure; all I/O lives in effects.
type Store struct {
	mu          sync.Mutex
	state       AppState
	persister   *SessionPersister
	subscribers map[int]func(AppState)
	nextSubID   int
	effects     []func(Action)
	logger      *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithPersistence hydrates the store from the persister's saved snapshot
// and saves a fresh snapshot after every dispatch.
func WithPersistence(p *SessionPersister) StoreOption {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the store's logger.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates a store seeded with the initial state (or the
// rehydrated session snapshot when persistence is configured).
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:       InitialState(),
		subscribers: map[int]func(AppState){},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.persister != nil {
		s.state = s.persister.Hydrate(s.state)
	}
	return s
}

// State returns the current state tree.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces the action into the state, persists the session
// snapshot best-effort, notifies subscribers, and hands the action to
// every registered effect handler on its own goroutine.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = rootReduce(s.state, a)
	next := s.state
	if s.persister != nil {
		if err := s.persister.Save(next); err != nil {
			s.logger.Warn("failed to persist session snapshot", zap.Error(err))
		}
	}
	subs := make([]func(AppState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	effects := s.effects
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	for _, handle := range effects {
		go handle(a)
	}
}

// Subscribe registers a listener called after every dispatch with the new
// state. The returned function unsubscribes it.
func (s *Store) Subscribe(fn func(AppState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// AddEffect registers an effect handler invoked for every dispatched
// action. Handlers run asynchronously and may dispatch follow-up actions.
func (s *Store) AddEffect(handle func(Action)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effects = append(s.effects, handle)
}
