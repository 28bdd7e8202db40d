package services

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"moviehub/internal/common"
	"moviehub/internal/domain/preferences"
	"moviehub/internal/models"
)

// PreferencesStore holds the process-wide preferences state. Every setter
// writes the full state to storage and then notifies subscribers in
// registration order. Notifications are delivered in mutation order: a setter
// called while another goroutine (or an enclosing listener) is delivering
// leaves its notification to that delivery loop and returns.
type PreferencesStore struct {
	mu          sync.Mutex
	state       models.PreferencesState
	storage     preferences.Storage
	key         string
	logger      *slog.Logger
	listeners   []subscription
	pending     []notification
	dispatching bool
}

var _ preferences.Store = (*PreferencesStore)(nil)

type subscription struct {
	id string
	fn preferences.Listener
}

type notification struct {
	state     models.PreferencesState
	prev      models.PreferencesState
	listeners []subscription
}

// NewPreferencesStore loads the persisted record from storage, falling back
// to defaults when it is missing or unreadable
func NewPreferencesStore(storage preferences.Storage, logger *slog.Logger) *PreferencesStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &PreferencesStore{
		storage: storage,
		key:     models.PreferencesKey,
		logger:  logger,
	}
	s.state = s.load()
	return s
}

func (s *PreferencesStore) load() models.PreferencesState {
	raw, found, err := s.storage.GetItem(s.key)
	if err != nil {
		s.logger.Warn("Failed to read preferences, using defaults", "key", s.key, "error", err)
		return models.DefaultPreferences()
	}
	if !found {
		return models.DefaultPreferences()
	}

	prefs, err := models.DecodePreferences(raw)
	if err != nil {
		if !errors.Is(err, models.ErrEmptyRecord) {
			s.logger.Warn("Discarding unreadable preferences record", "key", s.key, "error", err)
		}
		return models.DefaultPreferences()
	}
	return prefs
}

// State returns a snapshot of the current preferences
func (s *PreferencesStore) State() models.PreferencesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *PreferencesStore) EnableThumbnails() bool {
	return s.State().EnableThumbnails
}

func (s *PreferencesStore) EnableAutoplay() bool {
	return s.State().EnableAutoplay
}

func (s *PreferencesStore) EnableDiscover() bool {
	return s.State().EnableDiscover
}

func (s *PreferencesStore) SourceOrder() []string {
	return s.State().SourceOrder
}

func (s *PreferencesStore) EnableSourceOrder() bool {
	return s.State().EnableSourceOrder
}

func (s *PreferencesStore) SetEnableThumbnails(v bool) {
	s.set(func(p *models.PreferencesState) { p.EnableThumbnails = v })
}

func (s *PreferencesStore) SetEnableAutoplay(v bool) {
	s.set(func(p *models.PreferencesState) { p.EnableAutoplay = v })
}

func (s *PreferencesStore) SetEnableDiscover(v bool) {
	s.set(func(p *models.PreferencesState) { p.EnableDiscover = v })
}

// SetSourceOrder replaces the source order wholesale. The slice is copied.
func (s *PreferencesStore) SetSourceOrder(v []string) {
	order := slices.Clone(v)
	if order == nil {
		order = []string{}
	}
	s.set(func(p *models.PreferencesState) { p.SourceOrder = order })
}

func (s *PreferencesStore) SetEnableSourceOrder(v bool) {
	s.set(func(p *models.PreferencesState) { p.EnableSourceOrder = v })
}

// Subscribe registers fn for every state change and returns a function that
// removes it. Calling the returned function more than once is a no-op.
func (s *PreferencesStore) Subscribe(fn preferences.Listener) func() {
	id := common.GenerateUUID()

	s.mu.Lock()
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// ListenerCount returns the number of registered subscribers
func (s *PreferencesStore) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

func (s *PreferencesStore) set(mutate func(*models.PreferencesState)) {
	s.mu.Lock()
	prev := s.state.Clone()
	mutate(&s.state)
	next := s.state.Clone()
	s.persistLocked(next)
	if !prev.Equal(next) {
		s.pending = append(s.pending, notification{
			state:     next,
			prev:      prev,
			listeners: slices.Clone(s.listeners),
		})
	}
	if s.dispatching {
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	s.mu.Unlock()

	s.dispatch()
}

// dispatch drains the pending queue in FIFO order. Listeners run outside the
// lock so they may read or mutate the store; their own mutations are queued
// behind the one being delivered.
func (s *PreferencesStore) dispatch() {
	drained := false
	defer func() {
		// a panicking listener must not leave the store stuck in dispatch
		if !drained {
			s.mu.Lock()
			s.dispatching = false
			s.pending = nil
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.dispatching = false
			s.mu.Unlock()
			drained = true
			return
		}
		n := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		for _, sub := range n.listeners {
			sub.fn(n.state.Clone(), n.prev.Clone())
		}
	}
}

func (s *PreferencesStore) persistLocked(state models.PreferencesState) {
	raw, err := models.EncodePreferences(state)
	if err != nil {
		s.logger.Warn("Failed to encode preferences", "key", s.key, "error", err)
		return
	}
	if err := s.storage.SetItem(s.key, raw); err != nil {
		s.logger.Warn("Failed to persist preferences", "key", s.key, "error", err)
	}
}

// SubscribeSelector notifies fn only when the slice picked by selector changes
func SubscribeSelector[T any](
	store preferences.Store,
	selector func(models.PreferencesState) T,
	equal func(a, b T) bool,
	fn func(cur, prev T),
) func() {
	return store.Subscribe(func(state, prev models.PreferencesState) {
		cur, old := selector(state), selector(prev)
		if equal(cur, old) {
			return
		}
		fn(cur, old)
	})
}

// SubscribeField is SubscribeSelector for comparable fields
func SubscribeField[T comparable](
	store preferences.Store,
	selector func(models.PreferencesState) T,
	fn func(cur, prev T),
) func() {
	return SubscribeSelector(store, selector, func(a, b T) bool { return a == b }, fn)
}

// SubscribeSourceOrder notifies fn when the source order sequence changes
func SubscribeSourceOrder(store preferences.Store, fn func(cur, prev []string)) func() {
	return SubscribeSelector(store, func(p models.PreferencesState) []string {
		return p.SourceOrder
	}, func(a, b []string) bool { return slices.Equal(a, b) }, fn)
}
