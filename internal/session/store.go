package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chaimictalks/news-admin/internal/core/events"
)

// Durable storage keys. Token and identity are persisted independently so a
// partial write still reads back consistently.
const (
	StorageKeyToken    = "token"
	StorageKeyIdentity = "user"
)

// Storage is the durable key-value side-channel the store writes through to.
// Absence of a key is a valid "no session" state, not an error.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(keys ...string) error
}

// Store is the single source of truth for the running session. All mutations
// write through to durable storage and publish a change event, so consumers
// subscribe to the bus instead of sharing mutable memory.
type Store struct {
	mu       sync.RWMutex
	token    string
	identity *Identity
	loading  bool

	storage Storage
	bus     *events.EventBus
	logger  *slog.Logger
}

func NewStore(storage Storage, bus *events.EventBus, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		bus:     bus,
		logger:  logger,
	}
}

// Hydrate loads the persisted token and identity synchronously at startup.
// A token without a readable identity is kept: the identity half degrades to
// absent and the pending refresh is expected to repopulate it. Loading stays
// true while a token exists, since a bootstrap refresh is still owed.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.storage.Get(StorageKeyToken)
	if err != nil {
		return fmt.Errorf("read persisted token: %w", err)
	}
	if ok {
		s.token = token
	}

	raw, ok, err := s.storage.Get(StorageKeyIdentity)
	if err != nil {
		return fmt.Errorf("read persisted identity: %w", err)
	}
	if ok {
		var identity Identity
		if err := json.Unmarshal([]byte(raw), &identity); err != nil {
			s.logger.Warn("persisted identity is malformed, continuing without it", "error", err)
		} else {
			s.identity = &identity
		}
	}

	s.loading = s.token != ""
	return nil
}

// SetSession atomically replaces both halves of the session, as happens on a
// successful login.
func (s *Store) SetSession(token string, identity *Identity) error {
	s.mu.Lock()
	s.token = token
	s.identity = identity.Clone()
	s.loading = false
	s.mu.Unlock()

	if err := s.persistToken(token); err != nil {
		return err
	}
	if err := s.persistIdentity(identity); err != nil {
		return err
	}

	s.publish(events.SessionUpdated)
	return nil
}

// UpdateIdentity replaces only the identity half. forToken must match the
// current token: a stale refresh response that lands after logout (or after a
// different login) is silently dropped instead of resurrecting the session.
func (s *Store) UpdateIdentity(forToken string, identity *Identity) error {
	s.mu.Lock()
	if s.token == "" || s.token != forToken {
		s.mu.Unlock()
		s.logger.Debug("dropping identity update for superseded token")
		return nil
	}
	s.identity = identity.Clone()
	s.mu.Unlock()

	if err := s.persistIdentity(identity); err != nil {
		return err
	}

	s.publish(events.SessionUpdated)
	return nil
}

// Clear tears the session down in memory and in durable storage.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.loading = false
	s.mu.Unlock()

	if err := s.storage.Delete(StorageKeyToken, StorageKeyIdentity); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.publish(events.SessionCleared)
	return nil
}

// SetLoading marks whether a bootstrap refresh is still pending.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns a copy so callers can never mutate the stored session.
func (s *Store) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Snapshot returns a consistent copy of all three session fields.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{
		Token:    s.token,
		Identity: s.identity.Clone(),
		Loading:  s.loading,
	}
}

func (s *Store) persistToken(token string) error {
	if err := s.storage.Set(StorageKeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func (s *Store) persistIdentity(identity *Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("serialize identity: %w", err)
	}
	if err := s.storage.Set(StorageKeyIdentity, string(raw)); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	return nil
}

func (s *Store) publish(eventType string) {
	if s.bus == nil {
		return
	}

	snap := s.Snapshot()
	data := map[string]interface{}{
		"authenticated": snap.Authenticated(),
		"has_identity":  snap.Identity != nil,
	}

	if err := s.bus.PublishSync(context.Background(), events.NewEvent(eventType, data)); err != nil {
		s.logger.Error("failed to publish session event", "event_type", eventType, "error", err)
	}
}
