package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// DefaultSlot is the name of the storage slot holding the serialized session
const DefaultSlot = "nook_market_auth"

// set of supported auth header keys
const (
	HeaderAuthorization = "Authorization"
	HeaderAPIKey        = "X-Noroff-API-Key"
	HeaderContentType   = "Content-Type"

	mediaTypeJSON = "application/json"
)

// Backend is the persistence behind a Store
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Store owns the single persisted session of the CLI user
type Store struct {
	backend Backend
	slot    string

	mu sync.Mutex
}

// NewStore creates a new session store persisting to the default slot
func NewStore(backend Backend) *Store {
	return NewStoreWithSlot(backend, DefaultSlot)
}

// NewStoreWithSlot creates a new session store persisting to the provided slot
func NewStoreWithSlot(backend Backend, slot string) *Store {
	return &Store{backend: backend, slot: slot}
}

// Save persists the session, replacing any prior value.
// A nil session is ignored.
func (s *Store) Save(sess *Session) error {
	if sess == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(*sess)
}

// Read returns the persisted session. Anything that is missing
// or does not parse as a session reads as absent.
func (s *Store) Read() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Clear removes the persisted session
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(s.slot); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Update applies fn to the current record and persists the result
// as one step, so no other mutation can land in between.
// fn is not called when there is no session, and nothing is persisted
// when fn reports no change. The returned record is the one now stored.
func (s *Store) Update(fn func(rec *Record) bool) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.read()
	if !ok {
		return Record{}, false, nil
	}

	prev := *sess.Data
	rec := prev
	if !fn(&rec) {
		return prev, true, nil
	}

	sess.Data = &rec
	if err := s.save(sess); err != nil {
		return prev, true, err
	}
	return rec, true, nil
}

// CurrentUser returns the cached user record
func (s *Store) CurrentUser() (Record, bool) {
	sess, ok := s.Read()
	if !ok {
		return Record{}, false
	}
	return *sess.Data, true
}

// AccessToken returns the cached access token
func (s *Store) AccessToken() string {
	rec, _ := s.CurrentUser()
	return rec.AccessToken
}

// APIKey returns the cached auction API key
func (s *Store) APIKey() string {
	rec, _ := s.CurrentUser()
	return rec.APIKey
}

// AuthHeaders returns the headers to authenticate an outbound request with
func (s *Store) AuthHeaders(withBody bool) http.Header {
	rec, _ := s.CurrentUser()
	return AuthHeaders(rec, withBody)
}

// AuthHeaders builds the outbound header set for the record: the bearer
// token and API key when known, and the JSON content type only when the
// request carries a body
func AuthHeaders(rec Record, withBody bool) http.Header {
	header := http.Header{}
	if withBody {
		header.Set(HeaderContentType, mediaTypeJSON)
	}
	if rec.AccessToken != "" {
		header.Set(HeaderAuthorization, "Bearer "+rec.AccessToken)
	}
	if rec.APIKey != "" {
		header.Set(HeaderAPIKey, rec.APIKey)
	}
	return header
}

func (s *Store) read() (Session, bool) {
	raw, ok := s.backend.Get(s.slot)
	if !ok || raw == "" {
		return Session{}, false
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, false
	}
	if sess.Data == nil {
		return Session{}, false
	}
	return sess, true
}

func (s *Store) save(sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if err := s.backend.Set(s.slot, string(raw)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// MemoryBackend is an in-process Backend
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryBackend creates a new, empty in-process Backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: map[string]string{}}
}

// Get returns the value stored at key
func (b *MemoryBackend) Get(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.values[key]
	return v, ok
}

// Set stores the value at key
func (b *MemoryBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = value
	return nil
}

// Remove deletes the value at key
func (b *MemoryBackend) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.values, key)
	return nil
}
