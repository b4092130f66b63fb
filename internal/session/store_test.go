package session_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/test/assert"
)

func TestStore(t *testing.T) {
	t.Run("Should read back the saved session", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryBackend())

		sess := session.Session{
			Data: &session.Record{
				Name:        "alice",
				Email:       "alice@stud.noroff.no",
				AccessToken: "tok1",
				Credits:     1000,
				Avatar:      &session.Media{URL: "https://img/alice.png", Alt: "Alice"},
			},
			Meta: json.RawMessage(`{}`),
		}
		assert.Nil(t, store.Save(&sess))

		got, ok := store.Read()
		assert.True(t, ok, "expected a session to be read")
		assert.Equal(t, sess, got)
	})

	t.Run("Should keep fields it does not model", func(t *testing.T) {
		backend := session.NewMemoryBackend()
		assert.Nil(t, backend.Set(session.DefaultSlot, `{"data":{"name":"alice","credits":5,"venueManager":true}}`))

		store := session.NewStore(backend)
		_, _, err := store.Update(func(rec *session.Record) bool {
			rec.Credits = 10
			return true
		})
		assert.Nil(t, err)

		raw, _ := backend.Get(session.DefaultSlot)
		assert.Equal(t, `{"data":{"credits":10,"name":"alice","venueManager":true}}`, raw)
	})

	t.Run("Should ignore a nil session", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryBackend())
		assert.Nil(t, store.Save(nil))

		_, ok := store.Read()
		assert.False(t, ok, "expected no session")
	})

	t.Run("Should read nothing after clear", func(t *testing.T) {
		store := newSavedStore(t, session.Record{Name: "alice", AccessToken: "tok1"})
		assert.Nil(t, store.Clear())

		_, ok := store.Read()
		assert.False(t, ok, "expected no session")
		assert.Equal(t, "", store.AccessToken())
		assert.Equal(t, "", store.APIKey())
	})

	for _, raw := range []string{"", "not json", "null", `{"data":null}`, `{"meta":{}}`, `{"data":"alice"}`} {
		t.Run("Should read a malformed slot as absent: "+raw, func(t *testing.T) {
			backend := session.NewMemoryBackend()
			assert.Nil(t, backend.Set(session.DefaultSlot, raw))

			store := session.NewStore(backend)

			_, ok := store.Read()
			assert.False(t, ok, "expected no session")

			_, ok = store.CurrentUser()
			assert.False(t, ok, "expected no user")
		})
	}

	t.Run("Should persist to the provided slot", func(t *testing.T) {
		backend := session.NewMemoryBackend()
		store := session.NewStoreWithSlot(backend, "other")
		assert.Nil(t, store.Save(&session.Session{Data: &session.Record{Name: "alice"}}))

		_, ok := backend.Get(session.DefaultSlot)
		assert.False(t, ok, "expected the default slot to be empty")

		_, ok = backend.Get("other")
		assert.True(t, ok, "expected the provided slot to be set")
	})
}

func TestStoreUpdate(t *testing.T) {
	t.Run("Should not call fn without a session", func(t *testing.T) {
		store := session.NewStore(session.NewMemoryBackend())

		var called bool
		_, ok, err := store.Update(func(rec *session.Record) bool {
			called = true
			return true
		})
		assert.Nil(t, err)
		assert.False(t, ok, "expected no session")
		assert.False(t, called, "expected fn not to be called")
	})

	t.Run("Should not persist when fn reports no change", func(t *testing.T) {
		store := newSavedStore(t, session.Record{Name: "alice", Credits: 1000})

		rec, ok, err := store.Update(func(rec *session.Record) bool {
			rec.Credits = 1
			return false
		})
		assert.Nil(t, err)
		assert.True(t, ok, "expected a session")
		assert.Equal(t, 1000, rec.Credits)

		cur, _ := store.CurrentUser()
		assert.Equal(t, 1000, cur.Credits)
	})

	t.Run("Should return the prior record when the save fails", func(t *testing.T) {
		memory := session.NewMemoryBackend()
		assert.Nil(t, memory.Set(session.DefaultSlot, `{"data":{"name":"alice","credits":1000}}`))

		store := session.NewStore(failingBackend{memory})

		rec, ok, err := store.Update(func(rec *session.Record) bool {
			rec.Credits = 950
			return true
		})
		assert.Equal(t, "failed to save session: disk full", err.Error())
		assert.True(t, ok, "expected a session")
		assert.Equal(t, 1000, rec.Credits)
	})
}

func TestAuthHeaders(t *testing.T) {
	for _, tc := range []struct {
		description string
		rec         session.Record
		withBody    bool
		expected    http.Header
	}{
		{
			description: "Should be empty without credentials or body",
			expected:    http.Header{},
		},
		{
			description: "Should only carry the content type with a body",
			withBody:    true,
			expected:    http.Header{"Content-Type": []string{"application/json"}},
		},
		{
			description: "Should carry the bearer token without an api key",
			rec:         session.Record{AccessToken: "tok1"},
			expected:    http.Header{"Authorization": []string{"Bearer tok1"}},
		},
		{
			description: "Should carry every credential with a body",
			rec:         session.Record{AccessToken: "tok1", APIKey: "k1"},
			withBody:    true,
			expected: http.Header{
				"Authorization":    []string{"Bearer tok1"},
				"Content-Type":     []string{"application/json"},
				"X-Noroff-Api-Key": []string{"k1"},
			},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, session.AuthHeaders(tc.rec, tc.withBody))
		})
	}

	t.Run("Should read the credentials of the persisted session", func(t *testing.T) {
		store := newSavedStore(t, session.Record{Name: "alice", AccessToken: "tok1", APIKey: "k1"})

		header := store.AuthHeaders(false)
		assert.Equal(t, "Bearer tok1", header.Get(session.HeaderAuthorization))
		assert.Equal(t, "k1", header.Get(session.HeaderAPIKey))
	})
}

func TestState(t *testing.T) {
	assert.Equal(t, session.StateAnonymous, session.StateOf(session.Record{}, false))
	assert.Equal(t, session.StateAnonymous, session.StateOf(session.Record{Name: "alice"}, true))
	assert.Equal(t, session.StateAuthenticated, session.StateOf(session.Record{AccessToken: "tok1"}, true))
	assert.Equal(t, session.StateKeyed, session.StateOf(session.Record{AccessToken: "tok1", APIKey: "k1"}, true))

	store := newSavedStore(t, session.Record{Name: "alice", AccessToken: "tok1"})
	assert.Equal(t, session.StateAuthenticated, store.State())
}
