package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
	"github.com/nookmarket/nook-cli/internal/utils/test/assert"
)

type keyCreator struct {
	calls  int
	tokens []string
	key    string
	err    error
	during func()
}

func (kc *keyCreator) CreateAPIKey(ctx context.Context, accessToken, name string) (string, error) {
	kc.calls++
	kc.tokens = append(kc.tokens, accessToken)
	if kc.during != nil {
		kc.during()
	}
	return kc.key, kc.err
}

type profileFetcher struct {
	calls  int
	fields map[string]json.RawMessage
	err    error
}

func (pf *profileFetcher) ProfileFields(ctx context.Context, name string) (map[string]json.RawMessage, error) {
	pf.calls++
	return pf.fields, pf.err
}

type hydrator struct {
	calls int
}

func (h *hydrator) Hydrate() { h.calls++ }

type logger struct {
	logs []terminal.Log
}

func (l *logger) Print(logs ...terminal.Log) { l.logs = append(l.logs, logs...) }

type failingBackend struct {
	*session.MemoryBackend
}

func (b failingBackend) Set(key, value string) error { return errors.New("disk full") }

func rawFields(t *testing.T, payload string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	assert.Nil(t, json.Unmarshal([]byte(payload), &fields))
	return fields
}

func newSavedStore(t *testing.T, rec session.Record) *session.Store {
	t.Helper()
	store := session.NewStore(session.NewMemoryBackend())
	assert.Nil(t, store.Save(&session.Session{Data: &rec}))
	return store
}
