package mock

import (
	"testing"

	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile, err := user.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

// NewStore returns a new in-memory session store,
// holding the provided record when one is given
func NewStore(t *testing.T, rec *session.Record) *session.Store {
	t.Helper()
	store := session.NewStoreWithSlot(session.NewMemoryBackend(), user.KeySession)
	if rec != nil {
		assert.Nil(t, store.Save(&session.Session{Data: rec}))
	}
	return store
}
