package session

import (
	"context"

	"github.com/nookmarket/nook-cli/internal/terminal"
)

// DefaultAPIKeyName is the name given to API keys created for the CLI
const DefaultAPIKeyName = "NookMarketKey"

// KeyCreator creates auction API keys on behalf of an access token
type KeyCreator interface {
	CreateAPIKey(ctx context.Context, accessToken, name string) (string, error)
}

// Provisioner makes sure every authenticated session carries an auction API key
type Provisioner struct {
	store   *Store
	keys    KeyCreator
	keyName string
	logger  Logger
}

// NewProvisioner creates a new API key provisioner
func NewProvisioner(store *Store, keys KeyCreator, keyName string, logger Logger) *Provisioner {
	if keyName == "" {
		keyName = DefaultAPIKeyName
	}
	return &Provisioner{store, keys, keyName, loggerOrNoop(logger)}
}

// EnsureAPIKey returns the record with an API key, creating and persisting one
// when the record has an access token but no key yet.
// A failure to create the key leaves the record as it was; the next
// bootstrap tries again.
func (p *Provisioner) EnsureAPIKey(ctx context.Context, rec Record) Record {
	if rec.AccessToken == "" || rec.APIKey != "" {
		return rec
	}

	key, err := p.keys.CreateAPIKey(ctx, rec.AccessToken, p.keyName)
	if err != nil {
		p.logger.Print(terminal.NewDebugLog("Could not create API key: %s", err))
		return rec
	}
	if key == "" {
		p.logger.Print(terminal.NewDebugLog("Could not create API key: the response carried no key"))
		return rec
	}

	rec.APIKey = key

	// a session cleared meanwhile stays cleared
	_, _, err = p.store.Update(func(cur *Record) bool {
		if cur.AccessToken != rec.AccessToken || cur.APIKey != "" {
			return false
		}
		cur.APIKey = key
		return true
	})
	if err != nil {
		p.logger.Print(terminal.NewDebugLog("Could not save API key: %s", err))
	}
	return rec
}

// EnsureAPIKeyOnLoad provisions an API key for the persisted session when it
// has an access token without a key. It is safe to call on every invocation.
func (p *Provisioner) EnsureAPIKeyOnLoad(ctx context.Context) (Record, bool) {
	rec, ok := p.store.CurrentUser()
	if !ok {
		return Record{}, false
	}
	if StateOf(rec, ok) != StateAuthenticated {
		return rec, true
	}
	return p.EnsureAPIKey(ctx, rec), true
}
