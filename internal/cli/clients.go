package cli

import (
	"context"

	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

// Clients are the CLI clients and session services
type Clients struct {
	Auction  auction.Client
	Session  *session.Store
	Keys     *session.Provisioner
	Profiles *session.Synchronizer
	Hydrator *hydrate.Notifier
}

// NewClients wires the session services of the profile together:
// the auction client authenticates with the persisted session,
// and background session work logs through the ui
func NewClients(profile *user.Profile, ui terminal.UI) Clients {
	store := session.NewStoreWithSlot(profile, user.KeySession)
	return WireClients(auction.NewAuthClient(profile.APIBaseURL(), store), store, profile.APIKeyName(), ui, hydrate.Regions{})
}

// WireClients wires the session services around the provided client and store
func WireClients(client auction.Client, store *session.Store, apiKeyName string, ui terminal.UI, regions hydrate.Regions) Clients {
	notifier := hydrate.New(store, regions)

	return Clients{
		Auction:  client,
		Session:  store,
		Keys:     session.NewProvisioner(store, client, apiKeyName, ui),
		Profiles: session.NewSynchronizer(store, client, notifier, ui),
		Hydrator: notifier,
	}
}

// Bootstrap runs the session work every invocation starts with:
// provisioning an API key for a session still missing one,
// then rendering the cached identity
func (c Clients) Bootstrap(ctx context.Context) {
	c.Keys.EnsureAPIKeyOnLoad(ctx)
	c.Hydrator.Hydrate()
}

// SignedInUser returns the cached user, or ErrNotLoggedIn when there is
// no session holding an access token
func (c Clients) SignedInUser() (session.Record, error) {
	rec, ok := c.Session.CurrentUser()
	if !ok || rec.AccessToken == "" {
		return session.Record{}, ErrNotLoggedIn
	}
	return rec, nil
}

// KeyedUser returns the cached user when the session also holds an API key
func (c Clients) KeyedUser() (session.Record, error) {
	rec, err := c.SignedInUser()
	if err != nil {
		return session.Record{}, err
	}
	if rec.APIKey == "" {
		return session.Record{}, ErrMissingAPIKey
	}
	return rec, nil
}
