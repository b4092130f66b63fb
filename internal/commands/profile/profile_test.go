package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/flags"
	"github.com/nookmarket/nook-cli/internal/utils/test/assert"
	"github.com/nookmarket/nook-cli/internal/utils/test/mock"
)

func newAlice() *session.Record {
	return &session.Record{Name: "alice", Email: "alice@stud.noroff.no", AccessToken: "token", APIKey: "key", Credits: 1000}
}

func TestViewRegions(t *testing.T) {
	_, ui := mock.NewUI()

	for _, tc := range []struct {
		description    string
		args           []string
		current        session.Record
		expectedHeader bool
	}{
		{
			description:    "Should render every region for the signed in user's profile",
			current:        *newAlice(),
			expectedHeader: true,
		},
		{
			description:    "Should render every region when the signed in user names their own profile",
			args:           []string{"Alice"},
			current:        *newAlice(),
			expectedHeader: true,
		},
		{
			description: "Should only render the navbar for another user's profile",
			args:        []string{"bob"},
			current:     *newAlice(),
		},
		{
			description: "Should only render the navbar for a named profile without a session",
			args:        []string{"alice"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			cmd := &ViewCommand{}
			assert.Nil(t, cmd.SetArgs(tc.args))

			regions := cmd.Regions(ui, tc.current)
			assert.True(t, regions.Navbar != nil, "expected the navbar to render")
			assert.Equal(t, tc.expectedHeader, regions.ProfileHeader != nil)
			assert.Equal(t, tc.expectedHeader, regions.Banner != nil)
		})
	}
}

func TestViewHandler(t *testing.T) {
	t.Run("Should require a signed in user to view their own profile", func(t *testing.T) {
		_, ui := mock.NewUI()
		clients := cli.WireClients(mock.AuctionClient{}, mock.NewStore(t, nil), "", ui, hydrate.Regions{})

		err := (&ViewCommand{}).Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t, cli.ErrNotLoggedIn, err)
	})

	t.Run("Should sync the signed in user's profile before showing it", func(t *testing.T) {
		client := mock.AuctionClient{
			ProfileFieldsFn: func(ctx context.Context, name string) (map[string]json.RawMessage, error) {
				return map[string]json.RawMessage{
					"credits": json.RawMessage(`900`),
					"bio":     json.RawMessage(`"<i>Collector</i> of lamps"`),
				}, nil
			},
			ProfileListingsFn: func(ctx context.Context, name string) ([]auction.Listing, error) {
				return nil, nil
			},
			ProfileBidsFn: func(ctx context.Context, name string) ([]auction.Bid, error) {
				return nil, nil
			},
		}

		store := mock.NewStore(t, newAlice())

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{}, out)

		cmd := &ViewCommand{}
		clients := cli.WireClients(client, store, "", ui, cmd.Regions(ui, *newAlice()))

		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients))

		assert.Equal(t, `01:23:45 UTC INFO  Logged in as alice with 900 credits, to log out run
  nook logout
01:23:45 UTC INFO  Profile
  Name   Email                 Credits  Avatar
  -----  --------------------  -------  ------
  alice  alice@stud.noroff.no  900      AL
01:23:45 UTC INFO  Banner: no banner
01:23:45 UTC INFO  Bio: Collector of lamps
01:23:45 UTC INFO  Your listings: none found
01:23:45 UTC INFO  Your recent bids: you have not placed any bids yet
`, out.String())
	})

	t.Run("Should show the cached profile when the sync fails", func(t *testing.T) {
		client := mock.AuctionClient{
			ProfileFieldsFn: func(ctx context.Context, name string) (map[string]json.RawMessage, error) {
				return nil, errors.New("something bad happened")
			},
			ProfileBidsFn: func(ctx context.Context, name string) ([]auction.Bid, error) {
				return nil, errors.New("something bad happened")
			},
			ProfileListingsFn: func(ctx context.Context, name string) ([]auction.Listing, error) {
				return nil, nil
			},
		}

		store := mock.NewStore(t, newAlice())

		out, ui := mock.NewUI()
		clients := cli.WireClients(client, store, "", ui, hydrate.Regions{})

		assert.Nil(t, (&ViewCommand{}).Handler(context.Background(), mock.NewProfile(t), ui, clients))
		assert.Equal(t, `01:23:45 UTC INFO  Your listings: none found
01:23:45 UTC WARN  Could not load your bids: Something went wrong. Try again in a moment.
`, out.String())

		rec, _ := store.CurrentUser()
		assert.Equal(t, 1000, rec.Credits)
	})

	t.Run("Should fetch another user's profile", func(t *testing.T) {
		var captured string
		client := mock.AuctionClient{
			ProfileFn: func(ctx context.Context, name string) (auction.Profile, error) {
				captured = name
				return auction.Profile{
					Name:    "bob",
					Credits: 500,
					Bio:     "Seller of chairs",
					Count:   auction.ProfileCount{Listings: 3, Wins: 1},
				}, nil
			},
			ProfileListingsFn: func(ctx context.Context, name string) ([]auction.Listing, error) {
				return nil, nil
			},
		}

		out, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, newAlice()), "", ui, hydrate.Regions{})

		cmd := &ViewCommand{}
		assert.Nil(t, cmd.SetArgs([]string{"bob"}))
		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients))

		assert.Equal(t, "bob", captured)
		assert.Equal(t, `01:23:45 UTC INFO  Profile
  Name  Credits  Listings  Wins
  ----  -------  --------  ----
  bob   500      3         1
01:23:45 UTC INFO  Bio: Seller of chairs
01:23:45 UTC INFO  Listings by bob: none found
`, out.String())
	})

	t.Run("Should show the server message when the profile cannot be loaded", func(t *testing.T) {
		client := mock.AuctionClient{
			ProfileFn: func(ctx context.Context, name string) (auction.Profile, error) {
				return auction.Profile{}, auction.ServerError{StatusCode: 404, Errors: []auction.FieldError{{Message: "No profile with this name"}}}
			},
		}

		_, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, nil), "", ui, hydrate.Regions{})

		err := (&ViewCommand{name: "nobody"}).Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t, "No profile with this name", err.Error())
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("Should report when there is nothing to update", func(t *testing.T) {
		var requested bool
		client := mock.AuctionClient{
			UpdateProfileFn: func(ctx context.Context, name string, req auction.ProfileUpdate) (map[string]json.RawMessage, error) {
				requested = true
				return nil, nil
			},
		}

		_, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, newAlice()), "", ui, hydrate.Regions{})

		err := (&UpdateCommand{}).Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t, "Nothing to update yet.", err.Error())
		assert.Equal(t, errNothingToUpdate, err)
		assert.False(t, requested, "expected no request")
	})

	t.Run("Should update the profile and merge the response into the session", func(t *testing.T) {
		var captured auction.ProfileUpdate
		client := mock.AuctionClient{
			UpdateProfileFn: func(ctx context.Context, name string, req auction.ProfileUpdate) (map[string]json.RawMessage, error) {
				captured = req
				return map[string]json.RawMessage{
					"name":   json.RawMessage(`"alice"`),
					"avatar": json.RawMessage(`{"url":"https://img.example/a.png","alt":"Avatar of alice"}`),
					"bio":    json.RawMessage(`""`),
				}, nil
			},
		}

		store := mock.NewStore(t, newAlice())

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{}, out)

		cmd := &UpdateCommand{updateInputs{
			Avatar: "https://img.example/a.png",
			Bio:    flags.OptionalString{IsSet: true},
		}}
		clients := cli.WireClients(client, store, "", ui, hydrate.Regions{ProfileHeader: ui})

		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients))

		emptyBio := ""
		assert.Equal(t, auction.ProfileUpdate{
			Avatar: &session.Media{URL: "https://img.example/a.png", Alt: "Avatar of alice"},
			Bio:    &emptyBio,
		}, captured)

		rec, _ := store.CurrentUser()
		assert.Equal(t, &session.Media{URL: "https://img.example/a.png", Alt: "Avatar of alice"}, rec.Avatar)
		assert.Equal(t, "token", rec.AccessToken)
		assert.Equal(t, "key", rec.APIKey)

		assert.Contains(t, out.String(), "alice  alice@stud.noroff.no  1000     https://img.example/a.png")
		assert.Contains(t, out.String(), "Successfully updated profile")
	})

	t.Run("Should fall back to a generic message when the update fails", func(t *testing.T) {
		client := mock.AuctionClient{
			UpdateProfileFn: func(ctx context.Context, name string, req auction.ProfileUpdate) (map[string]json.RawMessage, error) {
				return nil, auction.ServerError{StatusCode: 500}
			},
		}

		_, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, newAlice()), "", ui, hydrate.Regions{})

		cmd := &UpdateCommand{updateInputs{Banner: "https://img.example/b.png"}}
		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t, "Could not update profile.", err.Error())
	})

	t.Run("Should name the banner after the user", func(t *testing.T) {
		req := updateInputs{Banner: " https://img.example/b.png "}.request("alice")
		assert.Equal(t, auction.ProfileUpdate{Banner: &session.Media{URL: "https://img.example/b.png", Alt: "Banner of alice"}}, req)
	})
}
