package register

import (
	"context"
	"testing"

	"github.com/nookmarket/nook-cli/internal/cli"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/test/assert"
	"github.com/nookmarket/nook-cli/internal/utils/test/mock"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("Should register the user and suggest logging in", func(t *testing.T) {
		var captured auction.RegisterRequest
		client := mock.AuctionClient{
			RegisterFn: func(ctx context.Context, req auction.RegisterRequest) (auction.Profile, error) {
				captured = req
				return auction.Profile{Name: req.Name, Email: req.Email}, nil
			},
		}

		store := mock.NewStore(t, nil)

		out, ui := mock.NewUI()
		clients := cli.WireClients(client, store, "", ui, hydrate.Regions{})

		cmd := &Command{inputs{
			Name:     "alice",
			Email:    "alice@stud.noroff.no",
			Password: "password",
			Avatar:   "https://img.example/a.png",
		}}

		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients))

		assert.Equal(t, auction.RegisterRequest{
			Name:     "alice",
			Email:    "alice@stud.noroff.no",
			Password: "password",
			Avatar:   &session.Media{URL: "https://img.example/a.png", Alt: "Avatar for alice"},
		}, captured)

		assert.Equal(t, `01:23:45 UTC INFO  Successfully registered as alice
01:23:45 UTC INFO  To sign in with your new account, run
  nook login --email alice@stud.noroff.no
`, out.String())

		_, ok := store.CurrentUser()
		assert.False(t, ok, "expected registering to not sign the user in")
	})

	t.Run("Should leave the avatar out when none is provided", func(t *testing.T) {
		var captured auction.RegisterRequest
		client := mock.AuctionClient{
			RegisterFn: func(ctx context.Context, req auction.RegisterRequest) (auction.Profile, error) {
				captured = req
				return auction.Profile{}, nil
			},
		}

		out, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, nil), "", ui, hydrate.Regions{})

		cmd := &Command{inputs{Name: "alice", Email: "alice@stud.noroff.no", Password: "password"}}

		assert.Nil(t, cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients))
		assert.True(t, captured.Avatar == nil, "expected no avatar")
		assert.Contains(t, out.String(), "Successfully registered as alice")
	})

	t.Run("Should join the field errors the server rejects the registration with", func(t *testing.T) {
		client := mock.AuctionClient{
			RegisterFn: func(ctx context.Context, req auction.RegisterRequest) (auction.Profile, error) {
				return auction.Profile{}, auction.ServerError{
					StatusCode: 400,
					Errors: []auction.FieldError{
						{Message: "Profile already exists"},
						{Message: "Email is taken"},
					},
				}
			},
		}

		_, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, nil), "", ui, hydrate.Regions{})

		cmd := &Command{inputs{Name: "alice", Email: "alice@stud.noroff.no", Password: "password"}}

		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t, "Profile already exists Email is taken", err.Error())
	})

	t.Run("Should fall back to a generic message", func(t *testing.T) {
		client := mock.AuctionClient{
			RegisterFn: func(ctx context.Context, req auction.RegisterRequest) (auction.Profile, error) {
				return auction.Profile{}, auction.ServerError{StatusCode: 500}
			},
		}

		_, ui := mock.NewUI()
		clients := cli.WireClients(client, mock.NewStore(t, nil), "", ui, hydrate.Regions{})

		cmd := &Command{inputs{Name: "alice", Email: "alice@stud.noroff.no", Password: "password"}}

		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, clients)
		assert.Equal(t, "Registration failed.", err.Error())
	})
}

func TestRegisterInputs(t *testing.T) {
	for _, tc := range []struct {
		description string
		inputs      inputs
		expectedErr error
	}{
		{
			description: "Should accept a student address",
			inputs:      inputs{Name: "alice_1", Email: "alice@stud.noroff.no", Password: "password"},
		},
		{
			description: "Should accept a staff address",
			inputs:      inputs{Name: "alice", Email: "alice@noroff.no", Password: "password"},
		},
		{
			description: "Should reject a name with punctuation",
			inputs:      inputs{Name: "alice!", Email: "alice@noroff.no", Password: "password"},
			expectedErr: errInvalidName,
		},
		{
			description: "Should reject an address from another domain",
			inputs:      inputs{Name: "alice", Email: "alice@example.com", Password: "password"},
			expectedErr: errInvalidEmail,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, ui := mock.NewUI()

			i := tc.inputs
			assert.Equal(t, tc.expectedErr, i.Resolve(mock.NewProfile(t), ui))
		})
	}
}
