package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nookmarket/nook-cli/internal/cli/user"
	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/hydrate"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/terminal"
	"github.com/nookmarket/nook-cli/internal/utils/test/assert"
	"github.com/nookmarket/nook-cli/internal/utils/test/mock"

	"github.com/spf13/pflag"
)

type testCommand struct {
	withRegions bool
	current     session.Record
	name        string
	args        []string
	handled     Clients
	handleErr   error
}

func (cmd *testCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.name, "name", "", "the name")
}

func (cmd *testCommand) SetArgs(args []string) error {
	cmd.args = args
	return nil
}

func (cmd *testCommand) Regions(ui terminal.UI, current session.Record) hydrate.Regions {
	cmd.current = current
	if !cmd.withRegions {
		return hydrate.Regions{}
	}
	return hydrate.Regions{Navbar: ui}
}

func (cmd *testCommand) Handler(ctx context.Context, profile *user.Profile, ui terminal.UI, clients Clients) error {
	cmd.handled = clients
	return cmd.handleErr
}

func newAPIKeyServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "/auth/create-api-key", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"data":{"key":"k1"}}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCommandFactoryRun(t *testing.T) {
	t.Run("Should provision an api key and render the regions before the handler runs", func(t *testing.T) {
		var calls int
		server := newAPIKeyServer(t, &calls)

		backend := session.NewMemoryBackend()
		assert.Nil(t, backend.Set(user.KeySession, `{"data":{"name":"alice","accessToken":"tok1","credits":1000}}`))

		out, ui := mock.NewUI()
		factory := &CommandFactory{
			ui: ui,
			newClients: func(profile *user.Profile, ui terminal.UI) Clients {
				store := session.NewStoreWithSlot(backend, user.KeySession)
				return WireClients(auction.NewAuthClient(server.URL, store), store, "", ui, hydrate.Regions{})
			},
		}

		cmd := &testCommand{withRegions: true}
		assert.Nil(t, factory.run(context.Background(), cmd))

		assert.Equal(t, 1, calls)
		assert.Equal(t, "alice", cmd.current.Name)
		assert.Equal(t, "k1", cmd.handled.Session.APIKey())
		assert.Equal(t, `01:23:45 UTC INFO  Logged in as alice with 1000 credits, to log out run
  nook logout
`, out.String())
	})

	t.Run("Should not call the network or render anything without a session", func(t *testing.T) {
		var calls int
		server := newAPIKeyServer(t, &calls)

		out, ui := mock.NewUI()
		factory := &CommandFactory{
			ui: ui,
			newClients: func(profile *user.Profile, ui terminal.UI) Clients {
				store := session.NewStore(session.NewMemoryBackend())
				return WireClients(auction.NewAuthClient(server.URL, store), store, "", ui, hydrate.Regions{})
			},
		}

		assert.Nil(t, factory.run(context.Background(), &testCommand{}))

		assert.Equal(t, 0, calls)
		assert.Equal(t, "", out.String())
	})
}

func TestCommandFactoryBuild(t *testing.T) {
	t.Run("Should register the command flags and arguments", func(t *testing.T) {
		cmd := &testCommand{}
		factory := &CommandFactory{}

		c := factory.Build(CommandDefinition{Use: "test", Command: cmd, Args: ExactArgs("id")})

		assert.NotNil(t, c.Flags().Lookup("name"))
		assert.NotNil(t, c.Args(c, []string{}))
		assert.Nil(t, c.Args(c, []string{"L1"}))

		assert.Nil(t, c.PreRunE(c, []string{"L1"}))
		assert.Equal(t, []string{"L1"}, cmd.args)
	})

	t.Run("Should build the sub commands", func(t *testing.T) {
		c := (&CommandFactory{}).Build(CommandDefinition{
			Use:         "listings",
			SubCommands: []CommandDefinition{{Use: "list", Command: &testCommand{}}, {Use: "view", Command: &testCommand{}}},
		})

		assert.Equal(t, 2, len(c.Commands()))
		assert.Nil(t, c.RunE)
	})
}

func TestErrors(t *testing.T) {
	t.Run("Should find suggestions through wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("bid failed: %w", errDisableUsage{ErrNotLoggedIn})

		s, ok := suggester(err)
		assert.True(t, ok, "expected a suggester")
		assert.Equal(t, []interface{}{"nook login"}, s.SuggestedCommands())

		var disableUsage DisableUsage
		assert.True(t, errors.As(err, &disableUsage), "expected usage to be disabled")
	})

	t.Run("Should validate positional arguments", func(t *testing.T) {
		assert.Nil(t, ExactArgs("id", "amount")([]string{"L1", "50"}))
		assert.Equal(t, "expected 2 argument(s) [id amount] but got 1", ExactArgs("id", "amount")([]string{"L1"}).Error())

		assert.Nil(t, MaximumArgs("name")(nil))
		assert.NotNil(t, MaximumArgs("name")([]string{"a", "b"}))
	})
}
