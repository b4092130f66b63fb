package auction

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/api"
)

// DefaultBaseURL is the default auction API base url
const DefaultBaseURL = "https://v2.api.noroff.dev"

const defaultTimeout = 30 * time.Second

// Client is an auction API client
type Client interface {
	Login(ctx context.Context, email, password string) (session.Session, error)
	Register(ctx context.Context, req RegisterRequest) (Profile, error)
	CreateAPIKey(ctx context.Context, accessToken, name string) (string, error)

	Profile(ctx context.Context, name string) (Profile, error)
	ProfileFields(ctx context.Context, name string) (map[string]json.RawMessage, error)
	UpdateProfile(ctx context.Context, name string, req ProfileUpdate) (map[string]json.RawMessage, error)
	ProfileListings(ctx context.Context, name string) ([]Listing, error)
	ProfileBids(ctx context.Context, name string) ([]Bid, error)

	Listings(ctx context.Context, filter ListingFilter) ([]Listing, error)
	SearchListings(ctx context.Context, query string) ([]Listing, error)
	Listing(ctx context.Context, id string) (Listing, error)
	CreateListing(ctx context.Context, req ListingRequest) (Listing, error)
	UpdateListing(ctx context.Context, id string, req ListingRequest) (Listing, error)
	DeleteListing(ctx context.Context, id string) error

	PlaceBid(ctx context.Context, listingID string, amount int) error
}

// HeaderSource provides the headers that authenticate a request
type HeaderSource interface {
	AuthHeaders(withBody bool) http.Header
}

// NewClient creates a new auction client
func NewClient(baseURL string) Client {
	return NewAuthClient(baseURL, noopAuth{})
}

// NewAuthClient creates a new auction client that authenticates
// requests with the headers of the provided source
func NewAuthClient(baseURL string, auth HeaderSource) Client {
	return &client{baseURL, auth, &http.Client{Timeout: defaultTimeout}}
}

type client struct {
	baseURL    string
	auth       HeaderSource
	httpClient *http.Client
}

// envelope is the shape every auction API response body takes
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

func (c *client) doJSON(ctx context.Context, method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	jsonOptions, err := api.JSONRequestOptions(payload)
	if err != nil {
		return nil, err
	}

	options.Body = jsonOptions.Body
	if options.Header == nil {
		options.Header = http.Header{}
	}
	options.Header.Set(api.HeaderContentType, api.MediaTypeApplicationJSON)

	return c.do(ctx, method, path, options)
}

func (c *client) do(ctx context.Context, method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	api.IncludeQuery(req, options.Query)

	req.Header.Set(api.HeaderAccept, api.MediaTypeApplicationJSON)

	if options.UseAuth {
		for k, vs := range c.auth.AuthHeaders(options.HasBody()) {
			req.Header[k] = vs
		}
	}

	for k := range options.Header {
		req.Header.Set(k, options.Header.Get(k))
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return res, nil
	}
	defer res.Body.Close()

	return nil, parseResponseError(res)
}

// decodeEnvelope reads the whole response body into out
func decodeEnvelope(res *http.Response, out interface{}) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(out)
}

// decodeData reads the data member of the response envelope into out
func decodeData(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return errNoData
	}
	return json.Unmarshal(env.Data, out)
}

type noopAuth struct{}

func (noopAuth) AuthHeaders(bool) http.Header { return http.Header{} }
