package auction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nookmarket/nook-cli/internal/utils/api"
)

const (
	profilePathPattern         = "/auction/profiles/%s"
	profileListingsPathPattern = profilePathPattern + "/listings"
	profileBidsPathPattern     = profilePathPattern + "/bids"

	// MaxProfileBids is the most bids shown for a profile
	MaxProfileBids = 50
)

func profilePath(pattern, name string) string {
	return fmt.Sprintf(pattern, url.PathEscape(name))
}

func (c *client) Profile(ctx context.Context, name string) (Profile, error) {
	res, err := c.do(ctx, http.MethodGet, profilePath(profilePathPattern, name), api.RequestOptions{UseAuth: true})
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err := decodeData(res, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (c *client) ProfileFields(ctx context.Context, name string) (map[string]json.RawMessage, error) {
	res, err := c.do(ctx, http.MethodGet, profilePath(profilePathPattern, name), api.RequestOptions{UseAuth: true})
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := decodeData(res, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *client) UpdateProfile(ctx context.Context, name string, req ProfileUpdate) (map[string]json.RawMessage, error) {
	res, err := c.doJSON(ctx, http.MethodPut, profilePath(profilePathPattern, name), req, api.RequestOptions{UseAuth: true})
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := decodeData(res, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *client) ProfileListings(ctx context.Context, name string) ([]Listing, error) {
	res, err := c.do(ctx, http.MethodGet, profilePath(profileListingsPathPattern, name), api.RequestOptions{
		Query: url.Values{
			"_bids":     []string{"true"},
			"sort":      []string{"endsAt"},
			"sortOrder": []string{"asc"},
		},
		UseAuth: true,
	})
	if err != nil {
		return nil, err
	}

	var listings []Listing
	if err := decodeData(res, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *client) ProfileBids(ctx context.Context, name string) ([]Bid, error) {
	res, err := c.do(ctx, http.MethodGet, profilePath(profileBidsPathPattern, name), api.RequestOptions{
		Query: url.Values{
			"_listings": []string{"true"},
			"sort":      []string{"created"},
			"sortOrder": []string{"desc"},
		},
		UseAuth: true,
	})
	if err != nil {
		return nil, err
	}

	var bids []Bid
	if err := decodeData(res, &bids); err != nil {
		return nil, err
	}
	if len(bids) > MaxProfileBids {
		bids = bids[:MaxProfileBids]
	}
	return bids, nil
}
