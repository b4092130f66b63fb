package auction

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nookmarket/nook-cli/internal/utils/api"
)

const (
	listingsPath          = "/auction/listings"
	listingsSearchPath    = listingsPath + "/search"
	listingPathPattern    = listingsPath + "/%s"
	listingBidPathPattern = listingPathPattern + "/bids"

	// DefaultListingsLimit is the default page size of the listings feed
	DefaultListingsLimit = 24
)

func listingPath(pattern, id string) string {
	return fmt.Sprintf(pattern, url.PathEscape(id))
}

func (c *client) Listings(ctx context.Context, filter ListingFilter) ([]Listing, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListingsLimit
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := url.Values{
		"_active":   []string{"true"},
		"_seller":   []string{"true"},
		"_bids":     []string{"true"},
		"sort":      []string{"endsAt"},
		"sortOrder": []string{"asc"},
		"limit":     []string{strconv.Itoa(limit)},
		"page":      []string{strconv.Itoa(page)},
	}
	if filter.Tag != "" {
		query.Set("_tag", filter.Tag)
	}

	res, err := c.do(ctx, http.MethodGet, listingsPath, api.RequestOptions{Query: query})
	if err != nil {
		return nil, err
	}

	var listings []Listing
	if err := decodeData(res, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *client) SearchListings(ctx context.Context, query string) ([]Listing, error) {
	res, err := c.do(ctx, http.MethodGet, listingsSearchPath, api.RequestOptions{
		Query: url.Values{
			"q":       []string{query},
			"_seller": []string{"true"},
			"_bids":   []string{"true"},
		},
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

func (c *client) Listing(ctx context.Context, id string) (Listing, error) {
	res, err := c.do(ctx, http.MethodGet, listingPath(listingPathPattern, id), api.RequestOptions{
		Query: url.Values{
			"_seller": []string{"true"},
			"_bids":   []string{"true"},
		},
	})
	if err != nil {
		return Listing{}, err
	}

	var listing Listing
	if err := decodeData(res, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

func (c *client) CreateListing(ctx context.Context, req ListingRequest) (Listing, error) {
	res, err := c.doJSON(ctx, http.MethodPost, listingsPath, req, api.RequestOptions{UseAuth: true})
	if err != nil {
		return Listing{}, err
	}

	var listing Listing
	if err := decodeData(res, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

func (c *client) UpdateListing(ctx context.Context, id string, req ListingRequest) (Listing, error) {
	res, err := c.doJSON(ctx, http.MethodPut, listingPath(listingPathPattern, id), req, api.RequestOptions{UseAuth: true})
	if err != nil {
		return Listing{}, err
	}

	var listing Listing
	if err := decodeData(res, &listing); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

func (c *client) DeleteListing(ctx context.Context, id string) error {
	res, err := c.do(ctx, http.MethodDelete, listingPath(listingPathPattern, id), api.RequestOptions{UseAuth: true})
	if err != nil {
		return err
	}
	return res.Body.Close()
}
