package mock

import (
	"context"
	"encoding/json"

	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/session"
)

// AuctionClient is a mocked auction client
type AuctionClient struct {
	auction.Client
	LoginFn           func(ctx context.Context, email, password string) (session.Session, error)
	RegisterFn        func(ctx context.Context, req auction.RegisterRequest) (auction.Profile, error)
	CreateAPIKeyFn    func(ctx context.Context, accessToken, name string) (string, error)
	ProfileFn         func(ctx context.Context, name string) (auction.Profile, error)
	ProfileFieldsFn   func(ctx context.Context, name string) (map[string]json.RawMessage, error)
	UpdateProfileFn   func(ctx context.Context, name string, req auction.ProfileUpdate) (map[string]json.RawMessage, error)
	ProfileListingsFn func(ctx context.Context, name string) ([]auction.Listing, error)
	ProfileBidsFn     func(ctx context.Context, name string) ([]auction.Bid, error)
	ListingsFn        func(ctx context.Context, filter auction.ListingFilter) ([]auction.Listing, error)
	SearchListingsFn  func(ctx context.Context, query string) ([]auction.Listing, error)
	ListingFn         func(ctx context.Context, id string) (auction.Listing, error)
	CreateListingFn   func(ctx context.Context, req auction.ListingRequest) (auction.Listing, error)
	UpdateListingFn   func(ctx context.Context, id string, req auction.ListingRequest) (auction.Listing, error)
	DeleteListingFn   func(ctx context.Context, id string) error
	PlaceBidFn        func(ctx context.Context, listingID string, amount int) error
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) Login(ctx context.Context, email, password string) (session.Session, error) {
	if ac.LoginFn != nil {
		return ac.LoginFn(ctx, email, password)
	}
	return ac.Client.Login(ctx, email, password)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) Register(ctx context.Context, req auction.RegisterRequest) (auction.Profile, error) {
	if ac.RegisterFn != nil {
		return ac.RegisterFn(ctx, req)
	}
	return ac.Client.Register(ctx, req)
}

// CreateAPIKey calls the mocked CreateAPIKey implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) CreateAPIKey(ctx context.Context, accessToken, name string) (string, error) {
	if ac.CreateAPIKeyFn != nil {
		return ac.CreateAPIKeyFn(ctx, accessToken, name)
	}
	return ac.Client.CreateAPIKey(ctx, accessToken, name)
}

// Profile calls the mocked Profile implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) Profile(ctx context.Context, name string) (auction.Profile, error) {
	if ac.ProfileFn != nil {
		return ac.ProfileFn(ctx, name)
	}
	return ac.Client.Profile(ctx, name)
}

// ProfileFields calls the mocked ProfileFields implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) ProfileFields(ctx context.Context, name string) (map[string]json.RawMessage, error) {
	if ac.ProfileFieldsFn != nil {
		return ac.ProfileFieldsFn(ctx, name)
	}
	return ac.Client.ProfileFields(ctx, name)
}

// UpdateProfile calls the mocked UpdateProfile implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) UpdateProfile(ctx context.Context, name string, req auction.ProfileUpdate) (map[string]json.RawMessage, error) {
	if ac.UpdateProfileFn != nil {
		return ac.UpdateProfileFn(ctx, name, req)
	}
	return ac.Client.UpdateProfile(ctx, name, req)
}

// ProfileListings calls the mocked ProfileListings implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) ProfileListings(ctx context.Context, name string) ([]auction.Listing, error) {
	if ac.ProfileListingsFn != nil {
		return ac.ProfileListingsFn(ctx, name)
	}
	return ac.Client.ProfileListings(ctx, name)
}

// ProfileBids calls the mocked ProfileBids implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) ProfileBids(ctx context.Context, name string) ([]auction.Bid, error) {
	if ac.ProfileBidsFn != nil {
		return ac.ProfileBidsFn(ctx, name)
	}
	return ac.Client.ProfileBids(ctx, name)
}

// Listings calls the mocked Listings implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) Listings(ctx context.Context, filter auction.ListingFilter) ([]auction.Listing, error) {
	if ac.ListingsFn != nil {
		return ac.ListingsFn(ctx, filter)
	}
	return ac.Client.Listings(ctx, filter)
}

// SearchListings calls the mocked SearchListings implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) SearchListings(ctx context.Context, query string) ([]auction.Listing, error) {
	if ac.SearchListingsFn != nil {
		return ac.SearchListingsFn(ctx, query)
	}
	return ac.Client.SearchListings(ctx, query)
}

// Listing calls the mocked Listing implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) Listing(ctx context.Context, id string) (auction.Listing, error) {
	if ac.ListingFn != nil {
		return ac.ListingFn(ctx, id)
	}
	return ac.Client.Listing(ctx, id)
}

// CreateListing calls the mocked CreateListing implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) CreateListing(ctx context.Context, req auction.ListingRequest) (auction.Listing, error) {
	if ac.CreateListingFn != nil {
		return ac.CreateListingFn(ctx, req)
	}
	return ac.Client.CreateListing(ctx, req)
}

// UpdateListing calls the mocked UpdateListing implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) UpdateListing(ctx context.Context, id string, req auction.ListingRequest) (auction.Listing, error) {
	if ac.UpdateListingFn != nil {
		return ac.UpdateListingFn(ctx, id, req)
	}
	return ac.Client.UpdateListing(ctx, id, req)
}

// DeleteListing calls the mocked DeleteListing implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) DeleteListing(ctx context.Context, id string) error {
	if ac.DeleteListingFn != nil {
		return ac.DeleteListingFn(ctx, id)
	}
	return ac.Client.DeleteListing(ctx, id)
}

// PlaceBid calls the mocked PlaceBid implementation if provided,
// otherwise the call falls back to the underlying auction.Client implementation.
// NOTE: this may panic if the underlying auction.Client is left undefined
func (ac AuctionClient) PlaceBid(ctx context.Context, listingID string, amount int) error {
	if ac.PlaceBidFn != nil {
		return ac.PlaceBidFn(ctx, listingID, amount)
	}
	return ac.Client.PlaceBid(ctx, listingID, amount)
}
