package auction

import (
	"time"

	"github.com/nookmarket/nook-cli/internal/session"
)

// Profile is an auction user profile
type Profile struct {
	Name     string         `json:"name"`
	Email    string         `json:"email,omitempty"`
	Bio      string         `json:"bio,omitempty"`
	Avatar   *session.Media `json:"avatar,omitempty"`
	Banner   *session.Media `json:"banner,omitempty"`
	Credits  int            `json:"credits"`
	Listings []Listing      `json:"listings,omitempty"`
	Wins     []Listing      `json:"wins,omitempty"`
	Count    ProfileCount   `json:"_count"`
}

// ProfileCount holds the profile's aggregate counters
type ProfileCount struct {
	Listings int `json:"listings"`
	Wins     int `json:"wins"`
}

// Listing is an auction listing
type Listing struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Media       []session.Media `json:"media,omitempty"`
	Created     time.Time       `json:"created"`
	Updated     time.Time       `json:"updated"`
	EndsAt      time.Time       `json:"endsAt"`
	Seller      *Profile        `json:"seller,omitempty"`
	Bids        []Bid           `json:"bids,omitempty"`
	Count       ListingCount    `json:"_count"`
}

// ListingCount holds the listing's aggregate counters
type ListingCount struct {
	Bids int `json:"bids"`
}

// Bid is a bid placed on a listing
type Bid struct {
	ID      string    `json:"id"`
	Amount  int       `json:"amount"`
	Bidder  *Profile  `json:"bidder,omitempty"`
	Created time.Time `json:"created"`
	Listing *Listing  `json:"listing,omitempty"`
}

// BidderName returns the name of the bidder, if known
func (b Bid) BidderName() string {
	if b.Bidder == nil || b.Bidder.Name == "" {
		return "Unknown bidder"
	}
	return b.Bidder.Name
}

// RegisterRequest is the payload to register a new user
type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Avatar   *session.Media `json:"avatar,omitempty"`
}

// ProfileUpdate is the payload to update the signed-in user's profile
type ProfileUpdate struct {
	Avatar *session.Media `json:"avatar,omitempty"`
	Banner *session.Media `json:"banner,omitempty"`
	Bio    *string        `json:"bio,omitempty"`
}

// IsEmpty reports whether the update carries no changes
func (pu ProfileUpdate) IsEmpty() bool {
	return pu.Avatar == nil && pu.Banner == nil && pu.Bio == nil
}

// ListingRequest is the payload to create or update a listing
type ListingRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Media       []session.Media `json:"media,omitempty"`
	EndsAt      time.Time       `json:"endsAt"`
}

// ListingFilter filters the active listings
type ListingFilter struct {
	Tag   string
	Limit int
	Page  int
}
