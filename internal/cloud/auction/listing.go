package auction

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/flags"
)

// FallbackImage is shown for listings without media
var FallbackImage = session.Media{
	URL: "https://i.postimg.cc/HWvz0myL/Logo-The-Nook-Market-redigert-redigert-redigert.webp",
	Alt: "The Nook Market placeholder image",
}

const (
	// DefaultListingImageAlt is the alt text of a listing image without a title
	DefaultListingImageAlt = "Listing image"

	// DefaultTruncateLength is the default length descriptions are cut to
	DefaultTruncateLength = 120

	ellipsis = "…"
)

// HighestBid returns the highest amount bid, or 0 without any bids
func HighestBid(bids []Bid) int {
	var max int
	for _, bid := range bids {
		if bid.Amount > max {
			max = bid.Amount
		}
	}
	return max
}

// HighestBid returns the highest amount bid on the listing
func (l Listing) HighestBid() int { return HighestBid(l.Bids) }

// IsActive reports whether bids are still accepted at the provided time
func (l Listing) IsActive(now time.Time) bool {
	return !l.EndsAt.IsZero() && l.EndsAt.After(now)
}

// SellerName returns the name of the listing's seller, if known
func (l Listing) SellerName() string {
	if l.Seller == nil {
		return ""
	}
	return l.Seller.Name
}

// BidsNewestFirst returns the listing's bids ordered from the most recent
func (l Listing) BidsNewestFirst() []Bid {
	bids := make([]Bid, len(l.Bids))
	copy(bids, l.Bids)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Created.After(bids[j].Created)
	})
	return bids
}

// EndsLabel describes how long remains until endsAt
func EndsLabel(endsAt, now time.Time) string {
	if endsAt.IsZero() {
		return ""
	}

	days := int(math.Ceil(endsAt.Sub(now).Hours() / 24))
	switch {
	case days > 1:
		return fmt.Sprintf("%d days left", days)
	case days == 1:
		return "Ends tomorrow"
	case days == 0:
		return "Ends today"
	}
	return "Auction ended"
}

// StatusLabel describes whether the listing still takes bids, and until when
func (l Listing) StatusLabel(now time.Time) string {
	switch {
	case l.EndsAt.IsZero():
		return "Draft"
	case !l.IsActive(now):
		return "Ended"
	}
	return "Active · " + EndsLabel(l.EndsAt, now)
}

// BidLabel describes the listing's highest bid
func (l Listing) BidLabel() string {
	if highest := l.HighestBid(); highest > 0 {
		return fmt.Sprintf("%d ✧", highest)
	}
	return "No bids yet"
}

// PrimaryImage returns the first listing image, or FallbackImage
func PrimaryImage(l Listing) session.Media {
	if len(l.Media) == 0 || l.Media[0].URL == "" {
		return FallbackImage
	}

	media := l.Media[0]
	if media.Alt == "" {
		media.Alt = l.Title
	}
	if media.Alt == "" {
		media.Alt = DefaultListingImageAlt
	}
	return media
}

// TruncateText cuts text to max characters, marking the cut with an ellipsis
func TruncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimRight(string(runes[:max]), " \t\n") + ellipsis
}

// MatchesQuery reports whether the listing's title, description or tags
// contain the query, ignoring case. An empty query matches everything.
func MatchesQuery(l Listing, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Description), q) ||
		strings.Contains(strings.ToLower(strings.Join(l.Tags, " ")), q)
}

// FilterListings returns the listings matching the query
func FilterListings(listings []Listing, query string) []Listing {
	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if MatchesQuery(l, query) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// SplitTags parses a comma separated tag list, dropping blanks
func SplitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ListingSort is the order listings are shown in
type ListingSort string

// set of supported listing sorts
const (
	ListingSortEndingSoon ListingSort = "ending-soon"
	ListingSortNewest     ListingSort = "newest"
	ListingSortHighestBid ListingSort = "highest-bid"
)

// ListingSortValues are the supported listing sorts
var ListingSortValues = []string{
	string(ListingSortEndingSoon),
	string(ListingSortNewest),
	string(ListingSortHighestBid),
}

var errInvalidListingSort = errors.New("unsupported sort, use one of [" + strings.Join(ListingSortValues, ", ") + "] instead")

func (s ListingSort) String() string { return string(s) }

// Type returns the ListingSort type
func (s ListingSort) Type() string { return flags.TypeString }

// Set validates and sets the ListingSort value
func (s *ListingSort) Set(val string) error {
	v := ListingSort(strings.ToLower(val))
	switch v {
	case ListingSortEndingSoon, ListingSortNewest, ListingSortHighestBid:
	default:
		return errInvalidListingSort
	}
	*s = v
	return nil
}

// SortListings orders the listings in place
func SortListings(listings []Listing, by ListingSort) {
	var less func(a, b Listing) bool
	switch by {
	case ListingSortNewest:
		less = func(a, b Listing) bool { return a.Created.After(b.Created) }
	case ListingSortHighestBid:
		less = func(a, b Listing) bool { return a.HighestBid() > b.HighestBid() }
	default:
		less = func(a, b Listing) bool { return a.EndsAt.Before(b.EndsAt) }
	}
	sort.SliceStable(listings, func(i, j int) bool { return less(listings[i], listings[j]) })
}
