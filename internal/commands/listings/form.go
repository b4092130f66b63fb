package listings

import (
	"errors"
	"strings"
	"time"

	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/session"
	"github.com/nookmarket/nook-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagTitle      = "title"
	flagTitleShort = "t"
	flagTitleUsage = "Specify the listing title"

	flagDescription      = "description"
	flagDescriptionShort = "d"
	flagDescriptionUsage = "Specify the listing description"

	flagTags      = "tags"
	flagTagsUsage = "Specify the listing tags as a comma separated list"

	flagMedia      = "media"
	flagMediaShort = "m"
	flagMediaUsage = "Specify an image URL to show with the listing, may be repeated"

	flagEndsAt      = "ends-at"
	flagEndsAtUsage = "Specify when the auction ends, e.g. 2026-12-24T18:00"
)

var (
	errTitleAndEndRequired = auction.UserError{
		Message: "Title and end date are required.",
		Err:     errors.New("listing title and end date must be set"),
	}
	errEndsInPast = auction.UserError{
		Message: "Please choose an end date that is in the future.",
		Err:     errors.New("listing end date is in the past"),
	}
)

// form holds the listing fields provided on the command line
type form struct {
	Title       flags.OptionalString
	Description flags.OptionalString
	Tags        flags.OptionalString
	Media       []string
	EndsAt      flags.Date
}

func (f *form) Flags(fs *pflag.FlagSet) {
	fs.VarP(&f.Title, flagTitle, flagTitleShort, flagTitleUsage)
	fs.VarP(&f.Description, flagDescription, flagDescriptionShort, flagDescriptionUsage)
	fs.Var(&f.Tags, flagTags, flagTagsUsage)
	fs.StringArrayVarP(&f.Media, flagMedia, flagMediaShort, nil, flagMediaUsage)
	fs.Var(&f.EndsAt, flagEndsAt, flagEndsAtUsage)
}

// request builds the listing payload from the form
func (f form) request(now time.Time) (auction.ListingRequest, error) {
	return f.overlay(auction.Listing{}, now)
}

// overlay builds the listing payload by laying the provided form fields
// over the listing's current values
func (f form) overlay(l auction.Listing, now time.Time) (auction.ListingRequest, error) {
	req := auction.ListingRequest{
		Title:       l.Title,
		Description: l.Description,
		Tags:        l.Tags,
		Media:       l.Media,
		EndsAt:      l.EndsAt,
	}

	if f.Title.IsSet {
		req.Title = strings.TrimSpace(f.Title.Value)
	}
	if f.Description.IsSet {
		req.Description = strings.TrimSpace(f.Description.Value)
	}
	if f.Tags.IsSet {
		req.Tags = auction.SplitTags(f.Tags.Value)
	}
	if !f.EndsAt.Time.IsZero() {
		req.EndsAt = f.EndsAt.Time
	}
	if len(f.Media) > 0 {
		req.Media = mediaOf(f.Media, req.Title)
	}

	if req.Title == "" || req.EndsAt.IsZero() {
		return auction.ListingRequest{}, errTitleAndEndRequired
	}
	if !req.EndsAt.After(now) {
		return auction.ListingRequest{}, errEndsInPast
	}
	return req, nil
}

func mediaOf(urls []string, title string) []session.Media {
	alt := title
	if alt == "" {
		alt = auction.DefaultListingImageAlt
	}

	var media []session.Media
	for _, url := range urls {
		if url = strings.TrimSpace(url); url != "" {
			media = append(media, session.Media{URL: url, Alt: alt})
		}
	}
	return media
}
