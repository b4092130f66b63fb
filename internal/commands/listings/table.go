package listings

import (
	"fmt"
	"time"

	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/terminal"
)

const (
	headerID         = "ID"
	headerTitle      = "Title"
	headerSeller     = "Seller"
	headerHighestBid = "Highest Bid"
	headerBids       = "Bids"
	headerStatus     = "Status"

	headerBidder = "Bidder"
	headerAmount = "Amount"
	headerPlaced = "Placed"

	titleLength = 40

	timeFormat = "2006-01-02 15:04"
)

var tableHeaders = []string{headerID, headerTitle, headerSeller, headerHighestBid, headerBids, headerStatus}

// Credits formats an amount of credits
func Credits(amount int) string {
	return fmt.Sprintf("%d ✧", amount)
}

// Title returns the listing title as plain text, cut to fit a table cell
func Title(l auction.Listing) string {
	return auction.TruncateText(auction.PlainText(l.Title), titleLength)
}

// NewTableLog creates a table log of the listings
func NewTableLog(message string, listings []auction.Listing, now time.Time) terminal.Log {
	if len(listings) == 0 {
		return terminal.NewTextLog("%s: none found", message)
	}

	rows := make([]map[string]interface{}, 0, len(listings))
	for _, l := range listings {
		bids := l.Count.Bids
		if len(l.Bids) > bids {
			bids = len(l.Bids)
		}
		rows = append(rows, map[string]interface{}{
			headerID:         l.ID,
			headerTitle:      Title(l),
			headerSeller:     l.SellerName(),
			headerHighestBid: l.BidLabel(),
			headerBids:       bids,
			headerStatus:     l.StatusLabel(now),
		})
	}
	return terminal.NewTableLog(message, tableHeaders, rows...)
}

// NewBidsTableLog creates a table log of the bids placed on a listing
func NewBidsTableLog(message string, bids []auction.Bid) terminal.Log {
	if len(bids) == 0 {
		return terminal.NewTextLog("%s: no bids yet, be the first", message)
	}

	rows := make([]map[string]interface{}, 0, len(bids))
	for _, bid := range bids {
		rows = append(rows, map[string]interface{}{
			headerBidder: bid.BidderName(),
			headerAmount: Credits(bid.Amount),
			headerPlaced: bid.Created.Local().Format(timeFormat),
		})
	}
	return terminal.NewTableLog(message, []string{headerBidder, headerAmount, headerPlaced}, rows...)
}
