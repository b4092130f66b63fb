package auction

import (
	"context"
	"net/http"

	"github.com/nookmarket/nook-cli/internal/utils/api"
)

type bidPayload struct {
	Amount int `json:"amount"`
}

func (c *client) PlaceBid(ctx context.Context, listingID string, amount int) error {
	res, err := c.doJSON(ctx, http.MethodPost, listingPath(listingBidPathPattern, listingID), bidPayload{amount}, api.RequestOptions{UseAuth: true})
	if err != nil {
		return err
	}
	return res.Body.Close()
}
