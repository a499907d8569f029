package ozon

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MichalMitros/stock-sync/internal/platform/apiclient"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
)

const (
	// DefaultURL is seller API address.
	DefaultURL = "https://api-seller.ozon.ru"
	// Name is marketplace name.
	Name = "ozon"
	// ChannelName is name of the only seller channel.
	ChannelName = "seller"

	defaultListLimit = 1000

	listPath   = "/v2/product/list"
	stocksPath = "/v1/product/import/stocks"
	pricesPath = "/v1/product/import/prices"
)

// Option is custom configuration of Client.
type Option func(c *Client)

// Client is seller API client.
type Client struct {
	api       *apiclient.Client
	listLimit int
}

// NewClient returns new Client authorized with clientID and apiKey.
func NewClient(client *http.Client, baseURL, userAgent, clientID, apiKey string, ops ...Option) *Client {
	cli := &Client{
		api: apiclient.NewClient(client, baseURL, userAgent, http.Header{
			"Client-Id": {clientID},
			"Api-Key":   {apiKey},
		}),
		listLimit: defaultListLimit,
	}

	for _, op := range ops {
		op(cli)
	}

	return cli
}

// Name returns channel name.
func (c *Client) Name() string {
	return ChannelName
}

// OfferIDs returns offer ids of all seller products.
// Pages are requested by last seen id until number of collected items reaches reported total.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	var (
		offerIDs []string
		lastID   string
	)

	for {
		var resp listResponse
		err := c.api.Do(ctx, http.MethodPost, listPath, nil, listRequest{
			Filter: listFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  c.listLimit,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("can't list products: %w", err)
		}

		for _, item := range resp.Result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}

		if len(offerIDs) >= resp.Result.Total {
			return offerIDs, nil
		}

		if len(resp.Result.Items) == 0 {
			return nil, fmt.Errorf("%w: got %d of %d", ErrIncompleteCatalog, len(offerIDs), resp.Result.Total)
		}

		lastID = resp.Result.LastID
	}
}

// UpdateStocks sends single stocks import request.
func (c *Client) UpdateStocks(ctx context.Context, stocks []models.Stock) error {
	err := c.api.Do(ctx, http.MethodPost, stocksPath, nil, stocksRequest{Stocks: ToStockPayloads(stocks)}, nil)
	if err != nil {
		return fmt.Errorf("can't update stocks: %w", err)
	}

	return nil
}

// UpdatePrices sends single prices import request.
func (c *Client) UpdatePrices(ctx context.Context, prices []models.Price) error {
	err := c.api.Do(ctx, http.MethodPost, pricesPath, nil, pricesRequest{Prices: ToPricePayloads(prices)}, nil)
	if err != nil {
		return fmt.Errorf("can't update prices: %w", err)
	}

	return nil
}

// WithListLimit sets page size of product list requests.
func WithListLimit(limit int) Option {
	return func(c *Client) {
		c.listLimit = limit
	}
}
