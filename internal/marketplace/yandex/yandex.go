package yandex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MichalMitros/stock-sync/internal/platform/apiclient"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
)

const (
	// DefaultURL is partner API address.
	DefaultURL = "https://api.partner.market.yandex.ru"
	// Name is marketplace name.
	Name = "yandex"

	defaultPageLimit = 200
)

// Option is custom configuration of Client.
type Option func(c *Client)

// Client is partner API client shared by campaigns of one account.
type Client struct {
	api       *apiclient.Client
	pageLimit int
}

// NewClient returns new Client authorized with OAuth token.
func NewClient(client *http.Client, baseURL, userAgent, token string, ops ...Option) *Client {
	cli := &Client{
		api: apiclient.NewClient(client, baseURL, userAgent, http.Header{
			"Authorization": {"Bearer " + token},
		}),
		pageLimit: defaultPageLimit,
	}

	for _, op := range ops {
		op(cli)
	}

	return cli
}

// Campaign returns channel of provided campaign whose stocks are bound to warehouseID.
func (c *Client) Campaign(name, campaignID, warehouseID string) *Campaign {
	return &Campaign{
		client:      c,
		name:        name,
		campaignID:  campaignID,
		warehouseID: warehouseID,
	}
}

// WithPageLimit sets page size of offer mapping requests.
func WithPageLimit(limit int) Option {
	return func(c *Client) {
		c.pageLimit = limit
	}
}

// Campaign is a single fulfillment channel (e.g. FBS or DBS) with own catalog and warehouse.
type Campaign struct {
	client      *Client
	name        string
	campaignID  string
	warehouseID string
}

// Name returns channel name.
func (c *Campaign) Name() string {
	return c.name
}

// OfferIDs returns shop skus of all campaign offers, following next page tokens until there is none.
// An empty page or repeated token while more pages are announced is ErrIncompleteCatalog.
func (c *Campaign) OfferIDs(ctx context.Context) ([]string, error) {
	var (
		offerIDs  []string
		pageToken string
	)

	for {
		query := url.Values{
			"page_token": {pageToken},
			"limit":      {strconv.Itoa(c.client.pageLimit)},
		}

		var resp mappingResponse
		if err := c.client.api.Do(ctx, http.MethodGet, c.path("offer-mapping-entries"), query, nil, &resp); err != nil {
			return nil, fmt.Errorf("can't list offer mapping entries: %w", err)
		}

		for _, entry := range resp.Result.OfferMappingEntries {
			offerIDs = append(offerIDs, entry.Offer.ShopSKU)
		}

		next := resp.Result.Paging.NextPageToken
		if next == "" {
			return offerIDs, nil
		}

		if len(resp.Result.OfferMappingEntries) == 0 || next == pageToken {
			return nil, fmt.Errorf("%w: page token %q after %d offers", ErrIncompleteCatalog, next, len(offerIDs))
		}
		pageToken = next
	}
}

// UpdateStocks sends single stocks update request.
func (c *Campaign) UpdateStocks(ctx context.Context, stocks []models.Stock) error {
	body := stocksRequest{SKUs: ToStockPayloads(stocks, c.warehouseID)}
	if err := c.client.api.Do(ctx, http.MethodPut, c.path("offers/stocks"), nil, body, nil); err != nil {
		return fmt.Errorf("can't update stocks: %w", err)
	}

	return nil
}

// UpdatePrices sends single prices update request.
func (c *Campaign) UpdatePrices(ctx context.Context, prices []models.Price) error {
	body := pricesRequest{Offers: ToPricePayloads(prices)}
	if err := c.client.api.Do(ctx, http.MethodPost, c.path("offer-prices/updates"), nil, body, nil); err != nil {
		return fmt.Errorf("can't update prices: %w", err)
	}

	return nil
}

func (c *Campaign) path(endpoint string) string {
	return "/campaigns/" + url.PathEscape(c.campaignID) + "/" + endpoint
}
