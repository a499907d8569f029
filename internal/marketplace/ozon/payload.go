package ozon

import (
	"strconv"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/samber/lo"
)

const (
	currencyCode      = "RUB"
	autoActionUnknown = "UNKNOWN"
	oldPriceReset     = "0"
)

// StockPayload is stock entry of stocks import request.
type StockPayload struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// PricePayload is price entry of prices import request.
type PricePayload struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type stocksRequest struct {
	Stocks []StockPayload `json:"stocks"`
}

type pricesRequest struct {
	Prices []PricePayload `json:"prices"`
}

type listFilter struct {
	Visibility string `json:"visibility"`
}

type listRequest struct {
	Filter listFilter `json:"filter"`
	LastID string     `json:"last_id"`
	Limit  int        `json:"limit"`
}

type listItem struct {
	ProductID int64  `json:"product_id"`
	OfferID   string `json:"offer_id"`
}

type listResponse struct {
	Result struct {
		Items  []listItem `json:"items"`
		Total  int        `json:"total"`
		LastID string     `json:"last_id"`
	} `json:"result"`
}

// ToStockPayloads converts stocks into import payloads.
func ToStockPayloads(stocks []models.Stock) []StockPayload {
	return lo.Map(stocks, func(s models.Stock, _ int) StockPayload {
		return StockPayload{
			OfferID: s.OfferID,
			Stock:   s.Count,
		}
	})
}

// ToPricePayloads converts prices into import payloads with old price and auto actions reset.
func ToPricePayloads(prices []models.Price) []PricePayload {
	return lo.Map(prices, func(p models.Price, _ int) PricePayload {
		return PricePayload{
			AutoActionEnabled: autoActionUnknown,
			CurrencyCode:      currencyCode,
			OfferID:           p.OfferID,
			OldPrice:          oldPriceReset,
			Price:             strconv.FormatInt(p.Value, 10),
		}
	})
}
