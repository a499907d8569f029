package yandex

import (
	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/samber/lo"
)

const (
	currencyID = "RUR"
	stockType  = "FIT"
	// TimeFormat is stock update time format, always UTC with seconds precision.
	TimeFormat = "2006-01-02T15:04:05Z"
)

// StockPayload is sku entry of stocks update request.
type StockPayload struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

// StockItem is stock count of sku.
type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// PricePayload is offer entry of prices update request.
type PricePayload struct {
	ID    string     `json:"id"`
	Price PriceValue `json:"price"`
}

// PriceValue is offer price.
type PriceValue struct {
	Value      int64  `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type stocksRequest struct {
	SKUs []StockPayload `json:"skus"`
}

type pricesRequest struct {
	Offers []PricePayload `json:"offers"`
}

type mappingEntry struct {
	Offer struct {
		ShopSKU string `json:"shopSku"`
	} `json:"offer"`
}

type mappingResponse struct {
	Result struct {
		Paging struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
		OfferMappingEntries []mappingEntry `json:"offerMappingEntries"`
	} `json:"result"`
}

// ToStockPayloads converts stocks into update payloads bound to warehouseID.
func ToStockPayloads(stocks []models.Stock, warehouseID string) []StockPayload {
	return lo.Map(stocks, func(s models.Stock, _ int) StockPayload {
		return StockPayload{
			SKU:         s.OfferID,
			WarehouseID: warehouseID,
			Items: []StockItem{{
				Count:     s.Count,
				Type:      stockType,
				UpdatedAt: s.UpdatedAt.UTC().Format(TimeFormat),
			}},
		}
	})
}

// ToPricePayloads converts prices into update payloads.
func ToPricePayloads(prices []models.Price) []PricePayload {
	return lo.Map(prices, func(p models.Price, _ int) PricePayload {
		return PricePayload{
			ID: p.OfferID,
			Price: PriceValue{
				Value:      p.Value,
				CurrencyID: currencyID,
			},
		}
	})
}
