package reconciler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
)

// Stocks merges inventory records with marketplace offer ids into complete stock list.
//
// Records whose code is a known offer id produce entries in inventory order, every id is matched at most once,
// so repeated codes are dropped. Offer ids without matching record get zero stock, in catalog order.
// All entries share provided time. offerIDs is not modified.
func Stocks(records []models.InventoryRecord, offerIDs []string, at time.Time) ([]models.Stock, error) {
	offers := NewOfferSet(offerIDs)
	stocks := make([]models.Stock, 0, len(offerIDs))

	for ix := range records {
		if !offers.Contains(records[ix].Code) {
			continue
		}

		count, err := records[ix].Quantity.Stock()
		if err != nil {
			var qErr *models.QuantityError
			if errors.As(err, &qErr) {
				qErr.Code = records[ix].Code
			}
			return nil, err
		}

		offers.Take(records[ix].Code)
		stocks = append(stocks, models.Stock{
			OfferID:   records[ix].Code,
			Count:     count,
			UpdatedAt: at,
		})
	}

	for _, id := range offers.Remaining() {
		stocks = append(stocks, models.Stock{
			OfferID:   id,
			Count:     0,
			UpdatedAt: at,
		})
	}

	return stocks, nil
}

// Prices returns price entry for every record whose code is a known offer id.
// Unlike Stocks it doesn't produce entries for offer ids missing in inventory.
func Prices(records []models.InventoryRecord, offerIDs []string) ([]models.Price, error) {
	known := NewOfferSet(offerIDs)
	prices := make([]models.Price, 0, len(records))

	for ix := range records {
		if !known.Contains(records[ix].Code) {
			continue
		}

		digits := NormalizePrice(records[ix].Price)
		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q for code %q: %w", ErrMalformedPrice, records[ix].Price, records[ix].Code, err)
		}

		prices = append(prices, models.Price{
			OfferID: records[ix].Code,
			Value:   value,
		})
	}

	return prices, nil
}
