package models

import (
	"time"

	"github.com/rs/zerolog"
)

// InventoryRecord is a single row of the upstream inventory spreadsheet.
type InventoryRecord struct {
	// Code joins the record with marketplace offer ids.
	Code     string
	Quantity Quantity
	// Price is raw price text, e.g. "5'990.00 руб.".
	Price string
}

// Stock is marketplace independent stock entry.
type Stock struct {
	OfferID string
	Count   int
	// UpdatedAt is shared by every entry of one reconciliation run.
	UpdatedAt time.Time
}

// Price is marketplace independent price entry.
type Price struct {
	OfferID string
	Value   int64
}

// FailureKind classifies channel sync failures.
type FailureKind string

// Failure kinds.
const (
	FailureNone              FailureKind = ""
	FailureTimeout           FailureKind = "timeout"
	FailureConnection        FailureKind = "connection"
	FailureHTTPStatus        FailureKind = "http_status"
	FailureMalformedQuantity FailureKind = "malformed_quantity"
	FailureMalformedPrice    FailureKind = "malformed_price"
	FailureGeneric           FailureKind = "generic"
)

// ChannelResult is outcome of syncing one marketplace channel.
type ChannelResult struct {
	Marketplace string
	Channel     string

	Offers       int
	Stocks       int
	InStock      int
	Prices       int
	StockBatches int
	PriceBatches int

	// Skipped is set when channel was not attempted because previous channel of the same marketplace failed.
	Skipped bool
	Failure FailureKind
	Err     error
}

// Failed reports whether channel sync failed or was skipped.
func (r ChannelResult) Failed() bool {
	return r.Err != nil || r.Skipped
}

// Report is outcome of a whole sync run.
type Report struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Records    int
	Channels   []ChannelResult
}

// Failed reports whether any channel failed.
func (r *Report) Failed() bool {
	for ix := range r.Channels {
		if r.Channels[ix].Failed() {
			return true
		}
	}
	return false
}

// MarshalZerologObject writes channel result fields to log event.
func (r ChannelResult) MarshalZerologObject(e *zerolog.Event) {
	e.Str("marketplace", r.Marketplace).
		Str("channel", r.Channel).
		Int("offers", r.Offers).
		Int("stocks", r.Stocks).
		Int("in_stock", r.InStock).
		Int("prices", r.Prices).
		Int("stock_batches", r.StockBatches).
		Int("price_batches", r.PriceBatches)

	if r.Skipped {
		e.Bool("skipped", true)
	}
	if r.Err != nil {
		e.Str("failure", string(r.Failure)).AnErr("error", r.Err)
	}
}
