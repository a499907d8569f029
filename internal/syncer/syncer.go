package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MichalMitros/stock-sync/internal/platform"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/MichalMitros/stock-sync/internal/reconciler"
	"github.com/MichalMitros/stock-sync/internal/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Loader --filename loader.go
//go:generate mockery --name Channel --filename channel.go

// Loader loads current inventory.
type Loader interface {
	Load(ctx context.Context) ([]models.InventoryRecord, error)
}

// Channel is single marketplace catalog accepting stock and price updates.
type Channel interface {
	// Name returns channel name used in logs and reports.
	Name() string
	// OfferIDs returns complete list of channel offer ids.
	OfferIDs(ctx context.Context) ([]string, error)
	// UpdateStocks sends single batch of stocks.
	UpdateStocks(ctx context.Context, stocks []models.Stock) error
	// UpdatePrices sends single batch of prices.
	UpdatePrices(ctx context.Context, prices []models.Price) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Target is marketplace with its channels.
type Target struct {
	Marketplace    string
	Channels       []Channel
	StockBatchSize int
	PriceBatchSize int
	// StopOnError skips remaining channels once one of them failed.
	StopOnError bool
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer pushes inventory stocks and prices to marketplaces.
type Syncer struct {
	loader      Loader
	targets     []Target
	logger      *zerolog.Logger
	clock       Clock
	parallelism int
	running     sync.Mutex
}

// NewSyncer returns new Syncer.
func NewSyncer(loader Loader, targets []Target, logger *zerolog.Logger, ops ...Option) *Syncer {
	s := &Syncer{
		loader:      loader,
		targets:     targets,
		logger:      logger,
		clock:       systemClock{},
		parallelism: 1,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// Marketplaces returns names of configured marketplaces.
func (s *Syncer) Marketplaces() []string {
	return lo.Map(s.targets, func(t Target, _ int) string { return t.Marketplace })
}

// Sync loads inventory once and syncs it to requested marketplaces, to all of them when none requested.
// Channel failures don't abort the run, they are reported in returned Report.
// Overlapping calls fail with platform.ErrAlreadyRunning.
func (s *Syncer) Sync(ctx context.Context, marketplaces ...string) (*models.Report, error) {
	if !s.running.TryLock() {
		return nil, platform.ErrAlreadyRunning
	}
	defer s.running.Unlock()

	targets, err := s.selectTargets(marketplaces)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:        uuid.NewString(),
		StartedAt: s.clock.Now(),
	}

	logger := s.logger.With().Str("run", report.ID).Logger()
	ctx = logger.WithContext(ctx)

	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't load inventory: %w", err)
	}
	report.Records = len(records)

	logger.Info().
		Int("records", len(records)).
		Strs("marketplaces", lo.Map(targets, func(t Target, _ int) string { return t.Marketplace })).
		Msg("inventory loaded")

	results := make([][]models.ChannelResult, len(targets))

	var group errgroup.Group
	group.SetLimit(s.parallelism)

	for ix := range targets {
		group.Go(func() error {
			results[ix] = s.syncTarget(ctx, &targets[ix], records)
			return nil
		})
	}
	// Workers report failures through results and never return errors.
	group.Wait()

	report.Channels = lo.Flatten(results)
	report.FinishedAt = s.clock.Now()

	return report, nil
}

func (s *Syncer) selectTargets(marketplaces []string) ([]Target, error) {
	if len(marketplaces) == 0 {
		return s.targets, nil
	}

	targets := make([]Target, 0, len(marketplaces))
	for _, name := range lo.Uniq(marketplaces) {
		target, ok := lo.Find(s.targets, func(t Target) bool { return t.Marketplace == name })
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMarketplace, name)
		}
		targets = append(targets, target)
	}

	return targets, nil
}

func (s *Syncer) syncTarget(ctx context.Context, target *Target, records []models.InventoryRecord) []models.ChannelResult {
	results := make([]models.ChannelResult, 0, len(target.Channels))
	failed := false

	for _, channel := range target.Channels {
		logger := zerolog.Ctx(ctx).With().
			Str("marketplace", target.Marketplace).
			Str("channel", channel.Name()).
			Logger()

		if failed && target.StopOnError {
			logger.Warn().Msg("channel skipped after previous channel failure")
			results = append(results, models.ChannelResult{
				Marketplace: target.Marketplace,
				Channel:     channel.Name(),
				Skipped:     true,
			})
			continue
		}

		result := s.syncChannel(logger.WithContext(ctx), target, channel, records)
		if result.Err != nil {
			failed = true
			result.Failure = Classify(result.Err)
			logger.Error().
				Err(result.Err).
				Str("failure", string(result.Failure)).
				Msg(failureMessage(result.Failure))
		} else {
			logger.Info().
				Int("offers", result.Offers).
				Int("stocks", result.Stocks).
				Int("in_stock", result.InStock).
				Int("prices", result.Prices).
				Int("stock_batches", result.StockBatches).
				Int("price_batches", result.PriceBatches).
				Msg("channel synced")
		}

		results = append(results, result)
	}

	return results
}

func (s *Syncer) syncChannel(
	ctx context.Context,
	target *Target,
	channel Channel,
	records []models.InventoryRecord,
) models.ChannelResult {
	result := models.ChannelResult{
		Marketplace: target.Marketplace,
		Channel:     channel.Name(),
	}

	// fetch catalog, shared by both reconcilers.
	offerIDs, err := channel.OfferIDs(ctx)
	if err != nil {
		result.Err = fmt.Errorf("can't fetch offer ids: %w", err)
		return result
	}
	result.Offers = len(offerIDs)

	// stocks.
	stocks, err := reconciler.Stocks(records, offerIDs, s.clock.Now())
	if err != nil {
		result.Err = fmt.Errorf("can't reconcile stocks: %w", err)
		return result
	}
	result.Stocks = len(stocks)
	result.InStock = lo.CountBy(stocks, func(st models.Stock) bool { return st.Count != 0 })

	result.StockBatches, err = uploader.Upload(ctx, stocks, target.StockBatchSize, channel.UpdateStocks)
	if err != nil {
		result.Err = fmt.Errorf("can't upload stocks: %w", err)
		return result
	}

	// prices.
	prices, err := reconciler.Prices(records, offerIDs)
	if err != nil {
		result.Err = fmt.Errorf("can't reconcile prices: %w", err)
		return result
	}
	result.Prices = len(prices)

	result.PriceBatches, err = uploader.Upload(ctx, prices, target.PriceBatchSize, channel.UpdatePrices)
	if err != nil {
		result.Err = fmt.Errorf("can't upload prices: %w", err)
		return result
	}

	return result
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}

// WithParallelism sets number of marketplaces synced concurrently.
func WithParallelism(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.parallelism = n
		}
	}
}
