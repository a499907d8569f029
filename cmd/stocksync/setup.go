package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MichalMitros/stock-sync/cmd/stocksync/config"
	"github.com/MichalMitros/stock-sync/internal/marketplace/ozon"
	"github.com/MichalMitros/stock-sync/internal/marketplace/yandex"
	"github.com/MichalMitros/stock-sync/internal/syncer"
	"github.com/rs/zerolog"
)

const (
	fbsChannel = "fbs"
	dbsChannel = "dbs"
)

func newLogger(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.New(os.Stderr).With().Timestamp().Logger(), fmt.Errorf("can't parse log level: %w", err)
	}

	switch format {
	case "console":
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(lvl).With().Timestamp().Logger(), nil
	case "json", "":
		return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
	default:
		return zerolog.New(os.Stderr).With().Timestamp().Logger(), fmt.Errorf("unknown log format %q", format)
	}
}

// buildTargets returns targets of marketplaces with configured credentials.
// Yandex campaigns stop at first failed channel, ozon has a single channel.
func buildTargets(cfg *config.Config, client *http.Client) []syncer.Target {
	var targets []syncer.Target

	if cfg.Yandex.Enabled() {
		cli := yandex.NewClient(client, cfg.Yandex.URL, UserAgent, cfg.Yandex.Token)

		var channels []syncer.Channel
		if cfg.Yandex.FBSCampaignID != "" {
			channels = append(channels, cli.Campaign(fbsChannel, cfg.Yandex.FBSCampaignID, cfg.Yandex.FBSWarehouseID))
		}
		if cfg.Yandex.DBSCampaignID != "" {
			channels = append(channels, cli.Campaign(dbsChannel, cfg.Yandex.DBSCampaignID, cfg.Yandex.DBSWarehouseID))
		}

		targets = append(targets, syncer.Target{
			Marketplace:    yandex.Name,
			Channels:       channels,
			StockBatchSize: cfg.Yandex.StockBatchSize,
			PriceBatchSize: cfg.Yandex.PriceBatchSize,
			StopOnError:    true,
		})
	}

	if cfg.Ozon.Enabled() {
		targets = append(targets, syncer.Target{
			Marketplace:    ozon.Name,
			Channels:       []syncer.Channel{ozon.NewClient(client, cfg.Ozon.URL, UserAgent, cfg.Ozon.ClientID, cfg.Ozon.Token)},
			StockBatchSize: cfg.Ozon.StockBatchSize,
			PriceBatchSize: cfg.Ozon.PriceBatchSize,
		})
	}

	return targets
}
