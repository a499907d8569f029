package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MichalMitros/stock-sync/cmd/stocksync/config"
	"github.com/MichalMitros/stock-sync/internal/decoder"
	"github.com/MichalMitros/stock-sync/internal/fetcher"
	"github.com/MichalMitros/stock-sync/internal/handler"
	"github.com/MichalMitros/stock-sync/internal/inventory"
	"github.com/MichalMitros/stock-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/stock-sync/internal/syncer"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used in all outgoing requests.
	UserAgent = "stock-sync/0.1.0"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal().
			Err(err).
			Msg("can't load .env file")
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't configure logger")
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	targets := buildTargets(&cfg, httpClient)
	if len(targets) == 0 {
		logger.Fatal().Msg("no marketplace credentials configured")
	}

	syn := syncer.NewSyncer(
		inventory.NewLoader(
			fetcher.NewFetcher(httpClient, UserAgent),
			decoder.NewDecoder(cfg.Inventory.HeaderRow),
			cfg.Inventory.URL,
			cfg.Inventory.File,
		),
		targets,
		&logger,
		syncer.WithParallelism(cfg.Parallelism),
	)

	if cfg.RabbitMQ.URL == "" {
		code := runOnce(ctx, syn, &logger, os.Args[1:])
		cancel()
		os.Exit(code)
	}

	runWorker(ctx, cancel, &cfg.RabbitMQ, syn, &logger)
}

// runOnce runs single sync and returns process exit code.
func runOnce(ctx context.Context, syn *syncer.Syncer, logger *zerolog.Logger, marketplaces []string) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := syn.Sync(ctx, marketplaces...)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("sync failed")
		return 1
	}

	handler.LogReport(logger, report)

	if report.Failed() {
		return 1
	}
	return 0
}

func runWorker(
	ctx context.Context,
	cancel context.CancelFunc,
	cfg *config.RabbitMQ,
	syn *syncer.Syncer,
	logger *zerolog.Logger,
) {
	amqpConnection, err := amqp.Dial(cfg.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	mq, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	if err := mq.Declare(cfg.Queue, cfg.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare RabbitMQ topology")
	}

	han := handler.NewHandler(mq, syn, logger)

	// start consuming and handling messages
	if err := han.Start(ctx, cfg.Queue); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().
		Strs("marketplaces", syn.Marketplaces()).
		Msg("stock sync worker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-mq.Done()

	if err := mq.Close(); err != nil {
		logger.Error().
			Err(err).
			Msg("can't close RabbitMQ channel")
	}

	if err := amqpConnection.Close(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't close RabbitMQ connection")
	}

	logger.Info().Msg("graceful shutdown successful")
}
