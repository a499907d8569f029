package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/MichalMitros/stock-sync/cmd/stocksync/config"
	"github.com/MichalMitros/stock-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/stock-sync/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const publishTimeout = 10 * time.Second

// trigger publishes sync command for marketplaces passed as arguments, all marketplaces when none passed.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal().
			Err(err).
			Msg("can't load .env file")
	}

	var cfg config.RabbitMQ
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	if cfg.URL == "" {
		logger.Fatal().Msg("RABBITMQ_URL is not set")
	}

	connection, err := amqp.Dial(cfg.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}
	defer connection.Close()

	mq, err := rabbitmq.NewRabbitMQ(connection, cfg.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}
	defer mq.Close()

	if err := mq.Declare(cfg.Queue, cfg.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare RabbitMQ topology")
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	marketplaces := os.Args[1:]
	cmndr := commander.NewSyncCommander(commander.NewRabbitMQSender(mq, cfg.RoutingKey))
	if err := cmndr.SendSyncCommand(ctx, marketplaces...); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't send sync command")
	}

	logger.Info().
		Strs("marketplaces", marketplaces).
		Str("routingKey", cfg.RoutingKey).
		Msg("sync command sent")
}
