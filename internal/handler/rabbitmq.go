package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/MichalMitros/stock-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/stock-sync/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Syncer --filename syncer.go
//go:generate mockery --name Consumer --filename consumer.go

// Syncer syncs inventory to marketplaces.
type Syncer interface {
	Sync(ctx context.Context, marketplaces ...string) (*models.Report, error)
}

// Consumer consumes queue messages in background.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles sync commands from RMQ.
type RMQHandler struct {
	consumer Consumer
	syncer   Syncer
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, syncer Syncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer: consumer,
		syncer:   syncer,
		logger:   logger,
	}
}

// Start starts consuming and handling sync commands from queue.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errs, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errs {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle runs sync requested by command message.
// It returns ErrSyncFailed when any channel failed, so the message is nacked.
func (h *RMQHandler) Handle(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Strs("marketplaces", cmd.Marketplaces).
		Msg("sync started")

	report, err := h.syncer.Sync(ctx, cmd.Marketplaces...)
	if err != nil {
		return fmt.Errorf("can't sync: %w", err)
	}

	LogReport(h.logger, report)

	if report.Failed() {
		failed := lo.CountBy(report.Channels, func(r models.ChannelResult) bool { return r.Failed() })
		return fmt.Errorf("%w: %d of %d channels failed in run %s", ErrSyncFailed, failed, len(report.Channels), report.ID)
	}

	return nil
}

// LogReport logs summary of sync run.
func LogReport(logger *zerolog.Logger, report *models.Report) {
	channels := zerolog.Arr()
	for _, result := range report.Channels {
		channels.Object(result)
	}

	event := logger.Info()
	if report.Failed() {
		event = logger.Warn()
	}

	event.
		Str("run", report.ID).
		Int("records", report.Records).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Bool("failed", report.Failed()).
		Array("channels", channels).
		Msg("sync finished")
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, nil
}
