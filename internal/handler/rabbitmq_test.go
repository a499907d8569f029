package handler_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/stock-sync/internal/handler"
	"github.com/MichalMitros/stock-sync/internal/handler/mocks"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/MichalMitros/stock-sync/internal/platform/rabbitmq"
	"github.com/go-faker/faker/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	queue     = "stock-sync." + faker.Word()
	startedAt = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	okReport  = &models.Report{
		ID:         faker.UUIDHyphenated(),
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Minute),
		Records:    3,
		Channels: []models.ChannelResult{
			{Marketplace: "ozon", Channel: "seller", Offers: 3, Stocks: 3, InStock: 2, Prices: 2, StockBatches: 1, PriceBatches: 1},
		},
	}
	failedReport = &models.Report{
		ID:         faker.UUIDHyphenated(),
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Minute),
		Records:    3,
		Channels: []models.ChannelResult{
			{Marketplace: "yandex", Channel: "fbs", Failure: models.FailureTimeout, Err: assert.AnError},
			{Marketplace: "yandex", Channel: "dbs", Skipped: true},
		},
	}
)

func TestUnitHandle(t *testing.T) {
	tests := map[string]struct {
		message      string
		marketplaces []string
		report       *models.Report
		syncErr      error
		wantSync     bool
		wantErr      error
		wantErrText  string
		wantLog      string
	}{
		"all marketplaces": {
			message:  `{}`,
			report:   okReport,
			wantSync: true,
			wantLog:  "sync finished",
		},
		"selected marketplaces": {
			message:      `{"marketplaces":["ozon","yandex"]}`,
			marketplaces: []string{"ozon", "yandex"},
			report:       okReport,
			wantSync:     true,
			wantLog:      "sync finished",
		},
		"failed channels": {
			message:      `{"marketplaces":["yandex"]}`,
			marketplaces: []string{"yandex"},
			report:       failedReport,
			wantSync:     true,
			wantErr:      handler.ErrSyncFailed,
			wantErrText:  "2 of 2 channels failed",
			wantLog:      `"failure":"timeout"`,
		},
		"sync error": {
			message:     `{}`,
			syncErr:     assert.AnError,
			wantSync:    true,
			wantErr:     assert.AnError,
			wantErrText: "can't sync",
		},
		"malformed command": {
			message:     `{"marketplaces":`,
			wantErrText: "can't decode sync command",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			syncer := mocks.NewSyncer(t)
			if tt.wantSync {
				args := []any{mock.Anything}
				for _, m := range tt.marketplaces {
					args = append(args, m)
				}
				syncer.On("Sync", args...).Return(tt.report, tt.syncErr).Once()
			}

			han := handler.NewHandler(mocks.NewConsumer(t), syncer, &logger)
			err := han.Handle(context.TODO(), []byte(tt.message))

			if tt.wantErrText != "" {
				require.ErrorContains(t, err, tt.wantErrText, "should return correct error")
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr, "should wrap correct error")
				}
			} else {
				require.NoError(t, err, "shouldn't return any error")
			}

			if tt.wantLog != "" {
				assert.Contains(t, buf.String(), tt.wantLog, "should log sync report")
			}
		})
	}
}

func TestUnitStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	errs := make(chan error)
	defer close(errs)

	var consumed rabbitmq.HandlerFunc
	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, queue, mock.Anything).
		Run(func(args mock.Arguments) { consumed = args.Get(2).(rabbitmq.HandlerFunc) }).
		Return((<-chan error)(errs), nil).
		Once()

	syncer := mocks.NewSyncer(t)
	syncer.On("Sync", mock.Anything, "ozon").Return(okReport, nil).Once()

	han := handler.NewHandler(consumer, syncer, &logger)

	require.NoError(t, han.Start(context.TODO(), queue), "shouldn't return any error")
	require.NotNil(t, consumed, "should register message handler")
	assert.NoError(t, consumed(context.TODO(), []byte(`{"marketplaces":["ozon"]}`)), "should handle consumed message")
}

func TestUnitStartError(t *testing.T) {
	logger := zerolog.Nop()

	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, queue, mock.Anything).Return(nil, assert.AnError).Once()

	han := handler.NewHandler(consumer, mocks.NewSyncer(t), &logger)

	require.ErrorIs(t, han.Start(context.TODO(), queue), assert.AnError, "should return consume error")
}

func TestUnitLogReport(t *testing.T) {
	tests := map[string]struct {
		report    *models.Report
		wantLevel string
		wantParts []string
	}{
		"succeeded": {
			report:    okReport,
			wantLevel: `"level":"info"`,
			wantParts: []string{`"in_stock":2`, `"failed":false`, okReport.ID},
		},
		"failed": {
			report:    failedReport,
			wantLevel: `"level":"warn"`,
			wantParts: []string{`"skipped":true`, `"failed":true`, assert.AnError.Error()},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			handler.LogReport(&logger, tt.report)

			assert.Contains(t, buf.String(), tt.wantLevel, "should log with correct level")
			for _, part := range tt.wantParts {
				assert.Contains(t, buf.String(), part, "should log report details")
			}
		})
	}
}
