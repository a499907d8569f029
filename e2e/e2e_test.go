package e2e

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/stock-sync/e2e/helpers"
	"github.com/MichalMitros/stock-sync/internal/decoder"
	"github.com/MichalMitros/stock-sync/internal/fetcher"
	"github.com/MichalMitros/stock-sync/internal/handler"
	"github.com/MichalMitros/stock-sync/internal/inventory"
	"github.com/MichalMitros/stock-sync/internal/marketplace/ozon"
	"github.com/MichalMitros/stock-sync/internal/marketplace/yandex"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/MichalMitros/stock-sync/internal/platform/rabbitmq"
	"github.com/MichalMitros/stock-sync/internal/syncer"
	"github.com/MichalMitros/stock-sync/pkg/v1/commander"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

const (
	userAgent     = "stock-sync-e2e-test/0.0.1"
	exchange      = "stock-sync-e2e"
	inventoryFile = "ostatki.xlsx"
	headerRow     = 3
	fbsCampaign   = "101"
	dbsCampaign   = "202"
)

var records = []models.InventoryRecord{
	{Code: "A1", Quantity: models.QuantityMoreThanTen, Price: "5'990.00 руб."},
	{Code: "B2", Quantity: models.QuantityLow, Price: "12'500.00 руб."},
	{Code: "D4", Quantity: "7", Price: "990.00 руб."},
	{Code: "Z9", Quantity: "4", Price: "100.00 руб."},
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	connection *amqp.Connection
	channel    *amqp.Channel
}

func (s *E2ETestSuite) SetupSuite() {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		return
	}

	var err error
	if s.connection, err = amqp.Dial(url); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.connection == nil {
		return
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

// newSyncer wires real inventory loader and marketplace clients against test servers.
func (s *E2ETestSuite) newSyncer(logger *zerolog.Logger) (*syncer.Syncer, *helpers.FakeOzon, *helpers.FakeYandex) {
	archive := helpers.InventoryArchive(s.T(), inventoryFile, headerRow, records)
	inventorySrv := helpers.PrepareInventoryServer(s.T(), archive)

	fakeOzon, ozonSrv := helpers.NewFakeOzon(s.T(), []string{"A1", "C3", "D4"})
	fakeYandex, yandexSrv := helpers.NewFakeYandex(s.T(), map[string][]string{
		fbsCampaign: {"A1", "B2", "C3"},
		dbsCampaign: {"B2", "D4"},
	})

	client := &http.Client{Timeout: 5 * time.Second}
	yandexClient := yandex.NewClient(client, yandexSrv.URL, userAgent, "token")

	targets := []syncer.Target{
		{
			Marketplace: yandex.Name,
			Channels: []syncer.Channel{
				yandexClient.Campaign("fbs", fbsCampaign, "wh-fbs"),
				yandexClient.Campaign("dbs", dbsCampaign, "wh-dbs"),
			},
			StockBatchSize: 2000,
			PriceBatchSize: 500,
			StopOnError:    true,
		},
		{
			Marketplace:    ozon.Name,
			Channels:       []syncer.Channel{ozon.NewClient(client, ozonSrv.URL, userAgent, "42", "key")},
			StockBatchSize: 2,
			PriceBatchSize: 900,
		},
	}

	loader := inventory.NewLoader(
		fetcher.NewFetcher(client, userAgent),
		decoder.NewDecoder(headerRow),
		inventorySrv.URL+"/upload/files/ostatki.zip",
		inventoryFile,
	)

	return syncer.NewSyncer(loader, targets, logger, syncer.WithParallelism(2)), fakeOzon, fakeYandex
}

func (s *E2ETestSuite) TestOneShotSync() {
	logger := zerolog.Nop()
	syn, fakeOzon, fakeYandex := s.newSyncer(&logger)

	report, err := syn.Sync(context.Background())
	s.Require().NoError(err, "shouldn't return any error")
	s.False(report.Failed(), "shouldn't fail")
	s.Equal(len(records), report.Records, "should load every record")
	s.Len(report.Channels, 3, "should sync every channel")

	// ozon: 3 offers in batches of 2, prices only for known codes
	s.Equal([][]ozon.StockPayload{
		{{OfferID: "A1", Stock: 100}, {OfferID: "D4", Stock: 7}},
		{{OfferID: "C3", Stock: 0}},
	}, fakeOzon.Stocks(), "should send ozon stocks")
	s.Equal([][]ozon.PricePayload{{
		{AutoActionEnabled: "UNKNOWN", CurrencyCode: "RUB", OfferID: "A1", OldPrice: "0", Price: "5990"},
		{AutoActionEnabled: "UNKNOWN", CurrencyCode: "RUB", OfferID: "D4", OldPrice: "0", Price: "990"},
	}}, fakeOzon.Prices(), "should send ozon prices")

	// yandex fbs
	fbsStocks := fakeYandex.Stocks(fbsCampaign)
	s.Require().Len(fbsStocks, 3, "should send stock for every fbs offer")
	s.Equal([]string{"A1", "B2", "C3"}, skus(fbsStocks), "should send fbs stocks in reconciliation order")
	s.Equal([]int{100, 0, 0}, counts(fbsStocks), "should map fbs quantities")
	for _, stock := range fbsStocks {
		s.Equal("wh-fbs", stock.WarehouseID, "should bind stock to fbs warehouse")
		s.Equal(fbsStocks[0].Items[0].UpdatedAt, stock.Items[0].UpdatedAt, "should share update time")
	}
	s.Len(fakeYandex.Prices(fbsCampaign), 2, "should send fbs prices for known codes only")

	// yandex dbs
	dbsStocks := fakeYandex.Stocks(dbsCampaign)
	s.Equal([]string{"B2", "D4"}, skus(dbsStocks), "should send dbs stocks")
	s.Equal([]int{0, 7}, counts(dbsStocks), "should map dbs quantities")
	s.Equal([]yandex.PricePayload{
		{ID: "B2", Price: yandex.PriceValue{Value: 12500, CurrencyID: "RUR"}},
		{ID: "D4", Price: yandex.PriceValue{Value: 990, CurrencyID: "RUR"}},
	}, fakeYandex.Prices(dbsCampaign), "should send dbs prices")
}

func (s *E2ETestSuite) TestSyncCommand() {
	if s.connection == nil {
		s.T().Skip("RABBITMQ_URL is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Prepare test RMQ queue
	queue := fmt.Sprintf("stock-sync-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("stock-sync.cmd.e2e.%d", rand.Int63n(100000))
	helpers.DeclareRMQQueue(s.T(), s.channel, queue, exchange, routingKey)

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	syn, fakeOzon, fakeYandex := s.newSyncer(&logger)

	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange)
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	cmndr := commander.NewSyncCommander(commander.NewRabbitMQSender(rmq, routingKey))

	// Prepare and run handler
	han := handler.NewHandler(rmq, syn, &logger)
	s.Require().NoError(han.Start(ctx, queue), "handler shouldn't return any error")

	// Sync ozon only
	if err := cmndr.SendSyncCommand(ctx, ozon.Name); err != nil {
		s.Require().FailNow("can't publish sync command", err)
	}

	helpers.WaitFor(s.T(), 10*time.Second, func() bool { return len(fakeOzon.Prices()) == 1 })

	s.Len(fakeOzon.Stocks(), 2, "should send ozon stocks in 2 batches")
	s.Empty(fakeYandex.Stocks(fbsCampaign), "shouldn't sync yandex")

	cancel()
	<-rmq.Done()
}

func skus(stocks []yandex.StockPayload) []string {
	result := make([]string, len(stocks))
	for ix := range stocks {
		result[ix] = stocks[ix].SKU
	}
	return result
}

func counts(stocks []yandex.StockPayload) []int {
	result := make([]int, len(stocks))
	for ix := range stocks {
		result[ix] = stocks[ix].Items[0].Count
	}
	return result
}
