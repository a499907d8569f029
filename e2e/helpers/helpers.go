package helpers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MichalMitros/stock-sync/internal/decoder"
	"github.com/MichalMitros/stock-sync/internal/marketplace/ozon"
	"github.com/MichalMitros/stock-sync/internal/marketplace/yandex"
	"github.com/MichalMitros/stock-sync/internal/platform/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	contentType = "Content-Type"
	jsonType    = "application/json"
)

// InventoryArchive returns zip archive with xlsx inventory fileName, header placed at headerRow.
func InventoryArchive(t *testing.T, fileName string, headerRow int, records []models.InventoryRecord) []byte {
	t.Helper()

	file := excelize.NewFile()
	t.Cleanup(func() { _ = file.Close() })

	rows := make([][]any, 0, headerRow+1+len(records))
	for ix := range headerRow {
		rows = append(rows, []any{"Остатки на складе", ix})
	}
	rows = append(rows, []any{"№", decoder.ColumnCode, "Наименование", decoder.ColumnQuantity, decoder.ColumnPrice})
	for ix, rec := range records {
		rows = append(rows, []any{ix + 1, rec.Code, "Часы " + rec.Code, string(rec.Quantity), rec.Price})
	}

	sheet := file.GetSheetName(0)
	for ix := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, ix+1)
		require.NoError(t, err, "can't build cell name")
		require.NoError(t, file.SetSheetRow(sheet, cellName, &rows[ix]), "can't write row")
	}

	sheetFile, err := file.WriteToBuffer()
	require.NoError(t, err, "can't write xlsx file")

	var archive bytes.Buffer
	zipWriter := zip.NewWriter(&archive)
	member, err := zipWriter.Create(fileName)
	require.NoError(t, err, "can't create archive member")
	_, err = member.Write(sheetFile.Bytes())
	require.NoError(t, err, "can't write archive member")
	require.NoError(t, zipWriter.Close(), "can't close archive")

	return archive.Bytes()
}

// PrepareInventoryServer serves archive on every path.
func PrepareInventoryServer(t *testing.T, archive []byte) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		wrt.Header().Add(contentType, "application/zip")
		_, _ = wrt.Write(archive)
	}))
	t.Cleanup(srv.Close)

	return srv
}

// FakeOzon is seller API double recording imported stocks and prices.
type FakeOzon struct {
	mu     sync.Mutex
	stocks [][]ozon.StockPayload
	prices [][]ozon.PricePayload
}

// NewFakeOzon starts seller API double listing catalog in a single page.
func NewFakeOzon(t *testing.T, catalog []string) (*FakeOzon, *httptest.Server) {
	t.Helper()

	fake := &FakeOzon{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v2/product/list", func(wrt http.ResponseWriter, _ *http.Request) {
		items := lo.Map(catalog, func(id string, _ int) map[string]string { return map[string]string{"offer_id": id} })
		writeJSON(t, wrt, map[string]any{
			"result": map[string]any{"items": items, "total": len(catalog), "last_id": ""},
		})
	})
	mux.HandleFunc("POST /v1/product/import/stocks", func(wrt http.ResponseWriter, req *http.Request) {
		var body struct {
			Stocks []ozon.StockPayload `json:"stocks"`
		}
		readJSON(t, req, &body)
		fake.mu.Lock()
		fake.stocks = append(fake.stocks, body.Stocks)
		fake.mu.Unlock()
		writeJSON(t, wrt, map[string]any{"result": []any{}})
	})
	mux.HandleFunc("POST /v1/product/import/prices", func(wrt http.ResponseWriter, req *http.Request) {
		var body struct {
			Prices []ozon.PricePayload `json:"prices"`
		}
		readJSON(t, req, &body)
		fake.mu.Lock()
		fake.prices = append(fake.prices, body.Prices)
		fake.mu.Unlock()
		writeJSON(t, wrt, map[string]any{"result": []any{}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return fake, srv
}

// Stocks returns received stock batches.
func (f *FakeOzon) Stocks() [][]ozon.StockPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]ozon.StockPayload(nil), f.stocks...)
}

// Prices returns received price batches.
func (f *FakeOzon) Prices() [][]ozon.PricePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]ozon.PricePayload(nil), f.prices...)
}

// FakeYandex is partner API double recording updates per campaign.
type FakeYandex struct {
	mu     sync.Mutex
	stocks map[string][]yandex.StockPayload
	prices map[string][]yandex.PricePayload
}

// NewFakeYandex starts partner API double with catalogs keyed by campaign id, listed two offers per page.
func NewFakeYandex(t *testing.T, catalogs map[string][]string) (*FakeYandex, *httptest.Server) {
	t.Helper()

	fake := &FakeYandex{
		stocks: make(map[string][]yandex.StockPayload),
		prices: make(map[string][]yandex.PricePayload),
	}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /campaigns/{id}/offer-mapping-entries", func(wrt http.ResponseWriter, req *http.Request) {
		catalog, ok := catalogs[req.PathValue("id")]
		if !ok {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}

		page := lo.Chunk(catalog, 2)
		ix := 0
		if token := req.URL.Query().Get("page_token"); token != "" {
			ix = int(token[0] - '0')
		}

		var entries []map[string]any
		if ix < len(page) {
			entries = lo.Map(page[ix], func(id string, _ int) map[string]any {
				return map[string]any{"offer": map[string]string{"shopSku": id}}
			})
		}

		next := ""
		if ix+1 < len(page) {
			next = string(rune('0' + ix + 1))
		}

		writeJSON(t, wrt, map[string]any{
			"result": map[string]any{
				"paging":              map[string]string{"nextPageToken": next},
				"offerMappingEntries": entries,
			},
		})
	})
	mux.HandleFunc("PUT /campaigns/{id}/offers/stocks", func(wrt http.ResponseWriter, req *http.Request) {
		var body struct {
			SKUs []yandex.StockPayload `json:"skus"`
		}
		readJSON(t, req, &body)
		fake.mu.Lock()
		fake.stocks[req.PathValue("id")] = append(fake.stocks[req.PathValue("id")], body.SKUs...)
		fake.mu.Unlock()
		writeJSON(t, wrt, map[string]string{"status": "OK"})
	})
	mux.HandleFunc("POST /campaigns/{id}/offer-prices/updates", func(wrt http.ResponseWriter, req *http.Request) {
		var body struct {
			Offers []yandex.PricePayload `json:"offers"`
		}
		readJSON(t, req, &body)
		fake.mu.Lock()
		fake.prices[req.PathValue("id")] = append(fake.prices[req.PathValue("id")], body.Offers...)
		fake.mu.Unlock()
		writeJSON(t, wrt, map[string]string{"status": "OK"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return fake, srv
}

// Stocks returns stocks received by campaign.
func (f *FakeYandex) Stocks(campaignID string) []yandex.StockPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]yandex.StockPayload(nil), f.stocks[campaignID]...)
}

// Prices returns prices received by campaign.
func (f *FakeYandex) Prices(campaignID string) []yandex.PricePayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]yandex.PricePayload(nil), f.prices[campaignID]...)
}

// WaitFor is blocking helper function polling condition until it is met or timeout passes.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()

	deadline := time.After(timeout)
	for !condition() {
		select {
		case <-deadline:
			require.FailNow(t, "condition not met before timeout")
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// DeclareRMQQueue is helper function for declaring RMQ exchange, queue and binding and deleting queue after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	if err := channel.QueueBind(queueName, routingKey, exchange, false, nil); err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		if _, err := channel.QueueDelete(queueName, false, false, true); err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

func readJSON(t *testing.T, req *http.Request, out any) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(req.Body).Decode(out), "request body should be valid json")
}

func writeJSON(t *testing.T, wrt http.ResponseWriter, body any) {
	t.Helper()
	wrt.Header().Set(contentType, jsonType)
	assert.NoError(t, json.NewEncoder(wrt).Encode(body), "can't write response")
}
