package models_test

import (
	"strconv"
	"testing"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitQuantityStock(t *testing.T) {
	tests := map[string]struct {
		quantity  models.Quantity
		wantStock int
		wantErr   error
	}{
		"more than ten": {
			quantity:  ">10",
			wantStock: 100,
		},
		"low stock": {
			quantity:  "1",
			wantStock: 0,
		},
		"exact": {
			quantity:  "7",
			wantStock: 7,
		},
		"zero": {
			quantity:  "0",
			wantStock: 0,
		},
		"text": {
			quantity: "many",
			wantErr:  models.ErrMalformedQuantity,
		},
		"empty": {
			quantity: "",
			wantErr:  models.ErrMalformedQuantity,
		},
		"fraction": {
			quantity: "2.5",
			wantErr:  models.ErrMalformedQuantity,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stock, err := tt.quantity.Stock()

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantStock, stock, "should resolve correct stock")
		})
	}
}

func TestUnitQuantityStockExactIntegers(t *testing.T) {
	for count := 2; count <= 50; count++ {
		stock, err := models.Quantity(strconv.Itoa(count)).Stock()

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, count, stock, "should return exact count")
	}
}

func TestUnitQuantityError(t *testing.T) {
	_, err := models.Quantity("n/a").Stock()

	var qErr *models.QuantityError
	require.ErrorAs(t, err, &qErr, "should return QuantityError")
	assert.Equal(t, models.Quantity("n/a"), qErr.Quantity, "should keep quantity token")

	qErr.Code = "A1"
	assert.ErrorContains(t, qErr, `for code "A1"`, "should mention record code")
}

func TestUnitReportFailed(t *testing.T) {
	tests := map[string]struct {
		channels []models.ChannelResult
		want     bool
	}{
		"no channels": {},
		"all ok": {
			channels: []models.ChannelResult{{Channel: "a"}, {Channel: "b"}},
		},
		"failed channel": {
			channels: []models.ChannelResult{{Channel: "a"}, {Channel: "b", Err: assert.AnError}},
			want:     true,
		},
		"skipped channel": {
			channels: []models.ChannelResult{{Channel: "a", Skipped: true}},
			want:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			report := &models.Report{Channels: tt.channels}

			assert.Equal(t, tt.want, report.Failed(), "should report correct failure state")
		})
	}
}
