package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go

// Fetcher downloads archived inventory file.
type Fetcher interface {
	FetchArchive(ctx context.Context, url, fileName string) (*bytes.Reader, error)
}

// Decoder decodes inventory spreadsheet into records.
type Decoder interface {
	Decode(fileName string, file io.ReadSeeker) ([]models.InventoryRecord, error)
}

// Loader loads current inventory from upstream archive.
type Loader struct {
	fetcher  Fetcher
	decoder  Decoder
	url      string
	fileName string
}

// NewLoader returns new Loader reading fileName from archive published at url.
func NewLoader(fetcher Fetcher, decoder Decoder, url, fileName string) *Loader {
	return &Loader{
		fetcher:  fetcher,
		decoder:  decoder,
		url:      url,
		fileName: fileName,
	}
}

// Load downloads and decodes inventory records.
func (l *Loader) Load(ctx context.Context) ([]models.InventoryRecord, error) {
	file, err := l.fetcher.FetchArchive(ctx, l.url, l.fileName)
	if err != nil {
		return nil, fmt.Errorf("can't fetch inventory file: %w", err)
	}

	records, err := l.decoder.Decode(l.fileName, file)
	if err != nil {
		return nil, fmt.Errorf("can't decode inventory file: %w", err)
	}

	return records, nil
}
