package fetcher

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
)

// DefaultMaxSize is default limit of downloaded archive size.
const DefaultMaxSize = 64 << 20

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher downloads zipped inventory files via http.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxSize   int64
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, userAgent string, ops ...Option) *Fetcher {
	fet := &Fetcher{
		client:    client,
		userAgent: userAgent,
		maxSize:   DefaultMaxSize,
	}

	for _, op := range ops {
		op(fet)
	}

	return fet
}

// FetchArchive downloads zip archive from url and returns content of fileName member.
// Member name is matched case-insensitively, ignoring directories inside the archive.
func (f *Fetcher) FetchArchive(ctx context.Context, url, fileName string) (*bytes.Reader, error) {
	archive, err := f.download(ctx, url)
	if err != nil {
		return nil, err
	}

	return extract(archive, fileName, f.maxSize)
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/zip")
	req.Header.Add("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("can't read response: %w", err)
	}

	if int64(len(body)) > f.maxSize {
		return nil, ErrArchiveTooLarge
	}

	return body, nil
}

// extract returns content of fileName from zip archive.
// Extracted content is limited to maxSize bytes.
func extract(archive []byte, fileName string, maxSize int64) (*bytes.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("can't open archive: %w", err)
	}

	for _, file := range zr.File {
		if !strings.EqualFold(path.Base(file.Name), fileName) {
			continue
		}

		content, err := readFile(file, maxSize)
		if err != nil {
			return nil, fmt.Errorf("can't extract %s: %w", file.Name, err)
		}

		return bytes.NewReader(content), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrFileNotInArchive, fileName)
}

func readFile(file *zip.File, maxSize int64) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, maxSize+1))
	if err != nil {
		return nil, err
	}

	if int64(len(content)) > maxSize {
		return nil, ErrArchiveTooLarge
	}

	return content, nil
}

// WithMaxSize sets limit of downloaded archive size in bytes.
func WithMaxSize(size int64) Option {
	return func(f *Fetcher) {
		f.maxSize = size
	}
}
