package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrFileNotInArchive is returned when downloaded archive doesn't contain requested file.
	ErrFileNotInArchive = errors.New("file not found in archive")
	// ErrArchiveTooLarge is returned when response body or extracted file exceeds size limit.
	ErrArchiveTooLarge = errors.New("archive is too large")
)
