package decoder

import "errors"

var (
	// ErrHeaderNotFound is returned when spreadsheet has fewer rows than header row index.
	ErrHeaderNotFound = errors.New("header row not found")
	// ErrMissingColumn is returned when header doesn't contain required column.
	ErrMissingColumn = errors.New("required column is missing")
	// ErrUnsupportedFormat is returned for files other than xls and xlsx.
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	// ErrWorkbookNotFound is returned when xls container has no workbook stream.
	ErrWorkbookNotFound = errors.New("workbook stream not found")
)
