package decoder

import (
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// Inventory spreadsheet column names.
const (
	ColumnCode     = "Код"
	ColumnQuantity = "Количество"
	ColumnPrice    = "Цена"
)

// DefaultHeaderRow is zero-based index of inventory header row.
const DefaultHeaderRow = 17

const xlsCharset = "utf-8"

// wholeNumber matches numeric cells rendered with empty fraction, e.g. "12345.0".
var wholeNumber = regexp.MustCompile(`^(-?\d+)\.0+$`)

// Decoder decodes inventory spreadsheets into records.
type Decoder struct {
	headerRow int
}

// NewDecoder returns new Decoder reading header from zero-based headerRow.
func NewDecoder(headerRow int) *Decoder {
	return &Decoder{
		headerRow: headerRow,
	}
}

// Decode reads first sheet of xls or xlsx file and returns its records.
// Format is chosen by fileName extension.
func (d *Decoder) Decode(fileName string, file io.ReadSeeker) ([]models.InventoryRecord, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(path.Ext(fileName)); ext {
	case ".xls":
		rows, err = readXLS(file)
	case ".xlsx":
		rows, err = readXLSX(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", fileName, err)
	}

	return DecodeRows(rows, d.headerRow)
}

// DecodeRows converts spreadsheet rows into records, using row headerRow as header.
// Rows after header with empty code are skipped.
func DecodeRows(rows [][]string, headerRow int) ([]models.InventoryRecord, error) {
	if headerRow < 0 || len(rows) <= headerRow {
		return nil, fmt.Errorf("%w: index %d, %d rows", ErrHeaderNotFound, headerRow, len(rows))
	}

	columns, err := columnIndexes(rows[headerRow])
	if err != nil {
		return nil, err
	}

	records := make([]models.InventoryRecord, 0, len(rows)-headerRow-1)
	for _, row := range rows[headerRow+1:] {
		code := wholeNumberString(cell(row, columns[ColumnCode]))
		if code == "" {
			continue
		}

		records = append(records, models.InventoryRecord{
			Code:     code,
			Quantity: models.Quantity(wholeNumberString(cell(row, columns[ColumnQuantity]))),
			Price:    cell(row, columns[ColumnPrice]),
		})
	}

	return records, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	columns := make(map[string]int, 3)
	for ix, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := columns[name]; !ok {
			columns[name] = ix
		}
	}

	for _, required := range []string{ColumnCode, ColumnQuantity, ColumnPrice} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	return columns, nil
}

func cell(row []string, ix int) string {
	if ix >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[ix])
}

func wholeNumberString(value string) string {
	if match := wholeNumber.FindStringSubmatch(value); match != nil {
		return match[1]
	}
	return value
}

func readXLS(file io.ReadSeeker) ([][]string, error) {
	workbook, err := xls.OpenReader(file, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("can't open workbook: %w", err)
	}
	if workbook == nil {
		return nil, ErrWorkbookNotFound
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil || sheet.MaxRow == 0 {
		return nil, nil
	}

	// Limited to first sheet rows. Missing rows are returned as nil.
	return workbook.ReadAllCells(int(sheet.MaxRow) + 1), nil
}

func readXLSX(file io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("can't open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("can't read sheet %s: %w", sheets[0], err)
	}

	return rows, nil
}
