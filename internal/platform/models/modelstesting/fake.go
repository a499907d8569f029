package modelstesting

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/MichalMitros/stock-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
)

// FakeRecord returns models.InventoryRecord with fake code, exact quantity and price.
func FakeRecord(ops ...func(r *models.InventoryRecord)) models.InventoryRecord {
	record := models.InventoryRecord{
		Code:     faker.Word() + strconv.Itoa(rand.Intn(100000)),
		Quantity: models.Quantity(strconv.Itoa(2 + rand.Intn(9))),
		Price:    fakePrice(),
	}

	for _, op := range ops {
		op(&record)
	}

	return record
}

// FakeRecords returns n fake records with unique codes.
func FakeRecords(n int) []models.InventoryRecord {
	records := make([]models.InventoryRecord, 0, n)
	for ix := range n {
		records = append(records, FakeRecord(func(r *models.InventoryRecord) {
			r.Code = fmt.Sprintf("%s-%d", r.Code, ix)
		}))
	}

	return records
}

// Codes returns codes of records.
func Codes(records []models.InventoryRecord) []string {
	codes := make([]string, 0, len(records))
	for ix := range records {
		codes = append(codes, records[ix].Code)
	}

	return codes
}

func fakePrice() string {
	thousands := 1 + rand.Intn(99)
	return fmt.Sprintf("%d'%03d.00 руб.", thousands, rand.Intn(1000))
}
