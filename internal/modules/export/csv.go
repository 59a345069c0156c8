package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/stockroomhq/stockroom-backend/internal/modules/inventory"
)

var csvHeader = []string{"id", "name", "quantity", "price", "category", "supplier"}

// MarshalCSV renders the item list as CSV: a fixed header row followed by
// one row per item in the given order. The full output is buffered in
// memory, which is fine at expected table sizes. Price uses shortest
// round-trip formatting so re-parsing recovers the value exactly.
func MarshalCSV(items []inventory.Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range items {
		record := []string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			strconv.Itoa(it.Quantity),
			strconv.FormatFloat(it.Price, 'f', -1, 64),
			it.Category,
			it.Supplier,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
