// Package export renders inventory reports. Both formats carry the same
// four columns, one row per product.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rfalcao/stockwatch/internal/models"
)

var columns = []string{"Product Name", "Quantity", "Price per Unit", "Category"}

// WriteCSV writes the inventory report as CSV.
func WriteCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.Name,
			strconv.Itoa(p.Quantity),
			strconv.FormatFloat(p.PricePerUnit, 'f', -1, 64),
			p.Category,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
