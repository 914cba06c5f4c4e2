package export

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/rfalcao/stockwatch/internal/models"
)

// WritePDF writes the inventory report as a single tabular PDF. Rows follow
// the default page flow; there is no extra pagination logic.
func WritePDF(w io.Writer, products []models.Product) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(190, 10, "Inventory Data", "", 1, "C", false, 0, "")

	widths := []float64{40, 40, 40, 60}
	for i, col := range columns {
		pdf.CellFormat(widths[i], 10, col, "1", 0, "", false, 0, "")
	}
	pdf.Ln(10)

	for _, p := range products {
		pdf.CellFormat(widths[0], 10, p.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 10, strconv.Itoa(p.Quantity), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[2], 10, strconv.FormatFloat(p.PricePerUnit, 'f', -1, 64), "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[3], 10, p.Category, "1", 0, "", false, 0, "")
		pdf.Ln(10)
	}

	return pdf.Output(w)
}
