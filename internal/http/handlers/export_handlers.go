package handlers

import (
	"net/http"

	"github.com/rfalcao/stockwatch/internal/export"
)

// ExportProductsHandler godoc
// @Summary Export the inventory report
// @Tags export
// @Produce text/csv, application/pdf
// @Param format query string true "Export format (csv or pdf)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid format"
// @Failure 500 {string} string "Internal error"
// @Router /products/export [get]
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "pdf" {
		http.Error(w, "format must be 'csv' or 'pdf'", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
		if err := export.WriteCSV(w, products); err != nil {
			http.Error(w, "could not write CSV", http.StatusInternalServerError)
		}

	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory.pdf"`)
		if err := export.WritePDF(w, products); err != nil {
			http.Error(w, "could not write PDF", http.StatusInternalServerError)
		}
	}
}
