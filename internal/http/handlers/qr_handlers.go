package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rfalcao/stockwatch/internal/intake"
	"github.com/rfalcao/stockwatch/internal/qr"
)

// ScanQRHandler godoc
// @Summary Record an intake from an uploaded QR code image
// @Description Decodes the QR code, expects a JSON payload with product_name, quantity and price, and reconciles it against the store. Category defaults to "Unknown" for new products on this path.
// @Tags intake
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "QR code image (PNG or JPEG)"
// @Success 200 {object} IntakeResponse "Existing product updated"
// @Success 201 {object} IntakeResponse "New product created"
// @Failure 400 {string} string "Missing file"
// @Failure 422 {string} string "Decode error"
// @Failure 500 {string} string "Internal error"
// @Router /products/intake/qr [post]
// @Security BearerAuth
func ScanQRHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	payload, err := qr.Decode(file)
	if err != nil {
		if isDecodeError(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "could not process QR code", http.StatusInternalServerError)
		return
	}

	result, err := reconciler.ReconcileScan(r.Context(), intake.Observation{
		Name:          payload.ProductName,
		QuantityDelta: payload.Quantity,
		PricePerUnit:  payload.Price,
	})
	if err != nil {
		writeIntakeError(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	resp := IntakeResponse{
		Product:  toProductResponse(result.Product),
		Created:  result.Created,
		Warnings: result.Warnings,
	}
	if err := writeJSON(w, status, resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func isDecodeError(err error) bool {
	return errors.Is(err, qr.ErrUnreadableImage) ||
		errors.Is(err, qr.ErrNoQRCode) ||
		errors.Is(err, qr.ErrNotJSON) ||
		errors.Is(err, qr.ErrMissingFields)
}
