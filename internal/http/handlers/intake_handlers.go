package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rfalcao/stockwatch/internal/intake"
)

// IntakeProductHandler godoc
// @Summary Record a manual quantity observation
// @Description Creates the product on first observation of the name; on later observations increments quantity and overwrites price and category. Triggers a stock alert sweep afterwards.
// @Tags intake
// @Accept json
// @Produce json
// @Param observation body IntakeRequest true "Observation to record"
// @Success 200 {object} IntakeResponse "Existing product updated"
// @Success 201 {object} IntakeResponse "New product created"
// @Failure 400 {array} ProductValidationError
// @Failure 500 {string} string "Internal error"
// @Router /products/intake [post]
// @Security BearerAuth
func IntakeProductHandler(w http.ResponseWriter, r *http.Request) {
	var req IntakeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateIntake(req)
	if len(validationErrors) > 0 {
		if err := writeJSON(w, http.StatusBadRequest, validationErrors); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
		return
	}

	result, err := reconciler.ReconcileManual(r.Context(), intake.Observation{
		Name:          req.Name,
		QuantityDelta: req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		Category:      req.Category,
	})
	if err != nil {
		writeIntakeError(w, err)
		return
	}

	log.Printf("intake of %q (delta %d) by user %d", req.Name, req.Quantity, UserID(r))

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

func writeIntakeError(w http.ResponseWriter, err error) {
	var validationErr *intake.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, []ProductValidationError{
			{Field: validationErr.Field, Description: validationErr.Reason},
		})
		return
	}
	log.Printf("intake failed: %v", err)
	http.Error(w, "could not record intake", http.StatusInternalServerError)
}
