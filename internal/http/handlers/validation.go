package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateIntake enforces the manual-entry rules at the UI boundary: name
// and category are required, quantity has a minimum of 1.
func validateIntake(req IntakeRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if req.Quantity < 1 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity must be at least 1"})
	}
	if req.PricePerUnit < 0 {
		errs = append(errs, ProductValidationError{Field: "PricePerUnit", Description: "Price cannot be negative"})
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category is required"})
	}
	return errs
}
