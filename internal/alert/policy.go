package alert

import (
	"fmt"

	"github.com/rfalcao/stockwatch/internal/models"
)

// Alert is an ephemeral notification request derived from a product
// snapshot at evaluation time. Alerts are never persisted as entities;
// every sweep recomputes them from scratch.
type Alert struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
}

// Evaluate returns one Alert per product whose quantity is strictly below
// the threshold. It is a pure function of the product set; order of the
// input does not affect which alerts are produced.
func Evaluate(products []models.Product, threshold int) []Alert {
	var alerts []Alert
	for _, p := range products {
		if p.Quantity < threshold {
			alerts = append(alerts, Alert{
				ProductName: p.Name,
				Quantity:    p.Quantity,
				Threshold:   threshold,
			})
		}
	}
	return alerts
}

// Subject returns the notification subject line for the alert.
func (a Alert) Subject() string {
	return fmt.Sprintf("Stock Alert for %s", a.ProductName)
}

// Body returns the notification body for the alert.
func (a Alert) Body() string {
	return fmt.Sprintf(
		"Urgent: Stock Alert for %s!\n\n"+
			"Current stock is critically low: %d units remaining.\n"+
			"The minimum quantity required is %d units.\n"+
			"Please restock as soon as possible to avoid stockouts.",
		a.ProductName, a.Quantity, a.Threshold)
}
