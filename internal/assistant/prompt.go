package assistant

import (
	"fmt"
	"strings"

	"github.com/rfalcao/stockwatch/internal/models"
)

// BuildPrompt serializes the inventory one line per product and appends the
// user's question.
func BuildPrompt(products []models.Product, question string) string {
	var sb strings.Builder
	for _, p := range products {
		fmt.Fprintf(&sb, "Product: %s, Quantity: %d, Price per unit: %v, Category: %s\n",
			p.Name, p.Quantity, p.PricePerUnit, p.Category)
	}

	return fmt.Sprintf(
		"Below is the list of products in the inventory. Use this information to answer the question asked by the user:\n\n"+
			"%s\n"+
			"The user has asked: %q\n\n"+
			"Please provide an answer based on the available inventory.",
		sb.String(), question)
}
