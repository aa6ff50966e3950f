package tui

import (
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// draft is a product's field values as typed, before validation and
// numeric coercion.
type draft struct {
	name        string
	description string
	price       string
	quantity    string
	category    string
}

// validateDraft checks a draft and returns one message per failing field.
// An empty map means the draft may be submitted. Zero is a valid price and
// a valid quantity; missing, non-numeric, and negative values are not.
func validateDraft(d draft) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.name) == "" {
		errs["name"] = "Product name is required"
	}

	if price, err := strconv.ParseFloat(strings.TrimSpace(d.price), 64); err != nil || price < 0 {
		errs["price"] = "Price must be a positive number"
	}

	if quantity, err := strconv.Atoi(strings.TrimSpace(d.quantity)); err != nil || quantity < 0 {
		errs["quantity"] = "Quantity must be a positive number"
	}

	return errs
}

// toInput coerces a validated draft into the payload sent to the server.
// Only call after validateDraft returns an empty map.
func (d draft) toInput() models.ProductInput {
	price, _ := strconv.ParseFloat(strings.TrimSpace(d.price), 64)
	quantity, _ := strconv.Atoi(strings.TrimSpace(d.quantity))
	return models.ProductInput{
		Name:        strings.TrimSpace(d.name),
		Description: strings.TrimSpace(d.description),
		Price:       price,
		Quantity:    quantity,
		Category:    strings.TrimSpace(d.category),
	}
}
