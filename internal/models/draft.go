package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProductDraft is the in-progress form record as submitted by the dashboard.
// Price and unit quantity are kept as the raw strings the user typed; Finalize
// coerces them.
type ProductDraft struct {
	Name            string   `json:"name"`
	Price           string   `json:"price"`
	Category        string   `json:"category"`
	UnitQuantity    string   `json:"unit_quantity"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Images          []string `json:"images"`
	InStock         bool     `json:"inStock"`
	Featured        bool     `json:"featured"`
}

// Finalize validates the draft's required fields, coerces the numeric fields
// and computes the derived ones (slug, createdAt, client-assigned id). The slug
// is a pure function of the name and is never recomputed afterwards.
func (d *ProductDraft) Finalize() (Product, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Product{}, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Price) == "" {
		return Product{}, fmt.Errorf("price is required")
	}
	if strings.TrimSpace(d.Category) == "" {
		return Product{}, fmt.Errorf("category is required")
	}
	if strings.TrimSpace(d.UnitQuantity) == "" {
		return Product{}, fmt.Errorf("unit_quantity is required")
	}
	if !ValidCategory(d.Category) {
		return Product{}, fmt.Errorf("unknown category: %s", d.Category)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil {
		return Product{}, fmt.Errorf("invalid price: %s", d.Price)
	}
	quantity, err := strconv.ParseFloat(strings.TrimSpace(d.UnitQuantity), 64)
	if err != nil {
		return Product{}, fmt.Errorf("invalid unit_quantity: %s", d.UnitQuantity)
	}

	now := time.Now()

	return Product{
		// The sheet assigns its own id on insert when it wants to; until then
		// the creation timestamp serves as the client-side identifier.
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Name:            name,
		Price:           Numeric(price),
		Category:        strings.ToLower(d.Category),
		UnitQuantity:    Numeric(quantity),
		Description:     d.Description,
		LongDescription: d.LongDescription,
		Images:          d.Images,
		InStock:         d.InStock,
		Featured:        d.Featured,
		Slug:            Slugify(name),
		CreatedAt:       now.Format(time.RFC3339),
	}, nil
}
