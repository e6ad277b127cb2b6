package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Category string

const (
	CategoryAccessories Category = "accessories"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHome        Category = "home"
)

// ValidCategory reports whether s is one of the recognized product categories.
// Comparison is case-insensitive; the sheet stores the lowercase form.
func ValidCategory(s string) bool {
	switch Category(strings.ToLower(s)) {
	case CategoryAccessories, CategoryElectronics, CategoryClothing, CategoryHome:
		return true
	}
	return false
}

type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name" binding:"required"`
	Price           Numeric  `json:"price"`
	Category        string   `json:"category"`
	UnitQuantity    Numeric  `json:"unit_quantity"`
	Description     string   `json:"description,omitempty"`
	LongDescription string   `json:"long_description,omitempty"`
	Images          []string `json:"images,omitempty"`
	InStock         bool     `json:"inStock"`
	Featured        bool     `json:"featured"`
	Slug            string   `json:"slug"`
	CreatedAt       string   `json:"createdAt"`
}

/**
* Custom type for numeric sheet columns. The Apps Script backend is not strict
* about cell types, so price and unit_quantity can arrive either as a JSON
* number or as a string holding one, and both should be accepted.
 */
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as a number
	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		*n = Numeric(floatVal)
		return nil
	}

	// Try to unmarshal as a string
	var strVal string
	if err := json.Unmarshal(data, &strVal); err == nil {
		if strVal == "" {
			*n = 0
			return nil
		}
		floatVal, err := strconv.ParseFloat(strings.TrimSpace(strVal), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value: %v", strVal)
		}
		*n = Numeric(floatVal)
		return nil
	}

	return fmt.Errorf("invalid numeric value: %v", string(data))
}
