// Package models contains client-side representations of the data served by
// the portal API.
package models

// PriceItem is one row of the public price list.
type PriceItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}
