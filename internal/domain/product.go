package domain

import "math"

// Product is an immutable snapshot of one catalog entry. JSON field names
// follow the provider wire format so the products endpoint echoes it as-is.
type Product struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand,omitempty"`
	Category           string  `json:"category"`
	Thumbnail          string  `json:"thumbnail,omitempty"`
}

// EffectivePrice returns the price after discount, rounded to 2 decimals.
func (p Product) EffectivePrice() float64 {
	return math.Round(p.Price*(1-p.DiscountPercentage/100)*100) / 100
}
