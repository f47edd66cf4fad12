package service

import (
	"fmt"
	"strings"

	"github.com/askcart/askcart/internal/domain"
)

// NoMatchFact is the marker handed to the model when nothing matched, so it
// can decline instead of inventing product details.
const NoMatchFact = "No matching product was found in the catalog."

// maxListedProducts caps the bulleted list; overflow is summarized.
const maxListedProducts = 6

// FormatFacts renders matched products into a deterministic fact block,
// preserving the matcher's ordering.
func FormatFacts(products []domain.Product) string {
	switch len(products) {
	case 0:
		return NoMatchFact
	case 1:
		return formatSingle(products[0])
	default:
		return formatList(products)
	}
}

func formatSingle(p domain.Product) string {
	brand := p.Brand
	if brand == "" {
		brand = "Unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Title)
	fmt.Fprintf(&b, "Brand: %s\n", brand)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	fmt.Fprintf(&b, "Price: $%.2f\n", p.Price)
	fmt.Fprintf(&b, "Discount: %.2f%%\n", p.DiscountPercentage)
	fmt.Fprintf(&b, "Price after discount: $%.2f\n", p.EffectivePrice())
	fmt.Fprintf(&b, "Rating: %.2f of 5\n", p.Rating)
	fmt.Fprintf(&b, "Stock: %d unit(s)", p.Stock)
	return b.String()
}

func formatList(products []domain.Product) string {
	shown := products
	if len(shown) > maxListedProducts {
		shown = shown[:maxListedProducts]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, p := range shown {
		lines = append(lines, fmt.Sprintf("- %s: $%.2f (%s)", p.Title, p.Price, p.Category))
	}
	if rest := len(products) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("...and %d more", rest))
	}
	return strings.Join(lines, "\n")
}
