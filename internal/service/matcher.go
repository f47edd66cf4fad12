package service

import (
	"sort"
	"strings"

	"github.com/askcart/askcart/internal/catalog"
	"github.com/askcart/askcart/internal/domain"
)

// MatchProducts resolves an intent against a catalog snapshot and returns
// the relevant products in a deterministic order. An empty result means
// "no matching product" and is not an error.
func MatchProducts(it domain.Intent, snap *catalog.Snapshot) []domain.Product {
	switch it.Kind {
	case domain.IntentGreeting, domain.IntentFarewell, domain.IntentCategoryList:
		return nil

	case domain.IntentCategoryQuery:
		return snap.FindByCategory(it.Category)

	case domain.IntentPriceQuery:
		if it.ProductName != "" {
			return single(snap.FindByName(it.ProductName))
		}
		if it.PriceThreshold != nil {
			limit := *it.PriceThreshold
			out := snap.FindByFilter(func(p domain.Product) bool {
				if it.Inclusive {
					return p.Price <= limit
				}
				return p.Price < limit
			})
			sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
			return out
		}
		return nil

	case domain.IntentRatingQuery:
		if it.ProductName != "" {
			return single(snap.FindByName(it.ProductName))
		}
		if it.RatingThreshold != nil {
			floor := *it.RatingThreshold
			out := snap.FindByFilter(func(p domain.Product) bool {
				if it.Inclusive {
					return p.Rating >= floor
				}
				return p.Rating > floor
			})
			sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
			return out
		}
		return nil

	case domain.IntentStockQuery, domain.IntentProductDetail:
		return single(snap.FindByName(it.ProductName))

	case domain.IntentGeneric:
		// Best effort: products whose title appears inside the message.
		msg := strings.ToLower(it.RawMessage)
		return snap.FindByFilter(func(p domain.Product) bool {
			return p.Title != "" && strings.Contains(msg, strings.ToLower(p.Title))
		})
	}
	return nil
}

func single(p domain.Product, ok bool) []domain.Product {
	if !ok {
		return nil
	}
	return []domain.Product{p}
}
