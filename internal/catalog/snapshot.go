package catalog

import (
	"strings"
	"time"

	"github.com/askcart/askcart/internal/domain"
)

// Snapshot is an immutable, internally consistent copy of the catalog at a
// point in time. It is replaced wholesale on refresh, never mutated.
type Snapshot struct {
	Products  []domain.Product
	FetchedAt time.Time

	categories []string         // first-seen order
	byCategory map[string][]int // lower-cased category -> product indexes
}

func newSnapshot(products []domain.Product) *Snapshot {
	s := &Snapshot{
		Products:   products,
		FetchedAt:  time.Now(),
		byCategory: make(map[string][]int),
	}
	for i, p := range products {
		key := strings.ToLower(p.Category)
		if _, seen := s.byCategory[key]; !seen {
			s.categories = append(s.categories, p.Category)
		}
		s.byCategory[key] = append(s.byCategory[key], i)
	}
	return s
}

// Categories returns the distinct categories in first-seen order.
func (s *Snapshot) Categories() []string {
	return s.categories
}

// FindByName returns the best single match for name against product titles,
// case-insensitive. An exact title match always beats a substring match.
func (s *Snapshot) FindByName(name string) (domain.Product, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return domain.Product{}, false
	}

	var substr *domain.Product
	for i := range s.Products {
		title := strings.ToLower(s.Products[i].Title)
		if title == query {
			return s.Products[i], true
		}
		if substr == nil && strings.Contains(title, query) {
			substr = &s.Products[i]
		}
	}
	if substr != nil {
		return *substr, true
	}
	return domain.Product{}, false
}

// FindByCategory returns all products in the given category, case-insensitive.
func (s *Snapshot) FindByCategory(category string) []domain.Product {
	indexes := s.byCategory[strings.ToLower(strings.TrimSpace(category))]
	if len(indexes) == 0 {
		return nil
	}
	out := make([]domain.Product, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, s.Products[i])
	}
	return out
}

// FindByFilter returns all products satisfying keep, in snapshot order.
func (s *Snapshot) FindByFilter(keep func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, p := range s.Products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
