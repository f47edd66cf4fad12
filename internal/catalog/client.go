package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/askcart/askcart/internal/domain"
)

// Client fetches the full product list from the catalog provider.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a provider client. Every fetch is bounded by timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// wireProduct uses pointers for the numeric fields so a missing field is
// detectable and fails the fetch instead of silently becoming zero.
type wireProduct struct {
	ID                 *int     `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              *float64 `json:"price"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	Rating             *float64 `json:"rating"`
	Stock              *int     `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
}

// Fetch retrieves the full catalog in one call. The provider may return
// either a bare array or an object wrapping it under "products".
func (c *Client) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	return decodeProducts(body)
}

func decodeProducts(body []byte) ([]domain.Product, error) {
	var wire []wireProduct

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &wire); err != nil {
			return nil, fmt.Errorf("failed to decode catalog response: %w", err)
		}
	} else {
		var envelope struct {
			Products []wireProduct `json:"products"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode catalog response: %w", err)
		}
		wire = envelope.Products
	}

	products := make([]domain.Product, 0, len(wire))
	for i, w := range wire {
		if w.ID == nil || w.Price == nil || w.DiscountPercentage == nil || w.Rating == nil || w.Stock == nil {
			return nil, fmt.Errorf("catalog product at index %d is missing a numeric field", i)
		}
		products = append(products, domain.Product{
			ID:                 *w.ID,
			Title:              w.Title,
			Description:        w.Description,
			Price:              *w.Price,
			DiscountPercentage: *w.DiscountPercentage,
			Rating:             *w.Rating,
			Stock:              *w.Stock,
			Brand:              w.Brand,
			Category:           w.Category,
			Thumbnail:          w.Thumbnail,
		})
	}

	return products, nil
}
