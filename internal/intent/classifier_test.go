package intent

import (
	"testing"

	"github.com/askcart/askcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKinds(t *testing.T) {
	categories := []string{"groceries", "home-decoration"}

	tests := []struct {
		name    string
		message string
		want    domain.IntentKind
	}{
		{"simple greeting", "Hi", domain.IntentGreeting},
		{"greeting phrase", "Good morning!", domain.IntentGreeting},
		{"empty message", "", domain.IntentGreeting},
		{"blank message", "   ", domain.IntentGreeting},
		{"greeting beats price", "Hi, how much is Kiwi?", domain.IntentGreeting},
		{"farewell word", "Thanks, bye!", domain.IntentFarewell},
		{"farewell phrase", "ok see you later", domain.IntentFarewell},
		{"named price query", "What's the price of Kiwi?", domain.IntentPriceQuery},
		{"how much phrasing", "How much is Kiwi?", domain.IntentPriceQuery},
		{"named stock query", "Is Cat Food in stock?", domain.IntentStockQuery},
		{"named availability query", "Is Kiwi available?", domain.IntentStockQuery},
		{"named rating query", "What is the rating of Kiwi?", domain.IntentRatingQuery},
		{"named detail query", "Tell me more about Kiwi", domain.IntentProductDetail},
		{"price threshold", "Show me products under $10", domain.IntentPriceQuery},
		{"inclusive price threshold", "anything for 15 or less?", domain.IntentPriceQuery},
		{"rating threshold", "Show me products with ratings above 4", domain.IntentRatingQuery},
		{"stars threshold", "anything above 4.5 stars?", domain.IntentRatingQuery},
		{"category list", "What categories are available?", domain.IntentCategoryList},
		{"category list phrasing", "which categories do you sell?", domain.IntentCategoryList},
		{"bare category mention", "Do you have any groceries?", domain.IntentCategoryQuery},
		{"hyphenated category mention", "anything for home decoration?", domain.IntentCategoryQuery},
		{"bare stock question", "Is anything in stock?", domain.IntentStockQuery},
		{"fallback", "I want something nice", domain.IntentGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message, categories)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.message, got.RawMessage)
		})
	}
}

func TestClassifyExtractsProductName(t *testing.T) {
	got := Classify("What's the price of Kiwi?", nil)
	assert.Equal(t, domain.IntentPriceQuery, got.Kind)
	assert.Equal(t, "Kiwi", got.ProductName)

	got = Classify("Is Cat Food in stock?", nil)
	assert.Equal(t, domain.IntentStockQuery, got.Kind)
	assert.Equal(t, "Cat Food", got.ProductName)

	got = Classify(`What about "fancy lamp"?`, nil)
	assert.Equal(t, domain.IntentProductDetail, got.Kind)
	assert.Equal(t, "fancy lamp", got.ProductName)
}

func TestClassifyPriceThreshold(t *testing.T) {
	got := Classify("Show me products under $10", nil)
	require.NotNil(t, got.PriceThreshold)
	assert.Equal(t, 10.0, *got.PriceThreshold)
	assert.False(t, got.Inclusive)
	assert.Empty(t, got.ProductName)

	got = Classify("anything for $15 or less", nil)
	require.NotNil(t, got.PriceThreshold)
	assert.Equal(t, 15.0, *got.PriceThreshold)
	assert.True(t, got.Inclusive)

	got = Classify("show me something below 7.50", nil)
	require.NotNil(t, got.PriceThreshold)
	assert.Equal(t, 7.5, *got.PriceThreshold)
	assert.False(t, got.Inclusive)
}

func TestClassifyRatingThreshold(t *testing.T) {
	got := Classify("products with ratings above 4", nil)
	require.NotNil(t, got.RatingThreshold)
	assert.Equal(t, 4.0, *got.RatingThreshold)

	got = Classify("anything over 4.5 stars", nil)
	require.NotNil(t, got.RatingThreshold)
	assert.Equal(t, 4.5, *got.RatingThreshold)
}

func TestClassifyCategory(t *testing.T) {
	got := Classify("Do you have any groceries?", []string{"beauty", "groceries"})
	assert.Equal(t, domain.IntentCategoryQuery, got.Kind)
	assert.Equal(t, "groceries", got.Category)

	// Without category knowledge the same message falls through.
	got = Classify("Do you have any groceries?", nil)
	assert.Equal(t, domain.IntentGeneric, got.Kind)
}
