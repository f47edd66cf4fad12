// Package intent maps a raw chat message to a classified Intent using an
// ordered table of keyword and pattern rules. Classification is a pure
// function of the message text and the known category names; the first
// matching rule wins.
package intent

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/askcart/askcart/internal/domain"
)

var (
	greetingWords   = []string{"hi", "hello", "hey", "greetings"}
	greetingPhrases = []string{"good morning", "good afternoon", "good evening"}
	farewellWords   = []string{"bye", "goodbye"}
	farewellPhrases = []string{"see you", "take care"}
	priceWords      = []string{"price", "priced", "cost", "costs"}
	stockWords      = []string{"stock", "available", "availability"}
	ratingWords     = []string{"rating", "ratings", "review", "reviews", "star", "stars"}
	listPhrases     = []string{"what categories", "which categories", "categories available", "categories do you", "types of products"}
	detailPhrases   = []string{"tell me more", "more about", "details about", "details of"}

	reQuoted = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

	// "under $10" is exclusive, "$10 or less" is inclusive.
	reUnder  = regexp.MustCompile(`(?:under|below|less than)\s+\$?(\d+(?:\.\d+)?)`)
	reOrLess = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)\s+or\s+(?:less|below)`)

	reRatingAbove = regexp.MustCompile(`ratings?\s+(?:above|over|greater than)\s+(\d+(?:\.\d+)?)`)
	reAboveStars  = regexp.MustCompile(`(?:above|over)\s+(\d+(?:\.\d+)?)\s+(?:stars?|ratings?)`)
)

// Classify resolves message into an Intent. categories are the category
// names known from the current catalog snapshot; they feed only the bare
// category-mention rule, so passing nil disables that rule and nothing else.
func Classify(message string, categories []string) domain.Intent {
	norm := normalize(message)
	if norm == "" {
		return domain.Intent{Kind: domain.IntentGreeting, RawMessage: message}
	}
	tokens := tokenSet(norm)

	if hasToken(tokens, greetingWords) || hasPhrase(norm, greetingPhrases) {
		return domain.Intent{Kind: domain.IntentGreeting, RawMessage: message}
	}
	if hasToken(tokens, farewellWords) || hasPhrase(norm, farewellPhrases) {
		return domain.Intent{Kind: domain.IntentFarewell, RawMessage: message}
	}

	// An explicit product mention plus an inquiry keyword makes a named
	// query; the name is only a candidate phrase, matching happens later.
	if name := candidateName(message); name != "" {
		it := domain.Intent{ProductName: name, RawMessage: message}
		switch {
		case hasToken(tokens, priceWords) || hasPhrase(norm, []string{"how much"}):
			it.Kind = domain.IntentPriceQuery
		case hasPhrase(norm, []string{"in stock"}) || hasToken(tokens, stockWords):
			it.Kind = domain.IntentStockQuery
		case hasToken(tokens, ratingWords):
			it.Kind = domain.IntentRatingQuery
		default:
			it.Kind = domain.IntentProductDetail
		}
		return it
	}

	if v, inclusive, ok := priceThreshold(norm); ok {
		return domain.Intent{Kind: domain.IntentPriceQuery, PriceThreshold: &v, Inclusive: inclusive, RawMessage: message}
	}
	if v, ok := ratingThreshold(norm); ok {
		return domain.Intent{Kind: domain.IntentRatingQuery, RatingThreshold: &v, RawMessage: message}
	}

	if hasPhrase(norm, listPhrases) {
		return domain.Intent{Kind: domain.IntentCategoryList, RawMessage: message}
	}
	for _, c := range categories {
		if categoryMentioned(norm, tokens, c) {
			return domain.Intent{Kind: domain.IntentCategoryQuery, Category: c, RawMessage: message}
		}
	}

	if hasPhrase(norm, []string{"in stock"}) || hasToken(tokens, stockWords) {
		return domain.Intent{Kind: domain.IntentStockQuery, RawMessage: message}
	}
	if hasPhrase(norm, detailPhrases) {
		return domain.Intent{Kind: domain.IntentProductDetail, RawMessage: message}
	}

	return domain.Intent{Kind: domain.IntentGeneric, RawMessage: message}
}

// normalize lower-cases the message and strips punctuation, keeping the
// characters that price patterns and category names need.
func normalize(message string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(message) {
		switch {
		case r == '\'':
			// drop apostrophes so "what's" becomes "whats"
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '$' || r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func tokenSet(norm string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(norm) {
		set[strings.Trim(t, ".")] = struct{}{}
	}
	return set
}

func hasToken(tokens map[string]struct{}, words []string) bool {
	for _, w := range words {
		if _, ok := tokens[w]; ok {
			return true
		}
	}
	return false
}

func hasPhrase(norm string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(norm, p) {
			return true
		}
	}
	return false
}

// candidateName extracts the phrase most likely to be a product name: a
// quoted phrase, or a run of capitalized words that does not open the
// sentence. It does not consult the catalog.
func candidateName(message string) string {
	if m := reQuoted.FindStringSubmatch(message); m != nil {
		if m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[2])
	}

	words := strings.Fields(message)
	var run []string
	for i, w := range words {
		t := strings.Trim(w, `.,!?;:"'`)
		if i > 0 && isCapitalized(t) {
			run = append(run, t)
			continue
		}
		if len(run) > 0 {
			break
		}
	}
	return strings.Join(run, " ")
}

func isCapitalized(word string) bool {
	if len(word) < 2 {
		return false
	}
	runes := []rune(word)
	return unicode.IsUpper(runes[0]) && unicode.IsLower(runes[1])
}

func priceThreshold(norm string) (value float64, inclusive, ok bool) {
	if m := reUnder.FindStringSubmatch(norm); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		return v, false, err == nil
	}
	if m := reOrLess.FindStringSubmatch(norm); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		return v, true, err == nil
	}
	return 0, false, false
}

func ratingThreshold(norm string) (float64, bool) {
	for _, re := range []*regexp.Regexp{reRatingAbove, reAboveStars} {
		if m := re.FindStringSubmatch(norm); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func categoryMentioned(norm string, tokens map[string]struct{}, category string) bool {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		return false
	}
	if !strings.ContainsAny(key, " -") {
		_, ok := tokens[key]
		return ok
	}
	return strings.Contains(norm, key) ||
		strings.Contains(norm, strings.ReplaceAll(key, "-", " "))
}
