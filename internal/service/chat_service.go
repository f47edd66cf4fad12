package service

import (
	"context"
	"strings"
	"time"

	"github.com/askcart/askcart/internal/catalog"
	"github.com/askcart/askcart/internal/domain"
	"github.com/askcart/askcart/internal/intent"
	"github.com/askcart/askcart/internal/llm"
	"github.com/askcart/askcart/internal/metrics"
	"go.uber.org/zap"
)

// Fixed replies. The two apologies are deliberately distinct so a customer
// (and an operator reading logs) can tell which dependency failed.
const (
	greetingReply = "Hello! How can I help you today? You can ask about a product, a category, a price range or a rating."
	farewellReply = "Goodbye! If you need anything else, just ask."

	catalogApology    = "Sorry, our product catalog is temporarily unreachable. Please try again in a moment."
	completionApology = "Sorry, I couldn't come up with an answer just now. Please try asking again."
)

// ChatService is the top-level orchestrator for one chat turn: classify,
// match, format facts, build the prompt and invoke the completion client.
type ChatService struct {
	cache      *catalog.Cache
	completer  llm.Completer
	llmTimeout time.Duration
	logger     *zap.Logger
}

// NewChatService creates a chat service.
func NewChatService(cache *catalog.Cache, completer llm.Completer, llmTimeout time.Duration, logger *zap.Logger) *ChatService {
	return &ChatService{
		cache:      cache,
		completer:  completer,
		llmTimeout: llmTimeout,
		logger:     logger,
	}
}

// Respond answers one customer message. All failures of the catalog or the
// completion provider terminate in a fixed apology; Respond never errors.
func (s *ChatService) Respond(ctx context.Context, message string) string {
	// Greetings and farewells are answered without catalog data, so they
	// are detected before the snapshot is touched. Category knowledge only
	// affects later rules, which are re-evaluated below.
	switch intent.Classify(message, nil).Kind {
	case domain.IntentGreeting:
		metrics.ChatRequests.WithLabelValues(string(domain.IntentGreeting)).Inc()
		return greetingReply
	case domain.IntentFarewell:
		metrics.ChatRequests.WithLabelValues(string(domain.IntentFarewell)).Inc()
		return farewellReply
	}

	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		s.logger.Warn("responding without catalog", zap.Error(err))
		return catalogApology
	}

	it := intent.Classify(message, snap.Categories())
	metrics.ChatRequests.WithLabelValues(string(it.Kind)).Inc()

	// The category index already holds the whole answer; a completion
	// round-trip would only risk an apology for data we have.
	if it.Kind == domain.IntentCategoryList {
		return categoryReply(snap.Categories())
	}

	products := MatchProducts(it, snap)
	facts := FormatFacts(products)
	prompt := BuildPrompt(message, facts)

	cctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	text, err := s.completer.Complete(cctx, prompt)
	if err != nil {
		s.logger.Warn("completion failed",
			zap.Error(err),
			zap.String("intent", string(it.Kind)),
		)
		metrics.CompletionFailures.Inc()
		return completionApology
	}
	return strings.TrimSpace(text)
}

func categoryReply(categories []string) string {
	if len(categories) == 0 {
		return "We don't have any product categories to show right now."
	}
	lines := make([]string, 0, len(categories)+1)
	lines = append(lines, "We currently offer products in these categories:")
	for _, c := range categories {
		lines = append(lines, "- "+c)
	}
	return strings.Join(lines, "\n")
}
