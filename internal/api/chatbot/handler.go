package chatbot

import (
	"net/http"

	"github.com/askcart/askcart/internal/catalog"
	"github.com/askcart/askcart/internal/domain"
	"github.com/askcart/askcart/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler handles the chatbot API requests
type Handler struct {
	chatService *service.ChatService
	cache       *catalog.Cache
}

// NewHandler creates a new chatbot handler
func NewHandler(chatService *service.ChatService, cache *catalog.Cache) *Handler {
	return &Handler{chatService: chatService, cache: cache}
}

// RegisterRoutes registers chatbot routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/products", h.ListProducts)
	r.POST("/chat", h.Chat)
}

// ListProducts returns the current snapshot's product list in snapshot
// order. There is no fallback text here, so an unavailable catalog becomes
// a 503.
func (h *Handler) ListProducts(c *gin.Context) {
	snap, err := h.cache.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "product catalog is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusOK, snap.Products)
}

// Chat answers one customer message. An empty message is greeted, never
// rejected; only a malformed body is a client error.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.chatService.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, domain.ChatResponse{Response: resp})
}
