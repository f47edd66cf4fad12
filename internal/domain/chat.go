package domain

// ChatRequest is the body of POST /api/chat. Message is deliberately not
// required: an empty message is answered as a greeting, not rejected.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}
