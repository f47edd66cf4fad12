package service

import (
	"fmt"

	"github.com/askcart/askcart/internal/llm"
)

// systemInstruction pins the assistant to the retrieved facts. It must stay
// free of internal identifiers; the model only ever sees human-readable text.
const systemInstruction = "You are a friendly, concise e-commerce assistant. " +
	"Answer the customer using only the product facts provided. " +
	"Never invent prices, stock levels, ratings or any other detail that is not in the facts. " +
	"If the facts say no matching product was found, say so politely and suggest what the customer could ask instead."

// BuildPrompt assembles the completion payload from the fact block and the
// original customer message.
func BuildPrompt(message, facts string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemInstruction},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Product facts:\n%s\n\nCustomer message: %s", facts, message)},
	}
}
