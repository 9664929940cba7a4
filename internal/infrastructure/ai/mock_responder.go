package ai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ================================================
// MOCK AI RESPONDER (for development)
// ================================================

// MockResponder returns canned answers. It stands in for a real AI provider
// until one is wired up.
type MockResponder struct{}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Respond(ctx context.Context, prompt string) (string, error) {
	log.Info().
		Str("prompt", prompt).
		Msg("[MOCK] AI response generated")

	return fmt.Sprintf("This is a simulated answer to %q. A real AI provider would be called here.", prompt), nil
}
