package ai

import "context"

// Responder is the injected AI capability. The rest of the application only
// depends on this interface, so a real provider (OpenAI, Claude, ...) can be
// substituted without touching any other package.
type Responder interface {
	Respond(ctx context.Context, prompt string) (string, error)
}
