package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for comments.
type Repository interface {
	// Create inserts a new comment. Dangling references come back as
	// ErrContentNotFound / ErrAuthorNotFound (store FK violations).
	Create(ctx context.Context, c *Comment) error

	// ListByContent returns all comments for a content, oldest first.
	// Conversation threads read chronologically; this is deliberately the
	// opposite ordering from every other list in the system.
	ListByContent(ctx context.Context, contentID uuid.UUID) ([]Comment, error)
}
