package content

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for contents and likes.
type Repository interface {
	// Create inserts a new content. Returns ErrAuthorNotFound when the
	// author reference is dangling (store FK violation).
	Create(ctx context.Context, c *Content) error

	// FindByID returns ErrContentNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Content, error)

	// List returns all contents, newest first. Unbounded full-table scan.
	List(ctx context.Context) ([]Content, error)

	// Update replaces title/body/content_type/tags wholesale.
	// Returns ErrContentNotFound when no row matches.
	Update(ctx context.Context, id uuid.UUID, req CreateContentRequest) (*Content, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Like records the (content, user) pair and bumps likes_count in the
	// same transaction. Idempotent: returns false (and changes nothing)
	// when the pair already exists, true when newly liked.
	Like(ctx context.Context, contentID, userID uuid.UUID) (bool, error)

	// Unlike removes the pair and decrements likes_count in the same
	// transaction. Returns false when there was nothing to remove.
	Unlike(ctx context.Context, contentID, userID uuid.UUID) (bool, error)
}
