package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the comment domain.
type Service interface {
	Create(ctx context.Context, contentID uuid.UUID, req CreateCommentRequest, authorID uuid.UUID) (*CommentDTO, error)
	ListByContent(ctx context.Context, contentID uuid.UUID) ([]CommentDTO, error)
}
