package content

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the content domain. The acting
// identity (authorID, userID) is always an explicit parameter threaded from
// the auth middleware; this layer never fabricates it.
type Service interface {
	Create(ctx context.Context, req CreateContentRequest, authorID uuid.UUID) (*ContentDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContentDTO, error)
	List(ctx context.Context) ([]ContentDTO, error)
	Update(ctx context.Context, id uuid.UUID, req CreateContentRequest) (*ContentDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Like returns true when newly liked, false when the like already
	// existed (idempotent no-op).
	Like(ctx context.Context, contentID, userID uuid.UUID) (bool, error)

	// Unlike returns true when a like was removed, false when there was
	// none.
	Unlike(ctx context.Context, contentID, userID uuid.UUID) (bool, error)
}
