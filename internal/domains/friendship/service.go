package friendship

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the friendship domain.
type Service interface {
	// Create establishes a pending friendship between requesterID (the
	// authenticated user) and targetID. The pair is canonicalized before
	// persisting, so (a,b) and (b,a) map to the same row.
	Create(ctx context.Context, requesterID, targetID uuid.UUID) (*FriendshipDTO, error)

	ListByUser(ctx context.Context, userID uuid.UUID) ([]FriendshipDTO, error)
}
