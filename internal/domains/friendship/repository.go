package friendship

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for friendships. Callers must pass
// an already-canonicalized pair (User1ID < User2ID); duplicate pairs are
// rejected by the store's unique constraint, never by a read-before-write.
type Repository interface {
	// Create inserts a friendship row.
	// Returns ErrFriendshipExists when the pair already has a row,
	// ErrUserNotFound when either side is dangling.
	Create(ctx context.Context, f *Friendship) error

	// ListByUser returns every friendship where the user appears on either
	// side, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Friendship, error)
}
