package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users. Uniqueness is enforced
// by the store's constraints, never by a read-before-write in this layer.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrUsernameAlreadyExists / ErrEmailAlreadyExists on conflict.
	Create(ctx context.Context, u *User) error

	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername returns ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// List returns all users, newest first. Unbounded full-table scan;
	// pagination is a known omission, not an accident.
	List(ctx context.Context) ([]User, error)

	// Update applies coalesce semantics: nil request fields keep the stored
	// value. Returns ErrUserNotFound when no row matches.
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error)

	// Delete reports whether a row was removed. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
