package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the user domain.
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*UserDTO, error)
	List(ctx context.Context) ([]UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
