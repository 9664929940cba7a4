package friendship

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateFriendshipRequest asks for a friendship between the authenticated
// user and UserID.
type CreateFriendshipRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (r CreateFriendshipRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID,
			validation.Required.Error("user_id is required"),
			is.UUID.Error("user_id must be a UUID"),
		),
	)
}

// FriendshipDTO is the external shape of a Friendship.
type FriendshipDTO struct {
	ID        uuid.UUID `json:"id"`
	User1ID   uuid.UUID `json:"user1_id"`
	User2ID   uuid.UUID `json:"user2_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
