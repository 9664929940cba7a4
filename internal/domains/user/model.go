package user

import (
	"time"

	"github.com/google/uuid"
)

// PasswordPlaceholder is stored instead of a real hash. Real credential
// handling is out of scope for this service; the column exists so the
// schema does not change when it arrives.
const PasswordPlaceholder = "placeholder_hash"

// User is the persisted entity, mapped 1:1 onto the users table.
// PasswordHash never crosses the projection boundary: UserDTO has no field
// for it and the json tag is a second line of defense.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
	Email    string    `db:"email" json:"email"`

	PasswordHash string `db:"password_hash" json:"-"`

	DisplayName *string `db:"display_name" json:"display_name,omitempty"`
	Bio         *string `db:"bio" json:"bio,omitempty"`
	AvatarURL   *string `db:"avatar_url" json:"avatar_url,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToDTO projects the entity to its external representation, dropping
// credential material.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
