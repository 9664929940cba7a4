package friendship

import (
	"time"

	"github.com/google/uuid"
)

// Status of a friendship.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusBlocked  Status = "blocked"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusBlocked:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Friendship models the unordered pair (User1ID, User2ID) with exactly one
// row: the pair is canonicalized so User1ID < User2ID before it ever
// reaches the store, and the store enforces both the ordering and the
// pair's uniqueness.
type Friendship struct {
	ID        uuid.UUID `db:"id" json:"id"`
	User1ID   uuid.UUID `db:"user1_id" json:"user1_id"`
	User2ID   uuid.UUID `db:"user2_id" json:"user2_id"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToDTO projects the entity to its external representation.
func (f *Friendship) ToDTO() FriendshipDTO {
	return FriendshipDTO{
		ID:        f.ID,
		User1ID:   f.User1ID,
		User2ID:   f.User2ID,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
