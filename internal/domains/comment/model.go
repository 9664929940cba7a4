package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is the persisted entity. Comments are append-only: this layer
// defines no update or delete operation for them.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ContentID uuid.UUID `db:"content_id" json:"content_id"`
	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ToDTO projects the entity to its external representation.
func (c *Comment) ToDTO() CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		ContentID: c.ContentID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
