package content

import (
	"time"

	"github.com/google/uuid"
)

// Content is the persisted entity for user-authored posts. LikesCount is a
// materialized counter maintained transactionally with the content_likes
// rows; callers never write it directly.
type Content struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Body        string    `db:"body" json:"body"`
	ContentType string    `db:"content_type" json:"content_type"`
	Tags        []string  `db:"tags" json:"tags"`
	AuthorID    uuid.UUID `db:"author_id" json:"author_id"`
	LikesCount  int       `db:"likes_count" json:"likes_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Like is one user's like on one content. The (content_id, user_id) pair is
// the primary key; absence of a row means "not liked".
type Like struct {
	ContentID uuid.UUID `db:"content_id" json:"content_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ToDTO projects the entity to its external representation. Today this is a
// field-for-field copy; the seam exists so the wire shape never couples to
// the storage shape.
func (c *Content) ToDTO() ContentDTO {
	return ContentDTO{
		ID:          c.ID,
		Title:       c.Title,
		Body:        c.Body,
		ContentType: c.ContentType,
		Tags:        c.Tags,
		AuthorID:    c.AuthorID,
		LikesCount:  c.LikesCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
