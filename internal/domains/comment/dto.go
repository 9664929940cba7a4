package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest creates a comment on a content. The content id is
// taken from the URL path; the layer trusts it and lets the store's foreign
// key reject dangling references.
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
			validation.Length(1, 10000),
		),
	)
}

// CommentDTO is the external shape of a Comment.
type CommentDTO struct {
	ID        uuid.UUID `json:"id"`
	ContentID uuid.UUID `json:"content_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
