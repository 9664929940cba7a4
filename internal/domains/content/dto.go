package content

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateContentRequest is used for both create and update: updates replace
// every field, so all fields are mandatory (unlike user updates, which
// coalesce).
type CreateContentRequest struct {
	Title       string   `json:"title" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	ContentType string   `json:"content_type" binding:"required"`
	Tags        []string `json:"tags"`
}

func (r CreateContentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
		),
		validation.Field(&r.ContentType,
			validation.Required.Error("content_type is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.Tags,
			validation.Each(validation.Length(1, 50)),
		),
	)
}

// ContentDTO is the external shape of a Content.
type ContentDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ContentType string    `json:"content_type"`
	Tags        []string  `json:"tags"`
	AuthorID    uuid.UUID `json:"author_id"`
	LikesCount  int       `json:"likes_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
