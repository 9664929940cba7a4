package comment

import "errors"

// Repository-level errors
var (
	// ErrContentNotFound surfaces a dangling content_id, raised by the
	// store's foreign key.
	ErrContentNotFound = errors.New("content does not exist")

	// ErrAuthorNotFound surfaces a dangling author_id.
	ErrAuthorNotFound = errors.New("author does not exist")
)
