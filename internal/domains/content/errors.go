package content

import "errors"

// Repository-level errors
var (
	ErrContentNotFound = errors.New("content not found")

	// ErrAuthorNotFound surfaces a dangling author_id reference, raised by
	// the store's foreign key, not by a pre-check.
	ErrAuthorNotFound = errors.New("author does not exist")

	// ErrUserNotFound surfaces a dangling user_id on like/unlike.
	ErrUserNotFound = errors.New("user does not exist")
)
