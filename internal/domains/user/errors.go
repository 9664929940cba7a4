package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)
