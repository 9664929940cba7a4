package friendship

import "errors"

var (
	// ErrFriendshipExists means a row for the unordered pair already
	// exists, in either direction. Raised by the store's unique constraint
	// on the canonicalized pair.
	ErrFriendshipExists = errors.New("friendship already exists")

	// ErrSelfFriendship rejects befriending oneself.
	ErrSelfFriendship = errors.New("cannot create a friendship with yourself")

	// ErrUserNotFound surfaces a dangling user reference (store FK).
	ErrUserNotFound = errors.New("user does not exist")
)
