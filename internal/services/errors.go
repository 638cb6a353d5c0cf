package services

import "errors"

// Service-layer errors. Handlers map these to HTTP statuses; anything else
// coming out of a service is a collaborator failure (500), never silently
// treated as empty data.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDuplicateRequest = errors.New("friend request already pending")
	ErrAlreadyFriends   = errors.New("already friends")
	ErrSelfFriend       = errors.New("cannot friend yourself")
	ErrUsernameTaken    = errors.New("username is already taken")
)
