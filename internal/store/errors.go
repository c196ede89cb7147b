package store

import "errors"

// Sentinel errors returned by store implementations. Handlers check
// these with errors.Is and map them to HTTP statuses.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrDepositNotFound   = errors.New("deposit request not found")
	ErrDepositNotPending = errors.New("deposit request is not pending")
)
