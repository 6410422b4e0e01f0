package user

import "errors"

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already exists")
	ErrQueryFailed    = errors.New("user repository: query failed")

	ErrInvalidPhone     = errors.New("user: invalid phone number")
	ErrInvalidPageToken = errors.New("user: invalid page token")
	ErrInvalidSortField = errors.New("user: invalid sort field")
)
