package account

import "errors"

var (
	ErrDuplicateEmail     = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
