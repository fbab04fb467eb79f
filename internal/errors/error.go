package errors

import "errors"

var (
	ErrUserNotFound      = errors.New("user with provided email was not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrSessionNotFound   = errors.New("session was not found")
	ErrUserExists        = errors.New("user already exists")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientFunds = errors.New("not enough credits")
	ErrAlreadyOwned      = errors.New("item already purchased")
	ErrNotOwned          = errors.New("item not purchased")
	ErrConflict          = errors.New("profile update conflict")
	ErrInternal          = errors.New("internal error")
)
