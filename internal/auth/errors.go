package auth

import "errors"

// ErrInvalidToken is returned when a parsed token fails validation.
var ErrInvalidToken = errors.New("auth: invalid token")
