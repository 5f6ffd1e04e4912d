package passgen

import "errors"

// ErrInvalidLength is returned by Config.Validate when the requested length is zero.
var ErrInvalidLength = errors.New("password length must be greater than zero")
