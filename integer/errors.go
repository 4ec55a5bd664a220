package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")

// Errors returned by parsing, division and conversion. Errors carrying
// context wrap one of these, use errors.Is to match them.
var (
	ErrEmptyInput       = Error.New("empty input")
	ErrInvalidCharacter = Error.New("invalid character")
	ErrDivisionByZero   = Error.New("division by zero")
	ErrOverflow         = Error.New("overflow")
)
