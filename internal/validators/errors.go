package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyType     = errors.New("inquiry type is required")
	ErrEmptyName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptySubject  = errors.New("subject is required")
	ErrEmptyMessage  = errors.New("message is required")
	ErrFieldTooLong  = errors.New("field exceeds maximum length")
	ErrEmptyPassword = errors.New("password is required")
	ErrShortPassword = errors.New("password is too short")
	ErrEmptyFullName = errors.New("full name is required")
	ErrEmptyKey      = errors.New("content key is required")
	ErrInvalidKey    = errors.New("content key contains invalid characters")
	ErrTooManyKeys   = errors.New("too many content keys requested")
	ErrEmptyKeys     = errors.New("content keys list cannot be empty")
)
