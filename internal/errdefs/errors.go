package errdefs

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrAuthentication   = errors.New("authentication error")
	ErrPermissionDenied = errors.New("permission denied")

	ErrDuplicateUser    = fmt.Errorf("user %w", ErrAlreadyExists)
	ErrDuplicateStudent = fmt.Errorf("student %w", ErrAlreadyExists)
)
