package auth

import (
	"fmt"
	"mediaratings/proj/internal/domain/apperr"
)

var (
	ErrUsernameTaken      = fmt.Errorf("%w: username is already taken", apperr.ErrConflict)
	ErrBlankCredentials   = fmt.Errorf("%w: username and password must not be blank", apperr.ErrBadInput)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", apperr.ErrUnauthorized)
)
