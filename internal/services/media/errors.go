package media

import (
	"fmt"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/services/authz"
)

var (
	ErrMediaNotFound = fmt.Errorf("media %w", apperr.ErrNotFound)
	ErrNotMediaOwner = authz.Denied("not allowed to modify this media")
	ErrInvalidSort   = fmt.Errorf("%w: unknown sort column", apperr.ErrBadInput)
)
