package profiles

import (
	"fmt"
	"mediaratings/proj/internal/domain/apperr"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile %w", apperr.ErrNotFound)
	ErrMediaNotFound   = fmt.Errorf("media %w", apperr.ErrNotFound)
)
