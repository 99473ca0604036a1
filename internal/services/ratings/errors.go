package ratings

import (
	"fmt"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/services/authz"
)

var (
	ErrRatingNotFound  = fmt.Errorf("rating %w", apperr.ErrNotFound)
	ErrMediaNotFound   = fmt.Errorf("media %w", apperr.ErrNotFound)
	ErrNotMediaOwner   = authz.Denied("only the owner of the rated media may confirm this rating")
	ErrNotRatingAuthor = authz.Denied("you can only modify your own ratings")
	ErrInvalidStars    = fmt.Errorf("%w: stars must be between %d and %d", apperr.ErrBadInput, fields.MinStars, fields.MaxStars)
)
