// Package memory implements every entity store on lock-protected maps.
// Each exported method is atomic on its own; values are copied in and out
// so callers never share memory with the store.
package memory

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type Storage struct {
	Users     *UserStore
	Media     *MediaStore
	Ratings   *RatingStore
	Profiles  *ProfileStore
	Favorites *FavoriteStore
}

func New() *Storage {
	return &Storage{
		Users:     NewUserStore(),
		Media:     NewMediaStore(),
		Ratings:   NewRatingStore(),
		Profiles:  NewProfileStore(),
		Favorites: NewFavoriteStore(),
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// removeID drops id from an insertion-order index.
func removeID(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	if i := slices.Index(order, id); i >= 0 {
		return slices.Delete(order, i, i+1)
	}
	return order
}
