package profiles

import (
	"context"
	"errors"
	"log/slog"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"

	"github.com/google/uuid"
)

type ProfileGetter interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// FavoriteService manages the favorite media set attached to a profile.
type FavoriteService struct {
	log      *slog.Logger
	storage  FavoriteStorage
	profiles ProfileGetter
	media    MediaGetter
}

func NewFavorites(log *slog.Logger, storage FavoriteStorage, profiles ProfileGetter, media MediaGetter) *FavoriteService {
	return &FavoriteService{
		log:      log,
		storage:  storage,
		profiles: profiles,
		media:    media,
	}
}

func (s *FavoriteService) check(ctx context.Context, userID, mediaID uuid.UUID) error {
	if _, err := s.profiles.GetByUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if _, err := s.media.Get(ctx, mediaID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMediaNotFound
		}
		return err
	}
	return nil
}

// Add puts mediaID into the user's favorites. Adding it twice keeps a single
// membership.
func (s *FavoriteService) Add(ctx context.Context, userID, mediaID uuid.UUID) error {
	const op = "profiles.FavoriteService.Add"
	log := s.log.With("op", op, "user_id", userID, "media_id", mediaID)
	if err := s.check(ctx, userID, mediaID); err != nil {
		log.Debug("favorite refused", "reason", err.Error())
		return err
	}
	if err := s.storage.Add(ctx, userID, mediaID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMediaNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

// Remove drops mediaID from the user's favorites. Removing media that is not a
// favorite is a no-op.
func (s *FavoriteService) Remove(ctx context.Context, userID, mediaID uuid.UUID) error {
	const op = "profiles.FavoriteService.Remove"
	log := s.log.With("op", op, "user_id", userID, "media_id", mediaID)
	if err := s.check(ctx, userID, mediaID); err != nil {
		log.Debug("favorite removal refused", "reason", err.Error())
		return err
	}
	if err := s.storage.Remove(ctx, userID, mediaID); err != nil {
		log.Error(err.Error())
		return err
	}
	return nil
}

// List returns the user's favorite media in the order they were added.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Media, error) {
	const op = "profiles.FavoriteService.List"
	log := s.log.With("op", op, "user_id", userID)
	favorites, err := s.storage.ListByUser(ctx, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	out := make([]models.Media, 0, len(favorites))
	for _, favorite := range favorites {
		media, err := s.media.Get(ctx, favorite.MediaID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			log.Error(err.Error())
			return nil, err
		}
		out = append(out, *media)
	}
	return out, nil
}
