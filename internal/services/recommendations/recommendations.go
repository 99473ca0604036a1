// Package recommendations suggests media based on the genres a user liked.
package recommendations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"
	"strings"

	"github.com/google/uuid"
)

// Limit caps the number of recommended media.
const Limit = 3

var ErrUserNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)

type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type RatingLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error)
}

type MediaStorage interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Media, error)
	List(ctx context.Context) ([]models.Media, error)
}

type RecommendationService struct {
	log     *slog.Logger
	users   UserGetter
	ratings RatingLister
	media   MediaStorage
}

func New(log *slog.Logger, users UserGetter, ratings RatingLister, media MediaStorage) *RecommendationService {
	return &RecommendationService{
		log:     log,
		users:   users,
		ratings: ratings,
		media:   media,
	}
}

// Get recommends up to Limit media sharing a genre with media the user rated
// at least fields.LikedStars in a confirmed rating. Media come in listing
// order and may include ones the user already rated.
func (s *RecommendationService) Get(ctx context.Context, user *models.User) ([]models.Media, error) {
	const op = "recommendations.RecommendationService.Get"
	if user.IsAnonymous() {
		return nil, ErrUserNotFound
	}
	log := s.log.With("op", op, "user_id", user.ID)
	if _, err := s.users.Get(ctx, user.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	liked, err := s.likedGenres(ctx, user.ID)
	if err != nil {
		log.Error("Error collecting liked genres: " + err.Error())
		return nil, err
	}
	out := make([]models.Media, 0, Limit)
	if len(liked) == 0 {
		return out, nil
	}
	all, err := s.media.List(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	for _, media := range all {
		if len(out) == Limit {
			break
		}
		if sharesGenre(media.Genres, liked) {
			out = append(out, media)
		}
	}
	return out, nil
}

// likedGenres returns the lower-cased genres of media the user liked.
func (s *RecommendationService) likedGenres(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	ratings, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked := make(map[string]struct{})
	for _, rating := range ratings {
		if !rating.IsConfirmed() || rating.Stars < fields.LikedStars {
			continue
		}
		media, err := s.media.Get(ctx, rating.MediaID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		for _, genre := range media.Genres {
			liked[strings.ToLower(genre)] = struct{}{}
		}
	}
	return liked, nil
}

func sharesGenre(genres []string, liked map[string]struct{}) bool {
	for _, genre := range genres {
		if _, ok := liked[strings.ToLower(genre)]; ok {
			return true
		}
	}
	return false
}
