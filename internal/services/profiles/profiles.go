package profiles

import (
	"context"
	"errors"
	"log/slog"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type ProfileStorage interface {
	Insert(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RatingLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error)
}

type MediaGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Media, error)
}

type FavoriteStorage interface {
	Add(ctx context.Context, userID, mediaID uuid.UUID) error
	Remove(ctx context.Context, userID, mediaID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
}

type ProfileService struct {
	log       *slog.Logger
	storage   ProfileStorage
	ratings   RatingLister
	media     MediaGetter
	favorites FavoriteStorage
}

func New(
	log *slog.Logger,
	storage ProfileStorage,
	ratings RatingLister,
	media MediaGetter,
	favorites FavoriteStorage,
) *ProfileService {
	return &ProfileService{
		log:       log,
		storage:   storage,
		ratings:   ratings,
		media:     media,
		favorites: favorites,
	}
}

// getOrCreate returns the stored profile of userID, creating an empty one on
// first access. When two callers race on creation the loser reads the
// winner's profile back.
func (s *ProfileService) getOrCreate(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.storage.GetByUser(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	profile, err = s.storage.Insert(ctx, userID)
	if errors.Is(err, storage.ErrConflict) {
		return s.storage.GetByUser(ctx, userID)
	}
	return profile, err
}

// Ensure creates the profile of userID if it does not exist yet.
func (s *ProfileService) Ensure(ctx context.Context, userID uuid.UUID) error {
	const op = "profiles.ProfileService.Ensure"
	if _, err := s.getOrCreate(ctx, userID); err != nil {
		s.log.Error(err.Error(), "op", op, "user_id", userID)
		return err
	}
	return nil
}

// GetByUserID never fails for a missing profile, it creates one instead. The
// returned profile carries the user's rating statistics and favorite media.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "profiles.ProfileService.GetByUserID"
	log := s.log.With("op", op, "user_id", userID)
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if err := s.fillStats(ctx, profile); err != nil {
		log.Error("Error computing profile stats: " + err.Error())
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, bio, avatarURL string) (*models.Profile, error) {
	const op = "profiles.ProfileService.Update"
	log := s.log.With("op", op, "user_id", userID)
	profile, err := s.getOrCreate(ctx, userID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	profile.Bio = bio
	profile.AvatarURL = avatarURL
	updated, err := s.storage.Update(ctx, profile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// deleted concurrently
			return nil, ErrProfileNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	if err := s.fillStats(ctx, updated); err != nil {
		log.Error("Error computing profile stats: " + err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *ProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	const op = "profiles.ProfileService.Delete"
	log := s.log.With("op", op, "user_id", userID)
	profile, err := s.storage.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("profile not found")
			return ErrProfileNotFound
		}
		log.Error(err.Error())
		return err
	}
	if err := s.storage.Delete(ctx, profile.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrProfileNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *ProfileService) fillStats(ctx context.Context, profile *models.Profile) error {
	ratings, err := s.ratings.ListByUser(ctx, profile.UserID)
	if err != nil {
		return err
	}
	rated := make([]models.Media, 0, len(ratings))
	total := 0
	for _, rating := range ratings {
		total += int(rating.Stars)
		media, err := s.media.Get(ctx, rating.MediaID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return err
		}
		rated = append(rated, *media)
	}
	profile.TotalRatings = len(ratings)
	profile.AverageScore = 0
	if len(ratings) > 0 {
		profile.AverageScore = float64(total) / float64(len(ratings))
	}
	profile.FavouriteGenre = favouriteGenre(rated)
	favorites, err := s.favoriteMedia(ctx, profile.UserID)
	if err != nil {
		return err
	}
	profile.FavouriteMedia = favorites
	return nil
}

func (s *ProfileService) favoriteMedia(ctx context.Context, userID uuid.UUID) ([]models.Media, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Media, 0, len(favorites))
	for _, favorite := range favorites {
		media, err := s.media.Get(ctx, favorite.MediaID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *media)
	}
	return out, nil
}

// favouriteGenre picks the genre occurring most often across media. Genres
// are compared case-insensitively, ties go to the alphabetically first one and
// the spelling seen first is reported.
func favouriteGenre(media []models.Media) string {
	counts := make(map[string]int)
	spelling := make(map[string]string)
	for _, m := range media {
		for _, genre := range m.Genres {
			key := strings.ToLower(genre)
			if _, seen := spelling[key]; !seen {
				spelling[key] = genre
			}
			counts[key]++
		}
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return spelling[keys[0]]
}
