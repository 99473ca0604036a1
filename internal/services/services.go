package services

import (
	"log/slog"
	"mediaratings/proj/internal/services/auth"
	"mediaratings/proj/internal/services/leaderboard"
	"mediaratings/proj/internal/services/media"
	"mediaratings/proj/internal/services/profiles"
	"mediaratings/proj/internal/services/ratings"
	"mediaratings/proj/internal/services/recommendations"
	"mediaratings/proj/internal/storage/memory"
	pgmodels "mediaratings/proj/internal/storage/postgres/models"
)

type UserStorage interface {
	auth.UserStorage
	leaderboard.UserLister
}

type RatingStorage interface {
	ratings.RatingStorage
	media.DependentStorage
	leaderboard.RatingLister
}

type FavoriteStorage interface {
	profiles.FavoriteStorage
	media.DependentStorage
}

// Storage bundles the entity stores of one backend.
type Storage struct {
	Users     UserStorage
	Media     media.MediaStorage
	Ratings   RatingStorage
	Profiles  profiles.ProfileStorage
	Favorites FavoriteStorage
}

func MemoryStorage(s *memory.Storage) Storage {
	return Storage{
		Users:     s.Users,
		Media:     s.Media,
		Ratings:   s.Ratings,
		Profiles:  s.Profiles,
		Favorites: s.Favorites,
	}
}

func PostgresStorage(m *pgmodels.Models) Storage {
	return Storage{
		Users:     m.User,
		Media:     m.Media,
		Ratings:   m.Rating,
		Profiles:  m.Profile,
		Favorites: m.Favorite,
	}
}

type Services struct {
	Auth            *auth.AuthService
	Media           *media.MediaService
	Ratings         *ratings.RatingService
	Profiles        *profiles.ProfileService
	Favorites       *profiles.FavoriteService
	Leaderboard     *leaderboard.LeaderboardService
	Recommendations *recommendations.RecommendationService
}

func New(log *slog.Logger, storage Storage, tokens auth.TokenProvider) *Services {
	profileService := profiles.New(log, storage.Profiles, storage.Ratings, storage.Media, storage.Favorites)
	return &Services{
		Auth:            auth.New(log, storage.Users, profileService, tokens),
		Media:           media.New(log, storage.Media, storage.Ratings, storage.Favorites),
		Ratings:         ratings.New(log, storage.Ratings, storage.Media),
		Profiles:        profileService,
		Favorites:       profiles.NewFavorites(log, storage.Favorites, storage.Profiles, storage.Media),
		Leaderboard:     leaderboard.New(log, storage.Users, storage.Ratings),
		Recommendations: recommendations.New(log, storage.Users, storage.Ratings, storage.Media),
	}
}
