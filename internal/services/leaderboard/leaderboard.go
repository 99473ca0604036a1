// Package leaderboard ranks users by how many ratings they have written.
package leaderboard

import (
	"context"
	"log/slog"
	"mediaratings/proj/internal/domain/models"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type RatingLister interface {
	List(ctx context.Context) ([]models.Rating, error)
}

type LeaderboardService struct {
	log     *slog.Logger
	users   UserLister
	ratings RatingLister
	group   singleflight.Group
}

func New(log *slog.Logger, users UserLister, ratings RatingLister) *LeaderboardService {
	return &LeaderboardService{
		log:     log,
		users:   users,
		ratings: ratings,
	}
}

// Get returns every registered user ordered by rating count, highest first.
// Users with equal counts keep their registration order. Concurrent callers
// share a single computation, which is detached from any one caller's
// cancellation.
func (s *LeaderboardService) Get(ctx context.Context) ([]models.LeaderboardEntry, error) {
	const op = "leaderboard.LeaderboardService.Get"
	res, err, shared := s.group.Do("leaderboard", func() (any, error) {
		return s.compute(context.WithoutCancel(ctx))
	})
	if err != nil {
		s.log.Error(err.Error(), "op", op)
		return nil, err
	}
	entries := res.([]models.LeaderboardEntry)
	if shared {
		s.log.Debug("leaderboard computation shared", "op", op)
		entries = append([]models.LeaderboardEntry(nil), entries...)
	}
	return entries, nil
}

func (s *LeaderboardService) compute(ctx context.Context) ([]models.LeaderboardEntry, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int, len(users))
	for _, rating := range ratings {
		counts[rating.UserID]++
	}
	sort.SliceStable(users, func(i, j int) bool {
		return counts[users[i].ID] > counts[users[j].ID]
	})
	entries := make([]models.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			Username: user.Username,
			Ratings:  counts[user.ID],
		})
	}
	return entries, nil
}
