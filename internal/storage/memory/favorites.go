package memory

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type favoriteKey struct {
	userID  uuid.UUID
	mediaID uuid.UUID
}

type FavoriteStore struct {
	mu      sync.RWMutex
	members map[favoriteKey]models.Favorite
	order   []favoriteKey
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{members: make(map[favoriteKey]models.Favorite)}
}

func (s *FavoriteStore) Add(ctx context.Context, userID, mediaID uuid.UUID) error {
	key := favoriteKey{userID: userID, mediaID: mediaID}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.members[key]; exists {
		return nil
	}
	s.members[key] = models.Favorite{UserID: userID, MediaID: mediaID, CreatedAt: now()}
	s.order = append(s.order, key)
	return nil
}

func (s *FavoriteStore) Remove(ctx context.Context, userID, mediaID uuid.UUID) error {
	key := favoriteKey{userID: userID, mediaID: mediaID}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
	return nil
}

func (s *FavoriteStore) DeleteByMedia(ctx context.Context, mediaID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.members {
		if key.mediaID == mediaID {
			s.removeLocked(key)
		}
	}
	return nil
}

func (s *FavoriteStore) removeLocked(key favoriteKey) {
	if _, exists := s.members[key]; !exists {
		return
	}
	delete(s.members, key)
	if i := slices.Index(s.order, key); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func (s *FavoriteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Favorite, 0)
	for _, key := range s.order {
		if key.userID == userID {
			out = append(out, s.members[key])
		}
	}
	return out, nil
}
