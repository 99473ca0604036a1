package memory

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"
	"sync"

	"github.com/google/uuid"
)

type ProfileStore struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]models.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{byUser: make(map[uuid.UUID]models.Profile)}
}

func (s *ProfileStore) Insert(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byUser[userID]; exists {
		return nil, storage.ErrConflict
	}
	ts := now()
	profile := models.Profile{ID: uuid.New(), UserID: userID, CreatedAt: ts, UpdatedAt: ts}
	s.byUser[userID] = profile
	return &profile, nil
}

func (s *ProfileStore) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.byUser[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &profile, nil
}

// Update writes bio and avatar of the profile owned by profile.UserID.
func (s *ProfileStore) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byUser[profile.UserID]
	if !ok || stored.ID != profile.ID {
		return nil, storage.ErrNotFound
	}
	stored.Bio = profile.Bio
	stored.AvatarURL = profile.AvatarURL
	stored.UpdatedAt = now()
	s.byUser[stored.UserID] = stored
	return &stored, nil
}

func (s *ProfileStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, profile := range s.byUser {
		if profile.ID == id {
			delete(s.byUser, userID)
			return nil
		}
	}
	return storage.ErrNotFound
}
