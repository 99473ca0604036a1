package memory

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"
	"sync"

	"github.com/google/uuid"
)

type UserStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]models.User
	byUsername map[string]uuid.UUID
	order      []uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[uuid.UUID]models.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) Insert(ctx context.Context, username, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[username]; taken {
		return nil, storage.ErrConflict
	}
	ts := now()
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	s.byID[user.ID] = user
	s.byUsername[username] = user.ID
	s.order = append(s.order, user.ID)
	return &user, nil
}

func (s *UserStore) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	user := s.byID[id]
	return &user, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.byID[id])
	}
	return users, nil
}
