package memory

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type MediaStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]models.Media
	order []uuid.UUID
}

func NewMediaStore() *MediaStore {
	return &MediaStore{byID: make(map[uuid.UUID]models.Media)}
}

func cloneMedia(m models.Media) models.Media {
	m.Genres = slices.Clone(m.Genres)
	return m
}

func (s *MediaStore) Insert(ctx context.Context, media *models.Media) (*models.Media, error) {
	stored := cloneMedia(*media)
	stored.ID = uuid.New()
	stored.TotalLikes = 0
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	out := cloneMedia(stored)
	return &out, nil
}

func (s *MediaStore) Get(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	media, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := cloneMedia(media)
	return &out, nil
}

func (s *MediaStore) List(ctx context.Context) ([]models.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Media, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneMedia(s.byID[id]))
	}
	return out, nil
}

// Update overwrites the descriptive fields of an existing media item. Owner,
// like counter and creation time stay as stored.
func (s *MediaStore) Update(ctx context.Context, media *models.Media) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[media.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored.Title = media.Title
	stored.Description = media.Description
	stored.MediaType = media.MediaType
	stored.ReleaseYear = media.ReleaseYear
	stored.Genres = slices.Clone(media.Genres)
	stored.AgeRestriction = media.AgeRestriction
	stored.UpdatedAt = now()
	s.byID[stored.ID] = stored
	out := cloneMedia(stored)
	return &out, nil
}

func (s *MediaStore) IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored.TotalLikes++
	stored.UpdatedAt = now()
	s.byID[id] = stored
	out := cloneMedia(stored)
	return &out, nil
}

func (s *MediaStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.byID, id)
	s.order = removeID(s.order, id)
	return nil
}
