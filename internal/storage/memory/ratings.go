package memory

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"
	"sync"

	"github.com/google/uuid"
)

type ratingKey struct {
	userID  uuid.UUID
	mediaID uuid.UUID
}

type RatingStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]models.Rating
	byPair map[ratingKey]uuid.UUID
	order  []uuid.UUID
}

func NewRatingStore() *RatingStore {
	return &RatingStore{
		byID:   make(map[uuid.UUID]models.Rating),
		byPair: make(map[ratingKey]uuid.UUID),
	}
}

func cloneComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	c := *comment
	return &c
}

func cloneRating(r models.Rating) models.Rating {
	r.Comment = cloneComment(r.Comment)
	return r
}

// Upsert stores the rating of rating.UserID for rating.MediaID. An existing
// rating for the pair keeps its id and likes, takes the new stars and comment
// and drops back to PENDING.
func (s *RatingStore) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	key := ratingKey{userID: rating.UserID, mediaID: rating.MediaID}
	ts := now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.byPair[key]; ok {
		stored := s.byID[id]
		stored.Stars = rating.Stars
		stored.Comment = cloneComment(rating.Comment)
		stored.Status = models.RatingPending
		stored.UpdatedAt = ts
		s.byID[id] = stored
		out := cloneRating(stored)
		return &out, nil
	}
	stored := cloneRating(*rating)
	stored.ID = uuid.New()
	stored.Status = models.RatingPending
	stored.TotalLikes = 0
	stored.CreatedAt = ts
	stored.UpdatedAt = ts
	s.byID[stored.ID] = stored
	s.byPair[key] = stored.ID
	s.order = append(s.order, stored.ID)
	out := cloneRating(stored)
	return &out, nil
}

func (s *RatingStore) Get(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rating, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := cloneRating(rating)
	return &out, nil
}

// Update writes stars and comment of an existing rating. The status is
// only changed by Upsert and SetStatus.
func (s *RatingStore) Update(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[rating.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored.Stars = rating.Stars
	stored.Comment = cloneComment(rating.Comment)
	stored.UpdatedAt = now()
	s.byID[stored.ID] = stored
	out := cloneRating(stored)
	return &out, nil
}

func (s *RatingStore) SetStatus(ctx context.Context, id uuid.UUID, status models.RatingStatus) (*models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored.Status = status
	stored.UpdatedAt = now()
	s.byID[id] = stored
	out := cloneRating(stored)
	return &out, nil
}

func (s *RatingStore) IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	stored.TotalLikes++
	stored.UpdatedAt = now()
	s.byID[id] = stored
	out := cloneRating(stored)
	return &out, nil
}

func (s *RatingStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.byID[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.deleteLocked(stored)
	return nil
}

func (s *RatingStore) DeleteByMedia(ctx context.Context, mediaID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rating := range s.byID {
		if rating.MediaID == mediaID {
			s.deleteLocked(rating)
		}
	}
	return nil
}

func (s *RatingStore) deleteLocked(rating models.Rating) {
	delete(s.byID, rating.ID)
	delete(s.byPair, ratingKey{userID: rating.UserID, mediaID: rating.MediaID})
	s.order = removeID(s.order, rating.ID)
}

func (s *RatingStore) List(ctx context.Context) ([]models.Rating, error) {
	return s.filter(func(models.Rating) bool { return true }), nil
}

func (s *RatingStore) ListByMedia(ctx context.Context, mediaID uuid.UUID) ([]models.Rating, error) {
	return s.filter(func(r models.Rating) bool { return r.MediaID == mediaID }), nil
}

func (s *RatingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	return s.filter(func(r models.Rating) bool { return r.UserID == userID }), nil
}

func (s *RatingStore) filter(keep func(models.Rating) bool) []models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Rating, 0)
	for _, id := range s.order {
		if rating := s.byID[id]; keep(rating) {
			out = append(out, cloneRating(rating))
		}
	}
	return out
}
