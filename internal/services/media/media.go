package media

import (
	"context"
	"errors"
	"log/slog"
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/filters"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/services/authz"
	"mediaratings/proj/internal/storage"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type MediaStorage interface {
	Insert(ctx context.Context, media *models.Media) (*models.Media, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Media, error)
	List(ctx context.Context) ([]models.Media, error)
	Update(ctx context.Context, media *models.Media) (*models.Media, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DependentStorage holds records that reference a media item and go away
// with it (ratings, favorites).
type DependentStorage interface {
	DeleteByMedia(ctx context.Context, mediaID uuid.UUID) error
}

type MediaService struct {
	log        *slog.Logger
	storage    MediaStorage
	dependents []DependentStorage
}

func New(log *slog.Logger, storage MediaStorage, dependents ...DependentStorage) *MediaService {
	return &MediaService{
		log:        log,
		storage:    storage,
		dependents: dependents,
	}
}

func (s *MediaService) Get(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	const op = "media.MediaService.Get"
	log := s.log.With("op", op, "id", id)
	media, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("media not found")
			return nil, ErrMediaNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return media, nil
}

// Create stores media on behalf of actor, who becomes its owner.
func (s *MediaService) Create(ctx context.Context, media *models.Media, actor *models.User) (*models.Media, error) {
	const op = "media.MediaService.Create"
	log := s.log.With("op", op, "title", media.Title)
	if err := authz.RequireUser(actor); err != nil {
		return nil, err
	}
	media.OwnerID = actor.ID
	if media.Genres == nil {
		media.Genres = []string{}
	}
	created, err := s.storage.Insert(ctx, media)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return created, nil
}

func (s *MediaService) List(ctx context.Context) ([]models.Media, error) {
	const op = "media.MediaService.List"
	media, err := s.storage.List(ctx)
	if err != nil {
		s.log.Error(err.Error(), "op", op)
		return nil, err
	}
	return media, nil
}

// Update replaces the descriptive fields of media.ID. Only the owner may do
// that.
func (s *MediaService) Update(ctx context.Context, media *models.Media, actor *models.User) (*models.Media, error) {
	const op = "media.MediaService.Update"
	log := s.log.With("op", op, "id", media.ID)
	existing, err := s.Get(ctx, media.ID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(existing.OwnerID, actor, ErrNotMediaOwner); err != nil {
		log.Debug("update refused", "owner", existing.OwnerID)
		return nil, err
	}
	existing.Title = media.Title
	existing.Description = media.Description
	existing.MediaType = media.MediaType
	existing.ReleaseYear = media.ReleaseYear
	existing.Genres = media.Genres
	existing.AgeRestriction = media.AgeRestriction
	if existing.Genres == nil {
		existing.Genres = []string{}
	}
	updated, err := s.storage.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		log.Error("Error updating media: " + err.Error())
		return nil, err
	}
	return updated, nil
}

// Delete removes the media item together with its ratings and favorite
// memberships.
func (s *MediaService) Delete(ctx context.Context, id uuid.UUID, actor *models.User) error {
	const op = "media.MediaService.Delete"
	log := s.log.With("op", op, "id", id)
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.RequireOwner(existing.OwnerID, actor, ErrNotMediaOwner); err != nil {
		log.Debug("delete refused", "owner", existing.OwnerID)
		return err
	}
	// dependents go first so a failure leaves the media in place
	for _, dependent := range s.dependents {
		if err := dependent.DeleteByMedia(ctx, id); err != nil {
			log.Error("Error deleting media dependents: " + err.Error())
			return err
		}
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMediaNotFound
		}
		log.Error("Error deleting media: " + err.Error())
		return err
	}
	return nil
}

// Like bumps the like counter of a media item. Any authenticated user may
// like any media.
func (s *MediaService) Like(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	const op = "media.MediaService.Like"
	media, err := s.storage.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		s.log.Error(err.Error(), "op", op, "id", id)
		return nil, err
	}
	return media, nil
}

func (s *MediaService) FilterByGenre(ctx context.Context, genre string) ([]models.Media, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByGenre(all, genre), nil
}

func (s *MediaService) FilterByType(ctx context.Context, mediaType string) ([]models.Media, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByType(all, mediaType), nil
}

// SortByReleaseYear lists all media, oldest first. Items released in the same
// year keep their listing order.
func (s *MediaService) SortByReleaseYear(ctx context.Context) ([]models.Media, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sortMedia(all, "release_year", filters.AscSort)
	return all, nil
}

// Search combines the genre and type filters with an optional sort.
func (s *MediaService) Search(ctx context.Context, f filters.Filters) ([]models.Media, error) {
	if f.HasSort() && !f.IsSafeSort() {
		return nil, ErrInvalidSort
	}
	result, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if f.Genre != "" {
		result = filterByGenre(result, f.Genre)
	}
	if f.Type != "" {
		result = filterByType(result, f.Type)
	}
	if f.HasSort() {
		sortMedia(result, f.SortColumn(), f.SortDirection())
	}
	return result, nil
}

func filterByGenre(all []models.Media, genre string) []models.Media {
	out := make([]models.Media, 0)
	for _, m := range all {
		if fields.ContainsFold(m.Genres, genre) {
			out = append(out, m)
		}
	}
	return out
}

func filterByType(all []models.Media, mediaType string) []models.Media {
	out := make([]models.Media, 0)
	for _, m := range all {
		if m.MediaType.Is(mediaType) {
			out = append(out, m)
		}
	}
	return out
}

func sortMedia(media []models.Media, column, direction string) {
	less := func(a, b models.Media) bool {
		if column == "title" {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
		return a.ReleaseYear < b.ReleaseYear
	}
	sort.SliceStable(media, func(i, j int) bool {
		if direction == filters.DescSort {
			return less(media[j], media[i])
		}
		return less(media[i], media[j])
	})
}
