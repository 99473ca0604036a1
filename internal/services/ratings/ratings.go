package ratings

import (
	"context"
	"errors"
	"log/slog"
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/services/authz"
	"mediaratings/proj/internal/storage"

	"github.com/google/uuid"
)

type RatingStorage interface {
	Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Rating, error)
	Update(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.RatingStatus) (*models.Rating, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMedia(ctx context.Context, mediaID uuid.UUID) ([]models.Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error)
}

type MediaGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Media, error)
}

// RatingService drives the rating lifecycle. A rating starts PENDING, with
// its comment hidden from readers, and becomes CONFIRMED once the owner of
// the rated media confirms it. Resubmitting a rating for the same media sends
// it back to PENDING.
type RatingService struct {
	log     *slog.Logger
	storage RatingStorage
	media   MediaGetter
}

func New(log *slog.Logger, storage RatingStorage, media MediaGetter) *RatingService {
	return &RatingService{
		log:     log,
		storage: storage,
		media:   media,
	}
}

func (s *RatingService) getMedia(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	media, err := s.media.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *RatingService) Get(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	const op = "ratings.RatingService.Get"
	rating, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		s.log.Error(err.Error(), "op", op, "id", id)
		return nil, err
	}
	return rating, nil
}

// Create submits the actor's rating for a media item. A user holds at most one
// rating per media: a second submission overwrites stars and comment of the
// first and requires a new confirmation.
func (s *RatingService) Create(
	ctx context.Context,
	mediaID uuid.UUID,
	stars fields.Stars,
	comment *string,
	actor *models.User,
) (*models.Rating, error) {
	const op = "ratings.RatingService.Create"
	log := s.log.With("op", op, "media_id", mediaID, "stars", stars)
	if err := authz.RequireUser(actor); err != nil {
		return nil, err
	}
	if !stars.Valid() {
		return nil, ErrInvalidStars
	}
	if _, err := s.getMedia(ctx, mediaID); err != nil {
		log.Debug("rating refused", "reason", err.Error())
		return nil, err
	}
	rating, err := s.storage.Upsert(ctx, &models.Rating{
		MediaID: mediaID,
		UserID:  actor.ID,
		Stars:   stars,
		Comment: comment,
		Status:  models.RatingPending,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// media vanished between the lookup and the write
			return nil, ErrMediaNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return rating, nil
}

// Confirm makes the rating's comment public. Only the owner of the rated media
// may confirm.
func (s *RatingService) Confirm(ctx context.Context, ratingID, actorID uuid.UUID) (*models.Rating, error) {
	const op = "ratings.RatingService.Confirm"
	log := s.log.With("op", op, "id", ratingID)
	rating, err := s.Get(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	media, err := s.getMedia(ctx, rating.MediaID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwnerID(media.OwnerID, actorID, ErrNotMediaOwner); err != nil {
		log.Debug("confirm refused", "actor", actorID)
		return nil, err
	}
	confirmed, err := s.storage.SetStatus(ctx, ratingID, models.RatingConfirmed)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return confirmed, nil
}

// Update lets the author change stars and comment. The status is kept.
func (s *RatingService) Update(
	ctx context.Context,
	ratingID uuid.UUID,
	actor *models.User,
	stars fields.Stars,
	comment *string,
) (*models.Rating, error) {
	const op = "ratings.RatingService.Update"
	log := s.log.With("op", op, "id", ratingID)
	if !stars.Valid() {
		return nil, ErrInvalidStars
	}
	rating, err := s.Get(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(rating.UserID, actor, ErrNotRatingAuthor); err != nil {
		log.Debug("update refused")
		return nil, err
	}
	rating.Stars = stars
	rating.Comment = comment
	updated, err := s.storage.Update(ctx, rating)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}

func (s *RatingService) Delete(ctx context.Context, ratingID, actorID uuid.UUID) error {
	const op = "ratings.RatingService.Delete"
	log := s.log.With("op", op, "id", ratingID)
	rating, err := s.Get(ctx, ratingID)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerID(rating.UserID, actorID, ErrNotRatingAuthor); err != nil {
		log.Debug("delete refused", "actor", actorID)
		return err
	}
	if err := s.storage.Delete(ctx, ratingID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRatingNotFound
		}
		log.Error(err.Error())
		return err
	}
	return nil
}

func (s *RatingService) Like(ctx context.Context, ratingID uuid.UUID) (*models.Rating, error) {
	const op = "ratings.RatingService.Like"
	rating, err := s.storage.IncrementLikes(ctx, ratingID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		s.log.Error(err.Error(), "op", op, "id", ratingID)
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) GetAllByMediaID(ctx context.Context, mediaID uuid.UUID) ([]models.Rating, error) {
	const op = "ratings.RatingService.GetAllByMediaID"
	ratings, err := s.storage.ListByMedia(ctx, mediaID)
	if err != nil {
		s.log.Error(err.Error(), "op", op, "media_id", mediaID)
		return nil, err
	}
	return ratings, nil
}

func (s *RatingService) GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	const op = "ratings.RatingService.GetAllByUserID"
	ratings, err := s.storage.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error(err.Error(), "op", op, "user_id", userID)
		return nil, err
	}
	return ratings, nil
}

// GetAllConfirmedByMediaID is the public read: only confirmed ratings, whose
// comments may be shown.
func (s *RatingService) GetAllConfirmedByMediaID(ctx context.Context, mediaID uuid.UUID) ([]models.Rating, error) {
	all, err := s.GetAllByMediaID(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	confirmed := make([]models.Rating, 0, len(all))
	for _, rating := range all {
		if rating.IsConfirmed() {
			confirmed = append(confirmed, rating)
		}
	}
	return confirmed, nil
}
