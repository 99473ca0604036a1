package models

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ratingColumns = "id, media_id, user_id, stars, comment, status, total_likes, created_at, updated_at"

type RatingModel struct {
	DB *pgxpool.Pool
}

// Upsert relies on the (user_id, media_id) unique constraint, so concurrent
// submissions for one pair always end up in a single row.
func (m *RatingModel) Upsert(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO ratings (id, media_id, user_id, stars, comment, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, media_id) DO UPDATE
		SET stars = EXCLUDED.stars, comment = EXCLUDED.comment, status = EXCLUDED.status, updated_at = now()
		RETURNING `+ratingColumns,
		uuid.New(),
		rating.MediaID,
		rating.UserID,
		int(rating.Stars),
		rating.Comment,
		string(models.RatingPending),
	)
	stored, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		return nil, storageErr(err)
	}
	return &stored, nil
}

func (m *RatingModel) Get(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+ratingColumns+" FROM ratings WHERE id = $1", id)
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		return nil, storageErr(err)
	}
	return &rating, nil
}

func (m *RatingModel) Update(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE ratings SET stars = $1, comment = $2, updated_at = now()
		WHERE id = $3 RETURNING `+ratingColumns,
		int(rating.Stars),
		rating.Comment,
		rating.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		return nil, storageErr(err)
	}
	return &updated, nil
}

func (m *RatingModel) SetStatus(ctx context.Context, id uuid.UUID, status models.RatingStatus) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE ratings SET status = $1, updated_at = now() WHERE id = $2 RETURNING "+ratingColumns,
		string(status),
		id,
	)
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		return nil, storageErr(err)
	}
	return &rating, nil
}

func (m *RatingModel) IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE ratings SET total_likes = total_likes + 1, updated_at = now() WHERE id = $1 RETURNING "+ratingColumns,
		id,
	)
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		return nil, storageErr(err)
	}
	return &rating, nil
}

func (m *RatingModel) Delete(ctx context.Context, id uuid.UUID) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM ratings WHERE id = $1", id)
	if err != nil {
		return storageErr(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByMedia duplicates the ON DELETE CASCADE of the schema so both
// backends honour the same contract.
func (m *RatingModel) DeleteByMedia(ctx context.Context, mediaID uuid.UUID) error {
	_, err := m.DB.Exec(ctx, "DELETE FROM ratings WHERE media_id = $1", mediaID)
	return storageErr(err)
}

func (m *RatingModel) List(ctx context.Context) ([]models.Rating, error) {
	return m.list(ctx, "SELECT "+ratingColumns+" FROM ratings ORDER BY created_at, id")
}

func (m *RatingModel) ListByMedia(ctx context.Context, mediaID uuid.UUID) ([]models.Rating, error) {
	return m.list(ctx, "SELECT "+ratingColumns+" FROM ratings WHERE media_id = $1 ORDER BY created_at, id", mediaID)
}

func (m *RatingModel) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Rating, error) {
	return m.list(ctx, "SELECT "+ratingColumns+" FROM ratings WHERE user_id = $1 ORDER BY created_at, id", userID)
}

func (m *RatingModel) list(ctx context.Context, query string, args ...any) ([]models.Rating, error) {
	rows, _ := m.DB.Query(ctx, query, args...)
	ratings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		return nil, storageErr(err)
	}
	return ratings, nil
}
