package models

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const mediaColumns = `id, owner_id, title, description, media_type, release_year, genres,
	age_restriction, total_likes, created_at, updated_at`

type MediaModel struct {
	DB *pgxpool.Pool
}

func genresOrEmpty(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}

func (m *MediaModel) Insert(ctx context.Context, media *models.Media) (*models.Media, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO media (id, owner_id, title, description, media_type, release_year, genres, age_restriction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING `+mediaColumns,
		uuid.New(),
		media.OwnerID,
		media.Title,
		media.Description,
		string(media.MediaType),
		media.ReleaseYear,
		genresOrEmpty(media.Genres),
		media.AgeRestriction,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Media])
	if err != nil {
		return nil, storageErr(err)
	}
	return &created, nil
}

func (m *MediaModel) Get(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+mediaColumns+" FROM media WHERE id = $1", id)
	media, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Media])
	if err != nil {
		return nil, storageErr(err)
	}
	return &media, nil
}

func (m *MediaModel) List(ctx context.Context) ([]models.Media, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+mediaColumns+" FROM media ORDER BY created_at, id")
	media, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Media])
	if err != nil {
		return nil, storageErr(err)
	}
	return media, nil
}

func (m *MediaModel) Update(ctx context.Context, media *models.Media) (*models.Media, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE media SET title = $1, description = $2, media_type = $3, release_year = $4, genres = $5,
		age_restriction = $6, updated_at = now()
		WHERE id = $7 RETURNING `+mediaColumns,
		media.Title,
		media.Description,
		string(media.MediaType),
		media.ReleaseYear,
		genresOrEmpty(media.Genres),
		media.AgeRestriction,
		media.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Media])
	if err != nil {
		return nil, storageErr(err)
	}
	return &updated, nil
}

func (m *MediaModel) IncrementLikes(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE media SET total_likes = total_likes + 1, updated_at = now() WHERE id = $1 RETURNING "+mediaColumns,
		id,
	)
	media, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Media])
	if err != nil {
		return nil, storageErr(err)
	}
	return &media, nil
}

func (m *MediaModel) Delete(ctx context.Context, id uuid.UUID) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM media WHERE id = $1", id)
	if err != nil {
		return storageErr(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
