package models

import (
	"context"
	"mediaratings/proj/internal/domain/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteModel struct {
	DB *pgxpool.Pool
}

func (m *FavoriteModel) Add(ctx context.Context, userID, mediaID uuid.UUID) error {
	_, err := m.DB.Exec(
		ctx,
		"INSERT INTO favorites (user_id, media_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		userID,
		mediaID,
	)
	return storageErr(err)
}

func (m *FavoriteModel) Remove(ctx context.Context, userID, mediaID uuid.UUID) error {
	_, err := m.DB.Exec(ctx, "DELETE FROM favorites WHERE user_id = $1 AND media_id = $2", userID, mediaID)
	return storageErr(err)
}

func (m *FavoriteModel) DeleteByMedia(ctx context.Context, mediaID uuid.UUID) error {
	_, err := m.DB.Exec(ctx, "DELETE FROM favorites WHERE media_id = $1", mediaID)
	return storageErr(err)
}

func (m *FavoriteModel) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	rows, _ := m.DB.Query(
		ctx,
		"SELECT user_id, media_id, created_at FROM favorites WHERE user_id = $1 ORDER BY created_at",
		userID,
	)
	favorites, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Favorite])
	if err != nil {
		return nil, storageErr(err)
	}
	return favorites, nil
}
