package models

import (
	"context"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = "id, user_id, bio, avatar_url, created_at, updated_at"

type ProfileModel struct {
	DB *pgxpool.Pool
}

func (m *ProfileModel) Insert(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO profiles (id, user_id) VALUES ($1, $2) RETURNING "+profileColumns,
		uuid.New(),
		userID,
	)
	profile, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		return nil, storageErr(err)
	}
	return &profile, nil
}

func (m *ProfileModel) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+profileColumns+" FROM profiles WHERE user_id = $1", userID)
	profile, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		return nil, storageErr(err)
	}
	return &profile, nil
}

func (m *ProfileModel) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE profiles SET bio = $1, avatar_url = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4 RETURNING `+profileColumns,
		profile.Bio,
		profile.AvatarURL,
		profile.ID,
		profile.UserID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		return nil, storageErr(err)
	}
	return &updated, nil
}

func (m *ProfileModel) Delete(ctx context.Context, id uuid.UUID) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM profiles WHERE id = $1", id)
	if err != nil {
		return storageErr(err)
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
