package models

import (
	"context"
	"mediaratings/proj/internal/domain/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, username, password_hash, created_at, updated_at"

type UserModel struct {
	DB *pgxpool.Pool
}

func (m *UserModel) Insert(ctx context.Context, username, passwordHash string) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3) RETURNING "+userColumns,
		uuid.New(),
		username,
		passwordHash,
	)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, storageErr(err)
	}
	return &user, nil
}

func (m *UserModel) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, storageErr(err)
	}
	return &user, nil
}

func (m *UserModel) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, storageErr(err)
	}
	return &user, nil
}

func (m *UserModel) List(ctx context.Context) ([]models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at, id")
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, storageErr(err)
	}
	return users, nil
}
