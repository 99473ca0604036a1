package models

import (
	"errors"
	"mediaratings/proj/internal/storage"
	"mediaratings/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Models struct {
	User     *UserModel
	Media    *MediaModel
	Rating   *RatingModel
	Profile  *ProfileModel
	Favorite *FavoriteModel
}

func New(db *postgres.PostgresDB) *Models {
	return &Models{
		User:     &UserModel{db.Conn},
		Media:    &MediaModel{db.Conn},
		Rating:   &RatingModel{db.Conn},
		Profile:  &ProfileModel{db.Conn},
		Favorite: &FavoriteModel{db.Conn},
	}
}

// storageErr translates driver errors into storage sentinels.
func storageErr(err error) error {
	var pgxErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return storage.ErrNotFound
	case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode:
		return storage.ErrConflict
	case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrForeignKeyCode:
		return storage.ErrNotFound
	}
	return err
}
