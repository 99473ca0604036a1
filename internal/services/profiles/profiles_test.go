package profiles

import (
	"context"
	"log/slog"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage/memory"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*ProfileService, *FavoriteService, *memory.Storage) {
	t.Helper()
	store := memory.New()
	log := slog.Default()
	profiles := New(log, store.Profiles, store.Ratings, store.Media, store.Favorites)
	favorites := NewFavorites(log, store.Favorites, store.Profiles, store.Media)
	return profiles, favorites, store
}

func insertMedia(t *testing.T, store *memory.Storage, title string, genres ...string) *models.Media {
	t.Helper()
	media, err := store.Media.Insert(context.Background(), &models.Media{
		OwnerID: uuid.New(),
		Title:   title,
		Genres:  genres,
	})
	require.NoError(t, err)
	return media
}

func TestGetByUserIDCreatesProfile(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, first.UserID)
	assert.Zero(t, first.TotalRatings)
	assert.Empty(t, first.FavouriteMedia)

	second, err := svc.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetByUserIDConcurrentCreation(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	userID := uuid.New()

	ids := make([]uuid.UUID, 20)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			profile, err := svc.GetByUserID(ctx, userID)
			if assert.NoError(t, err) {
				ids[i] = profile.ID
			}
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestUpdate(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	userID := uuid.New()

	updated, err := svc.Update(ctx, userID, "film nerd", "https://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "film nerd", updated.Bio)
	assert.Equal(t, "https://example.com/a.png", updated.AvatarURL)

	profile, err := svc.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, updated.ID, profile.ID)
	assert.Equal(t, "film nerd", profile.Bio)
}

func TestDelete(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	userID := uuid.New()

	err := svc.Delete(ctx, userID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, svc.Ensure(ctx, userID))
	require.NoError(t, svc.Delete(ctx, userID))
	assert.ErrorIs(t, svc.Delete(ctx, userID), ErrProfileNotFound)
}

func TestProfileStats(t *testing.T) {
	svc, favorites, store := newTestServices(t)
	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, svc.Ensure(ctx, userID))

	dune := insertMedia(t, store, "Dune", "SciFi", "Drama")
	alien := insertMedia(t, store, "Alien", "scifi", "Horror")
	heat := insertMedia(t, store, "Heat", "Crime", "Drama")
	for _, r := range []models.Rating{
		{MediaID: dune.ID, UserID: userID, Stars: 5},
		{MediaID: alien.ID, UserID: userID, Stars: 4},
		{MediaID: heat.ID, UserID: userID, Stars: 2},
	} {
		_, err := store.Ratings.Upsert(ctx, &r)
		require.NoError(t, err)
	}
	require.NoError(t, favorites.Add(ctx, userID, alien.ID))
	require.NoError(t, favorites.Add(ctx, userID, alien.ID))

	profile, err := svc.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, profile.TotalRatings)
	assert.InDelta(t, 11.0/3.0, profile.AverageScore, 1e-9)
	// drama and scifi both occur twice
	assert.Equal(t, "Drama", profile.FavouriteGenre)
	require.Len(t, profile.FavouriteMedia, 1)
	assert.Equal(t, "Alien", profile.FavouriteMedia[0].Title)
}

func TestFavouriteGenre(t *testing.T) {
	assert.Empty(t, favouriteGenre(nil))
	assert.Equal(t, "SciFi", favouriteGenre([]models.Media{
		{Genres: []string{"SciFi", "Horror"}},
		{Genres: []string{"scifi"}},
		{Genres: []string{"Horror", "Action"}},
		{Genres: []string{"SCIFI"}},
	}))
}
