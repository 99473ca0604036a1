package media

import (
	"context"
	"errors"
	"log/slog"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/filters"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/storage/memory"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*MediaService, *memory.Storage) {
	t.Helper()
	store := memory.New()
	return New(slog.Default(), store.Media, store.Ratings, store.Favorites), store
}

func titles(media []models.Media) []string {
	out := make([]string, 0, len(media))
	for _, m := range media {
		out = append(out, m.Title)
	}
	return out
}

func TestCreateStampsOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := &models.User{ID: uuid.New()}

	created, err := svc.Create(ctx, &models.Media{Title: "Alien", OwnerID: uuid.New()}, owner)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, created.OwnerID)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotNil(t, created.Genres)

	_, err = svc.Create(ctx, &models.Media{Title: "Heat"}, models.AnonymousUser)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMediaNotFound)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := &models.User{ID: uuid.New()}
	stranger := &models.User{ID: uuid.New()}
	created, err := svc.Create(ctx, &models.Media{Title: "Alien", ReleaseYear: 1979}, owner)
	require.NoError(t, err)

	t.Run("non owner", func(t *testing.T) {
		_, err := svc.Update(ctx, &models.Media{ID: created.ID, Title: "Hijacked"}, stranger)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
		assert.ErrorIs(t, svc.Delete(ctx, created.ID, stranger), ErrNotMediaOwner)

		stored, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alien", stored.Title)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := svc.Update(ctx, &models.Media{ID: uuid.New(), Title: "x"}, owner)
		assert.ErrorIs(t, err, ErrMediaNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), owner), ErrMediaNotFound)
	})
	t.Run("owner", func(t *testing.T) {
		updated, err := svc.Update(ctx, &models.Media{
			ID:          created.ID,
			Title:       "Aliens",
			ReleaseYear: 1986,
			Genres:      []string{"SciFi", "Action"},
			MediaType:   fields.MediaTypeMovie,
		}, owner)
		require.NoError(t, err)
		assert.Equal(t, "Aliens", updated.Title)
		assert.Equal(t, owner.ID, updated.OwnerID)
		assert.Equal(t, 1986, updated.ReleaseYear)

		require.NoError(t, svc.Delete(ctx, created.ID, owner))
		_, err = svc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrMediaNotFound)
	})
}

func TestDeleteCascades(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	owner := &models.User{ID: uuid.New()}
	created, err := svc.Create(ctx, &models.Media{Title: "Alien"}, owner)
	require.NoError(t, err)
	_, err = store.Ratings.Upsert(ctx, &models.Rating{MediaID: created.ID, UserID: owner.ID, Stars: 4})
	require.NoError(t, err)
	require.NoError(t, store.Favorites.Add(ctx, owner.ID, created.ID))

	require.NoError(t, svc.Delete(ctx, created.ID, owner))

	ratings, err := store.Ratings.ListByMedia(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)
	favorites, err := store.Favorites.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

type failingDependent struct{}

func (failingDependent) DeleteByMedia(ctx context.Context, mediaID uuid.UUID) error {
	return errors.New("connection reset")
}

func TestDeleteKeepsMediaWhenCascadeFails(t *testing.T) {
	store := memory.New()
	svc := New(slog.Default(), store.Media, store.Ratings, failingDependent{})
	ctx := context.Background()
	owner := &models.User{ID: uuid.New()}
	created, err := svc.Create(ctx, &models.Media{Title: "Alien"}, owner)
	require.NoError(t, err)

	assert.EqualError(t, svc.Delete(ctx, created.ID, owner), "connection reset")

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alien", stored.Title)
}

func TestLike(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, &models.Media{Title: "Alien"}, &models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.Like(ctx, created.ID)
	require.NoError(t, err)
	liked, err := svc.Like(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.TotalLikes)

	_, err = svc.Like(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func seed(t *testing.T, svc *MediaService) {
	t.Helper()
	owner := &models.User{ID: uuid.New()}
	for _, m := range []models.Media{
		{Title: "Dune", ReleaseYear: 2021, MediaType: fields.MediaTypeMovie, Genres: []string{"SciFi"}},
		{Title: "Alien", ReleaseYear: 1979, MediaType: fields.MediaTypeMovie, Genres: []string{"scifi", "Horror"}},
		{Title: "Halo", ReleaseYear: 2001, MediaType: fields.MediaTypeGame, Genres: []string{"SciFi", "Shooter"}},
		{Title: "Fargo", ReleaseYear: 2014, MediaType: fields.MediaTypeSeries, Genres: []string{"Crime"}},
		{Title: "Arrival", ReleaseYear: 2001, MediaType: fields.MediaTypeMovie, Genres: []string{"Drama"}},
	} {
		_, err := svc.Create(context.Background(), &m, owner)
		require.NoError(t, err)
	}
}

func TestFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seed(t, svc)

	byGenre, err := svc.FilterByGenre(ctx, "SCIFI")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Alien", "Halo"}, titles(byGenre))

	byType, err := svc.FilterByType(ctx, "Movie")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Alien", "Arrival"}, titles(byType))

	none, err := svc.FilterByGenre(ctx, "Western")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSortByReleaseYearIsStable(t *testing.T) {
	svc, _ := newTestService(t)
	seed(t, svc)

	sorted, err := svc.SortByReleaseYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien", "Halo", "Arrival", "Fargo", "Dune"}, titles(sorted))
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seed(t, svc)

	result, err := svc.Search(ctx, filters.Filters{
		Genre:        "scifi",
		Type:         "movie",
		Sort:         "-release_year",
		SortSafelist: filters.MediaSortSafelist,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune", "Alien"}, titles(result))

	result, err = svc.Search(ctx, filters.Filters{Sort: "title", SortSafelist: filters.MediaSortSafelist})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alien", "Arrival", "Dune", "Fargo", "Halo"}, titles(result))

	_, err = svc.Search(ctx, filters.Filters{Sort: "owner_id", SortSafelist: filters.MediaSortSafelist})
	assert.ErrorIs(t, err, apperr.ErrBadInput)
}
