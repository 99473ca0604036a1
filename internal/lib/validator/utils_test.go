package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mediaQuery struct {
	Sort  string `schema:"sort" validate:"sortbymediafield"`
	Type  string `schema:"type" validate:"mediatype"`
	Title string `json:"title" validate:"notblank,max=10"`
	Year  int    `json:"release_year" validate:"gte=1850" errorMsg:"Release year is too early"`
}

func TestValidateStruct(t *testing.T) {
	v := New()

	errs := ValidateStruct(v, mediaQuery{Sort: "-release_year", Type: "Movie", Title: "Dune", Year: 2021})
	assert.Empty(t, errs)

	errs = ValidateStruct(v, &mediaQuery{Sort: "owner_id", Type: "podcast", Title: "  ", Year: 1700})
	assert.Len(t, errs, 4)
	assert.Contains(t, errs["sort"], "release_year, title")
	assert.Contains(t, errs["type"], "movie, series, game")
	assert.Equal(t, "This field is required", errs["title"])
	assert.Equal(t, "Release year is too early", errs["release_year"])
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"MediaID":     "media_id",
		"ReleaseYear": "release_year",
		"Title":       "title",
		"AvatarURL":   "avatar_url",
	}
	for in, want := range tests {
		assert.Equal(t, want, CamelToSnake(in), in)
	}
}

type genresRequest struct {
	Genres []string `json:"genres" validate:"dive,notblank"`
}

func TestValidateStructDivedField(t *testing.T) {
	errs := ValidateStruct(New(), genresRequest{Genres: []string{"Drama", " "}})
	assert.Equal(t, map[string]string{"genres[1]": "This field is required"}, errs)
}
