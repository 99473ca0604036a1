package decoder

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type query struct {
	MediaID uuid.UUID `schema:"media_id"`
	Genre   string    `schema:"genre"`
	Limit   int       `schema:"limit"`
}

func TestDecode(t *testing.T) {
	id := uuid.New()
	var q query
	err := New().Decode(&q, url.Values{
		"media_id": {id.String()},
		"genre":    {"SciFi"},
		"limit":    {"3"},
		"extra":    {"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, query{MediaID: id, Genre: "SciFi", Limit: 3}, q)
}

func TestDecodeErrors(t *testing.T) {
	var q query
	err := New().Decode(&q, url.Values{"media_id": {"not-a-uuid"}})
	assert.EqualError(t, err, "media_id: invalid value")

	err = New().Decode(&q, url.Values{"limit": {"many"}})
	assert.EqualError(t, err, "limit: invalid value")

	dec := New()
	dec.IgnoreUnknownKeys(false)
	err = dec.Decode(&q, url.Values{"extra": {"x"}})
	assert.EqualError(t, err, "extra: unknown query parameter")
}
