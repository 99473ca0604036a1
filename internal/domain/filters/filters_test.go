package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortColumn(t *testing.T) {
	f := Filters{Sort: "-Release_Year", SortSafelist: MediaSortSafelist}
	assert.True(t, f.HasSort())
	assert.True(t, f.IsSafeSort())
	assert.Equal(t, "release_year", f.SortColumn())
	assert.Equal(t, DescSort, f.SortDirection())

	f.Sort = "title"
	assert.Equal(t, AscSort, f.SortDirection())
}

func TestSortColumnUnknown(t *testing.T) {
	f := Filters{Sort: "owner_id", SortSafelist: MediaSortSafelist}
	assert.False(t, f.IsSafeSort())
	assert.Panics(t, func() { f.SortColumn() })
}
