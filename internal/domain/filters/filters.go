package filters

import (
	"errors"
	"strings"
)

const (
	AscSort  = "ASC"
	DescSort = "DESC"
)

// MediaSortSafelist lists the media columns a listing may be sorted by.
var MediaSortSafelist = []string{"release_year", "title"}

type Filters struct {
	Genre        string
	Type         string
	Sort         string
	SortSafelist []string
}

func (f *Filters) HasSort() bool {
	return f.Sort != ""
}

// IsSafeSort reports whether Sort (optionally prefixed with "-") names a
// safelisted column.
func (f *Filters) IsSafeSort() bool {
	s := strings.TrimPrefix(f.Sort, "-")
	for _, safeValue := range f.SortSafelist {
		if strings.EqualFold(s, safeValue) {
			return true
		}
	}
	return false
}

func (f *Filters) SortColumn() string {
	s := strings.TrimPrefix(f.Sort, "-")
	for _, safeValue := range f.SortSafelist {
		if strings.EqualFold(s, safeValue) {
			return safeValue
		}
	}
	panic(errors.New("Unknown sort column: " + f.Sort))
}

func (f *Filters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return DescSort
	}
	return AscSort
}
