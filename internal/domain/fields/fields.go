package fields

import (
	"fmt"
	"strings"
)

type Stars int

const (
	MinStars Stars = 1
	MaxStars Stars = 5
	// Ratings at or above this value seed recommendations.
	LikedStars Stars = 4
)

func (s Stars) Valid() bool {
	return s >= MinStars && s <= MaxStars
}

func (s Stars) String() string {
	return fmt.Sprintf("%d/%d", s, MaxStars)
}

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
	MediaTypeGame   MediaType = "game"
)

func MediaTypes() []string {
	return []string{string(MediaTypeMovie), string(MediaTypeSeries), string(MediaTypeGame)}
}

// Is compares media types by name, ignoring case.
func (t MediaType) Is(name string) bool {
	return strings.EqualFold(string(t), name)
}

// ContainsFold reports whether values holds v, ignoring case.
func ContainsFold(values []string, v string) bool {
	for _, value := range values {
		if strings.EqualFold(value, v) {
			return true
		}
	}
	return false
}
