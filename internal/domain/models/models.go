package models

import (
	"encoding/json"
	"mediaratings/proj/internal/domain/fields"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`             // Random v4 identifier assigned by storage
	Username     string    `json:"username" db:"username"` // Unique, non-blank login name
	PasswordHash string    `json:"-" db:"password_hash"`   // bcrypt digest, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AnonymousUser is put into the request context when no token was supplied.
var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == nil || u == AnonymousUser || u.ID == uuid.Nil
}

type Media struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	OwnerID        uuid.UUID        `json:"owner_id" db:"owner_id"` // Creator, the only user allowed to mutate it
	Title          string           `json:"title" db:"title"`
	Description    string           `json:"description" db:"description"`
	MediaType      fields.MediaType `json:"media_type" db:"media_type"` // movie, series, game
	ReleaseYear    int              `json:"release_year" db:"release_year"`
	Genres         []string         `json:"genres" db:"genres"` // Ordered, treated as a set by lookups
	AgeRestriction int              `json:"age_restriction" db:"age_restriction"`
	TotalLikes     int              `json:"total_likes" db:"total_likes"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

type RatingStatus string

const (
	RatingPending   RatingStatus = "PENDING"
	RatingConfirmed RatingStatus = "CONFIRMED"
)

type Rating struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	MediaID    uuid.UUID    `json:"media_id" db:"media_id"`
	UserID     uuid.UUID    `json:"user_id" db:"user_id"` // Author
	Stars      fields.Stars `json:"stars" db:"stars"`
	Comment    *string      `json:"comment" db:"comment"` // Stored as is, serialized only once confirmed
	Status     RatingStatus `json:"status" db:"status"`
	TotalLikes int          `json:"total_likes" db:"total_likes"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

func (r *Rating) IsConfirmed() bool {
	return r.Status == RatingConfirmed
}

// VisibleComment returns the comment as readers may see it: nil until the
// rating is confirmed.
func (r *Rating) VisibleComment() *string {
	if !r.IsConfirmed() {
		return nil
	}
	return r.Comment
}

func (r Rating) MarshalJSON() ([]byte, error) {
	type rating Rating
	out := rating(r)
	out.Comment = r.VisibleComment()
	return json.Marshal(out)
}

type Profile struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	TotalRatings   int       `json:"total_ratings" db:"-"`
	AverageScore   float64   `json:"average_score" db:"-"`
	FavouriteGenre string    `json:"favourite_genre,omitempty" db:"-"`
	FavouriteMedia []Media   `json:"favourite_media" db:"-"`
	Bio            string    `json:"bio" db:"bio"`
	AvatarURL      string    `json:"avatar_url" db:"avatar_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type Favorite struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	MediaID   uuid.UUID `json:"media_id" db:"media_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Ratings  int    `json:"ratings"`
}

type AuthTokens struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
