package main

import (
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/models"
	"strings"

	"github.com/google/uuid"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Password string `json:"password" validate:"notblank,max=72"`
}

type mediaRequest struct {
	Title          string   `json:"title" validate:"notblank,max=255"`
	Description    string   `json:"description" validate:"max=2000"`
	MediaType      string   `json:"media_type" validate:"required,mediatype"`
	ReleaseYear    int      `json:"release_year" validate:"gte=1850,lte=2100"`
	Genres         []string `json:"genres" validate:"max=20,dive,notblank,max=50"`
	AgeRestriction int      `json:"age_restriction" validate:"gte=0,lte=21"`
}

func (req *mediaRequest) toModel(id uuid.UUID) *models.Media {
	genres := make([]string, 0, len(req.Genres))
	for _, genre := range req.Genres {
		genres = append(genres, strings.TrimSpace(genre))
	}
	return &models.Media{
		ID:             id,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		MediaType:      fields.MediaType(strings.ToLower(req.MediaType)),
		ReleaseYear:    req.ReleaseYear,
		Genres:         genres,
		AgeRestriction: req.AgeRestriction,
	}
}

type mediaQuery struct {
	Genre string `schema:"genre" validate:"max=50"`
	Type  string `schema:"type" validate:"mediatype"`
	Sort  string `schema:"sort" validate:"sortbymediafield"`
}

type createRatingRequest struct {
	MediaID uuid.UUID `json:"media_id" validate:"required"`
	Stars   int       `json:"stars" validate:"required,gte=1,lte=5"`
	Comment *string   `json:"comment" validate:"omitempty,max=2000"`
}

type updateRatingRequest struct {
	Stars   int     `json:"stars" validate:"required,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

type ratingsQuery struct {
	MediaID uuid.UUID `schema:"media_id"`
	UserID  uuid.UUID `schema:"user_id"`
}

type profileRequest struct {
	Bio       string `json:"bio" validate:"max=1000"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}
