package main

import (
	"mediaratings/proj/internal/domain/fields"
	"mediaratings/proj/internal/domain/models"
	"net/http"

	"github.com/google/uuid"
)

func (app *Application) createRating(w http.ResponseWriter, r *http.Request) {
	var req createRatingRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	rating, err := app.services.Ratings.Create(
		r.Context(),
		req.MediaID,
		fields.Stars(req.Stars),
		req.Comment,
		app.contextGetUser(r),
	)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"rating": rating}, "Rating submitted, the comment is shown once confirmed")
}

// listRatings lists the ratings of one media item (?media_id=) or of one
// author (?user_id=).
func (app *Application) listRatings(w http.ResponseWriter, r *http.Request) {
	var query ratingsQuery
	if !app.readValidQuery(w, r, &query) {
		return
	}
	var (
		ratings []models.Rating
		err     error
	)
	switch {
	case query.MediaID != uuid.Nil && query.UserID == uuid.Nil:
		ratings, err = app.services.Ratings.GetAllByMediaID(r.Context(), query.MediaID)
	case query.UserID != uuid.Nil && query.MediaID == uuid.Nil:
		ratings, err = app.services.Ratings.GetAllByUserID(r.Context(), query.UserID)
	default:
		app.Http.BadRequest(w, r, "exactly one of media_id or user_id must be given")
		return
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"ratings": ratings}, "")
}

func (app *Application) updateRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req updateRatingRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	rating, err := app.services.Ratings.Update(r.Context(), id, app.contextGetUser(r), fields.Stars(req.Stars), req.Comment)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"rating": rating}, "")
}

func (app *Application) deleteRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Ratings.Delete(r.Context(), id, app.contextGetUser(r).ID); err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Rating successfully deleted")
}

func (app *Application) likeRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	rating, err := app.services.Ratings.Like(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"rating": rating}, "")
}

func (app *Application) confirmRating(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	rating, err := app.services.Ratings.Confirm(r.Context(), id, app.contextGetUser(r).ID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"rating": rating}, "Rating confirmed")
}
