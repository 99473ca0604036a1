package main

import (
	"mediaratings/proj/internal/domain/filters"
	"net/http"

	"github.com/google/uuid"
)

func (app *Application) listMedia(w http.ResponseWriter, r *http.Request) {
	var query mediaQuery
	if !app.readValidQuery(w, r, &query) {
		return
	}
	media, err := app.services.Media.Search(r.Context(), filters.Filters{
		Genre:        query.Genre,
		Type:         query.Type,
		Sort:         query.Sort,
		SortSafelist: filters.MediaSortSafelist,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"media": media}, "")
}

func (app *Application) createMedia(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	media, err := app.services.Media.Create(r.Context(), req.toModel(uuid.Nil), app.contextGetUser(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"media": media}, "")
}

func (app *Application) getMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	media, err := app.services.Media.Get(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"media": media}, "")
}

func (app *Application) updateMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var req mediaRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	media, err := app.services.Media.Update(r.Context(), req.toModel(id), app.contextGetUser(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"media": media}, "")
}

func (app *Application) deleteMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Media.Delete(r.Context(), id, app.contextGetUser(r)); err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Media successfully deleted")
}

func (app *Application) likeMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	media, err := app.services.Media.Like(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"media": media}, "")
}

func (app *Application) listMediaRatings(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if _, err := app.services.Media.Get(r.Context(), id); err != nil {
		app.serviceError(w, r, err)
		return
	}
	ratings, err := app.services.Ratings.GetAllConfirmedByMediaID(r.Context(), id)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"ratings": ratings}, "")
}
