package main

import (
	"net/http"
)

func (app *Application) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := app.services.Profiles.GetByUserID(r.Context(), app.contextGetUser(r).ID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"profile": profile}, "")
}

func (app *Application) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	profile, err := app.services.Profiles.Update(r.Context(), app.contextGetUser(r).ID, req.Bio, req.AvatarURL)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"profile": profile}, "")
}

func (app *Application) deleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := app.services.Profiles.Delete(r.Context(), app.contextGetUser(r).ID); err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Profile successfully deleted")
}

func (app *Application) listFavorites(w http.ResponseWriter, r *http.Request) {
	media, err := app.services.Favorites.List(r.Context(), app.contextGetUser(r).ID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"media": media}, "")
}

func (app *Application) addFavorite(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := app.extractUUIDParam(w, r, "mediaId")
	if !ok {
		return
	}
	if err := app.services.Favorites.Add(r.Context(), app.contextGetUser(r).ID, mediaID); err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Added to favorites")
}

func (app *Application) removeFavorite(w http.ResponseWriter, r *http.Request) {
	mediaID, ok := app.extractUUIDParam(w, r, "mediaId")
	if !ok {
		return
	}
	if err := app.services.Favorites.Remove(r.Context(), app.contextGetUser(r).ID, mediaID); err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Removed from favorites")
}
