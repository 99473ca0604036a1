package main

import (
	"net/http"

	"github.com/go-chi/render"
)

func (app *Application) healthcheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, struct {
		Status  string `json:"status"`
		Debug   bool   `json:"debug"`
		Version string `json:"version"`
		Storage string `json:"storage"`
	}{
		Status:  "available",
		Debug:   app.cfg.Debug,
		Version: version,
		Storage: app.cfg.Storage.Driver,
	})
}

func (app *Application) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	user, err := app.services.Auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"user": user}, "User successfully registered")
}

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !app.readValidJSON(w, r, &req) {
		return
	}
	tokens, err := app.services.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"tokens": tokens}, "")
}

func (app *Application) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := app.services.Leaderboard.Get(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"leaderboard": entries}, "")
}

func (app *Application) getRecommendations(w http.ResponseWriter, r *http.Request) {
	media, err := app.services.Recommendations.Get(r.Context(), app.contextGetUser(r))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"media": media}, "")
}
