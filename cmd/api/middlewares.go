package main

import (
	"context"
	"errors"
	"fmt"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/models"
	"net/http"
	"strings"
)

func (app *Application) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				app.Http.ServerError(w, r, err, "")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// dispatchToWorkers runs the rest of the chain on the worker pool. A request
// that cannot get a worker before its context ends is answered with 503.
func (app *Application) dispatchToWorkers(next http.Handler) http.Handler {
	const op = "middlewares.dispatchToWorkers"
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := app.workers.Do(r.Context(), func() {
			next.ServeHTTP(w, r)
		})
		if err != nil {
			app.Http.setupLogPerReq(r).Warn("request not dispatched", "op", op, "reason", err.Error())
			app.Http.ServiceUnavailable(w, r, "The server is busy, please try again later.")
		}
	})
}

type CtxKey string

const CtxKeyUser CtxKey = "user"

func (app *Application) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := models.AnonymousUser

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			const bearerLength = len("Bearer ")
			if !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) < bearerLength+1 {
				app.log.Debug("Invalid auth header")
				app.Http.Unauthorized(w, r, "Invalid Authorization header, should be 'Bearer <token>'")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			var err error
			user, err = app.services.Auth.UserByToken(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, apperr.ErrUnauthorized):
					app.Http.Unauthorized(w, r, "Invalid or expired token")
				default:
					app.Http.ServerError(w, r, err, "")
				}
				return
			}
		}
		r = r.WithContext(context.WithValue(r.Context(), CtxKeyUser, user))
		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthenticatedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.contextGetUser(r).IsAnonymous() {
			app.Http.Unauthorized(w, r, "You must be authenticated to access this resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}
