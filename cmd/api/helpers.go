package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/models"
	"mediaratings/proj/internal/lib/validator"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (app *Application) extractUUIDParam(w http.ResponseWriter, r *http.Request, name string) (id uuid.UUID, extracted bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		app.Http.BadRequest(w, r, fmt.Sprintf("invalid %s, must be a UUID", name))
		return uuid.Nil, false
	}
	return id, true
}

func (app *Application) extractIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return app.extractUUIDParam(w, r, "id")
}

func (app *Application) contextGetUser(r *http.Request) *models.User {
	user, ok := r.Context().Value(CtxKeyUser).(*models.User)
	if !ok || user == nil {
		return models.AnonymousUser
	}
	return user
}

// serviceError writes the response matching the kind of a service failure.
func (app *Application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		app.Http.NotFound(w, r, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		app.Http.Forbidden(w, r, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		app.Http.Unauthorized(w, r, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		app.Http.Conflict(w, r, err.Error())
	case errors.Is(err, apperr.ErrBadInput):
		app.Http.BadRequest(w, r, err.Error())
	default:
		app.Http.ServerError(w, r, err, "")
	}
}

// readValidJSON decodes the body into dst and validates it. On failure the
// error response is already written and false is returned.
func (app *Application) readValidJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := app.readJSON(w, r, dst); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return false
	}
	if errs := validator.ValidateStruct(app.validator, dst); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return false
	}
	return true
}

// readValidQuery is readValidJSON for the URL query string.
func (app *Application) readValidQuery(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := app.decoder.Decode(dst, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return false
	}
	if errs := validator.ValidateStruct(app.validator, dst); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return false
	}
	return true
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	src := http.MaxBytesReader(w, r.Body, int64(maxBytes))
	defer io.Copy(io.Discard, src)
	dec := json.NewDecoder(src)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		return handleJsonErr(err)
	}
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")

	case errors.As(err, &unmarshalTypeError):
		if unmarshalTypeError.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		}
		return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")

	case errors.As(err, &maxBytesError):
		return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}
