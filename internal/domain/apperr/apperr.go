// Package apperr holds the failure kinds shared by all domain services.
// Services declare their own sentinels wrapping one of these with %w, the
// transport layer matches on the kind with errors.Is.
package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadInput     = errors.New("bad input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)
