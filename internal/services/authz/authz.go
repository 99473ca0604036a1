// Package authz holds the ownership checks behind every mutating operation.
package authz

import (
	"fmt"
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/models"

	"github.com/google/uuid"
)

var ErrAnonymous = fmt.Errorf("%w: authentication required", apperr.ErrUnauthorized)

// Denied builds a Forbidden failure carrying msg.
func Denied(msg string) error {
	return fmt.Errorf("%w: %s", apperr.ErrForbidden, msg)
}

func IsOwner(ownerID, actorID uuid.UUID) bool {
	return ownerID != uuid.Nil && ownerID == actorID
}

// RequireOwner returns denied unless actor owns the entity owned by ownerID.
// Anonymous actors own nothing.
func RequireOwner(ownerID uuid.UUID, actor *models.User, denied error) error {
	if actor.IsAnonymous() || !IsOwner(ownerID, actor.ID) {
		return denied
	}
	return nil
}

func RequireUser(actor *models.User) error {
	if actor.IsAnonymous() {
		return ErrAnonymous
	}
	return nil
}

// RequireOwnerID is RequireOwner for callers that only know the actor's id.
func RequireOwnerID(ownerID, actorID uuid.UUID, denied error) error {
	if !IsOwner(ownerID, actorID) {
		return denied
	}
	return nil
}
