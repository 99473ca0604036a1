package authz

import (
	"mediaratings/proj/internal/domain/apperr"
	"mediaratings/proj/internal/domain/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	id := uuid.New()
	assert.True(t, IsOwner(id, id))
	assert.False(t, IsOwner(id, uuid.New()))
	assert.False(t, IsOwner(uuid.Nil, uuid.Nil))
}

func TestRequireOwner(t *testing.T) {
	denied := Denied("not yours")
	owner := &models.User{ID: uuid.New()}

	assert.NoError(t, RequireOwner(owner.ID, owner, denied))
	assert.ErrorIs(t, RequireOwner(owner.ID, &models.User{ID: uuid.New()}, denied), apperr.ErrForbidden)
	assert.ErrorIs(t, RequireOwner(owner.ID, models.AnonymousUser, denied), denied)
	assert.ErrorIs(t, RequireOwner(owner.ID, nil, denied), denied)

	assert.NoError(t, RequireOwnerID(owner.ID, owner.ID, denied))
	assert.ErrorIs(t, RequireOwnerID(owner.ID, uuid.New(), denied), denied)
}

func TestDeniedMessage(t *testing.T) {
	assert.Equal(t, "forbidden: not yours", Denied("not yours").Error())
}

func TestRequireUser(t *testing.T) {
	assert.ErrorIs(t, RequireUser(nil), apperr.ErrUnauthorized)
	assert.ErrorIs(t, RequireUser(models.AnonymousUser), ErrAnonymous)
	assert.NoError(t, RequireUser(&models.User{ID: uuid.New()}))
}
