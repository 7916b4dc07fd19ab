package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"whiteboard/internal/models"
	"whiteboard/internal/shared"
)

func TestUserAddAndGet(t *testing.T) {
	env := setupTestEnv(t)

	id, err := env.users.Add(userParams("annie", "pw"))
	assert.NoError(t, err)

	user, err := env.users.Get(id)
	assert.NoError(t, err)
	assert.Equal(t, "annie", user.Name)

	// String ids from route parameters are accepted.
	user, err = env.users.Get("1")
	assert.NoError(t, err)
	assert.Equal(t, "annie", user.Name)

	byName, err := env.users.GetByName("annie")
	assert.NoError(t, err)
	assert.Equal(t, id, byName.ID)
}

func TestUserGetInvalidID(t *testing.T) {
	env := setupTestEnv(t)

	// The shape check fires before any storage access.
	for _, v := range []any{-1, "abc", true, 1.5, nil, json.Number("1.0")} {
		_, err := env.users.Get(v)
		assert.True(t, shared.IsInvalidAttribute(err), "id %v should be invalid", v)
		assert.EqualError(t, err, "Invalid user_id.")
	}
}

func TestUserGetUnknownID(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.users.Get(99999)
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "User with id 99999 does not exist.")

	// A zero id is shape-valid but resolves to nothing.
	_, err = env.users.Get(0)
	assert.True(t, shared.IsNotFound(err))
}

func TestUserAddRejectsBadFields(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.users.Add(models.UserParams{Name: 123, PasswordHash: "h"})
	assert.EqualError(t, err, "Invalid name.")

	_, err = env.users.Add(models.UserParams{Name: "", PasswordHash: "h"})
	assert.EqualError(t, err, "Invalid name.")

	_, err = env.users.Add(models.UserParams{Name: "annie", PasswordHash: nil})
	assert.EqualError(t, err, "Invalid password_hash.")
}

func TestUserUpdate(t *testing.T) {
	env := setupTestEnv(t)
	id := env.mustUser(t, "annie")

	ok, err := env.users.Update(id, models.UserParams{Name: "annie", PasswordHash: "hashed:new"})
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = env.users.Authenticate("annie", "new")
	assert.NoError(t, err)

	// Unknown id: shape checks pass, existence fails.
	_, err = env.users.Update(99999, models.UserParams{Name: "x", PasswordHash: "h"})
	assert.True(t, shared.IsNotFound(err))
}

func TestUserRemove(t *testing.T) {
	env := setupTestEnv(t)
	id := env.mustUser(t, "annie")

	ok, err := env.users.Remove(id)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = env.users.Get(id)
	assert.True(t, shared.IsNotFound(err))

	_, err = env.users.Remove(id)
	assert.True(t, shared.IsNotFound(err))
}

func TestUserAuthenticate(t *testing.T) {
	env := setupTestEnv(t)
	env.mustUser(t, "annie")

	user, err := env.users.Authenticate("annie", "pw")
	assert.NoError(t, err)
	assert.Equal(t, "annie", user.Name)

	_, err = env.users.Authenticate("annie", "wrong")
	assert.True(t, shared.IsInvalidPassword(err))
	assert.EqualError(t, err, "Invalid user password.")

	// Unknown names surface as NotFound, not InvalidPassword.
	_, err = env.users.Authenticate("nobody", "pw")
	assert.True(t, shared.IsNotFound(err))
}
