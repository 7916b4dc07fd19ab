package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"whiteboard/internal/shared"
)

func TestEquipmentGetAndList(t *testing.T) {
	env := setupTestEnv(t)

	barbell, err := env.equipment.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, "Barbell", barbell.Name)

	// Route parameters arrive as strings.
	_, err = env.equipment.Get("1")
	assert.NoError(t, err)

	_, err = env.equipment.Get(99999)
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "Equipment with id 99999 does not exist.")

	_, err = env.equipment.Get("abc")
	assert.EqualError(t, err, "Invalid equipment_id.")

	all, err := env.equipment.List("")
	assert.NoError(t, err)
	assert.Len(t, all, 11)
}

func TestMovementGetAndList(t *testing.T) {
	env := setupTestEnv(t)

	movement, err := env.movements.Get(6)
	assert.NoError(t, err)
	assert.Equal(t, "Thruster", movement.Name)

	_, err = env.movements.Get(99999)
	assert.EqualError(t, err, "Movement with id 99999 does not exist.")

	all, err := env.movements.List("")
	assert.NoError(t, err)
	assert.Len(t, all, 18)
}

func TestMovementEquipmentResolution(t *testing.T) {
	env := setupTestEnv(t)

	// Thruster references barbell and dumbbell.
	equipment, err := env.movements.EquipmentFor(6)
	assert.NoError(t, err)
	assert.Len(t, equipment, 2)
	assert.Equal(t, "Barbell", equipment[0].Name)
	assert.Equal(t, "Dumbbell", equipment[1].Name)

	// Bodyweight movements resolve to an empty list.
	burpee, err := env.movements.Get(16)
	assert.NoError(t, err)
	assert.Equal(t, "Burpee", burpee.Name)
	equipment, err = env.movements.EquipmentFor(burpee.ID)
	assert.NoError(t, err)
	assert.Empty(t, equipment)
}
