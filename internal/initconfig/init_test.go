package initconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"whiteboard/internal/config"
	"whiteboard/internal/repository"
	"whiteboard/internal/services"
	"whiteboard/internal/services/auth"
)

const testSeed = `
[[user]]
name = "shared"
password = "sharedpw"

[[user]]
name = "annie"
password = "anniepw"

[[workout]]
name = "Fran"
description = "21-15-9 thrusters and pull-ups"

[[workout]]
owner = "annie"
name = "Annie WOD"
description = ""

[[equipment]]
name = "Sandbag"

[[movement]]
name = "Sandbag Carry"
equipment_ids = "12"
`

func TestSeedFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	seedPath := filepath.Join(tmpDir, "seed.toml")
	assert.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0644))

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(tmpDir, "test.db")},
	}
	repo, err := repository.NewRepository(cfg)
	assert.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	assert.NoError(t, repo.MigrateUp())

	userSvc := services.NewUserService(repo, auth.NewCredentialVerifier())
	workoutSvc := services.NewWorkoutService(repo, userSvc)

	Run(userSvc, workoutSvc, repo, seedPath)

	// Users exist and can authenticate with the seeded password.
	shared, err := userSvc.GetByName("shared")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), shared.ID)
	_, err = userSvc.Authenticate("annie", "anniepw")
	assert.NoError(t, err)

	// The unowned workout went to the shared user; the owned one to annie.
	annie, err := userSvc.GetByName("annie")
	assert.NoError(t, err)
	visible, err := workoutSvc.List(annie.ID, "", "")
	assert.NoError(t, err)
	assert.Len(t, visible, 2)

	// Catalog entries were appended after the migrated seed data.
	equipment, err := repo.ListEquipment("")
	assert.NoError(t, err)
	assert.Len(t, equipment, 12)
	movements, err := repo.ListMovements("")
	assert.NoError(t, err)
	assert.Len(t, movements, 19)

	// Passwords were cleared from the file on disk.
	data, err := os.ReadFile(seedPath)
	assert.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "anniepw"))

	// Running again changes nothing.
	Run(userSvc, workoutSvc, repo, seedPath)
	visible, err = workoutSvc.List(annie.ID, "", "")
	assert.NoError(t, err)
	assert.Len(t, visible, 2)
	equipment, err = repo.ListEquipment("")
	assert.NoError(t, err)
	assert.Len(t, equipment, 12)
}
