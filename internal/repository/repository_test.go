package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"whiteboard/internal/config"
	"whiteboard/internal/models"
	"whiteboard/internal/shared"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	repo, err := NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}
	if err := repo.MigrateUp(); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}

	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestNewRepository(t *testing.T) {
	repo := setupTestDB(t)

	tables := []string{
		"table_users", "table_workout", "table_workout_score",
		"table_tags", "table_workout_tags", "table_equipment", "table_movements",
	}
	for _, table := range tables {
		var name string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestUserCRUD(t *testing.T) {
	repo := setupTestDB(t)

	id, err := repo.CreateUser("annie", "hash-a")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	byID, err := repo.GetUserByID(id)
	assert.NoError(t, err)
	assert.Equal(t, "annie", byID.Name)
	assert.Equal(t, "hash-a", byID.PasswordHash)

	byName, err := repo.GetUserByName("annie")
	assert.NoError(t, err)
	assert.Equal(t, id, byName.ID)

	err = repo.UpdateUser(&models.User{ID: id, Name: "annie", PasswordHash: "hash-b"})
	assert.NoError(t, err)
	updated, err := repo.GetUserByID(id)
	assert.NoError(t, err)
	assert.Equal(t, "hash-b", updated.PasswordHash)

	err = repo.DeleteUser(updated)
	assert.NoError(t, err)
	_, err = repo.GetUserByID(id)
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "User with id 1 does not exist.")
}

func TestGetUserNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetUserByID(99999)
	assert.True(t, shared.IsNotFound(err))

	_, err = repo.GetUserByName("nobody")
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "User with id nobody does not exist.")
}

func TestWorkoutVisibility(t *testing.T) {
	repo := setupTestDB(t)

	// User 1 is the shared owner, user 2 a regular account.
	shared1, err := repo.CreateUser("shared", "hash")
	assert.NoError(t, err)
	assert.Equal(t, models.SharedOwnerID, shared1)
	user2, err := repo.CreateUser("annie", "hash")
	assert.NoError(t, err)
	user3, err := repo.CreateUser("bob", "hash")
	assert.NoError(t, err)

	for owner, name := range map[int64]string{shared1: "Fran", user2: "Annie WOD", user3: "Bob WOD"} {
		_, err := repo.CreateWorkout(&models.Workout{UserID: owner, Name: name, Datetime: 1000})
		assert.NoError(t, err)
	}

	visible, err := repo.ListWorkouts(user2, "name", "asc")
	assert.NoError(t, err)
	assert.Len(t, visible, 2)
	names := []string{visible[0].Name, visible[1].Name}
	assert.Equal(t, []string{"Annie WOD", "Fran"}, names)
}

func TestWorkoutDeleteCascades(t *testing.T) {
	repo := setupTestDB(t)

	userID, err := repo.CreateUser("annie", "hash")
	assert.NoError(t, err)
	workoutID, err := repo.CreateWorkout(&models.Workout{UserID: userID, Name: "Fran", Datetime: 1000})
	assert.NoError(t, err)

	scoreID, err := repo.CreateScore(&models.Score{
		UserID: userID, WorkoutID: workoutID, Value: "3:45", Rx: true, Datetime: 1000,
	})
	assert.NoError(t, err)

	tagID, err := repo.CreateTag(&models.Tag{UserID: userID, Name: "benchmark"})
	assert.NoError(t, err)
	assert.NoError(t, repo.LinkWorkoutTag(workoutID, tagID))

	assert.NoError(t, repo.DeleteWorkout(workoutID, userID))

	_, err = repo.GetScore(scoreID, userID)
	assert.True(t, shared.IsNotFound(err))

	var links int
	err = repo.DB.QueryRow("SELECT COUNT(*) FROM table_workout_tags WHERE workoutId = ?", workoutID).Scan(&links)
	assert.NoError(t, err)
	assert.Equal(t, 0, links)

	// The tag itself survives; only the link is removed.
	_, err = repo.GetTag(tagID)
	assert.NoError(t, err)
}

func TestTagDeleteRemovesLinks(t *testing.T) {
	repo := setupTestDB(t)

	userID, err := repo.CreateUser("annie", "hash")
	assert.NoError(t, err)
	workoutID, err := repo.CreateWorkout(&models.Workout{UserID: userID, Name: "Fran", Datetime: 1000})
	assert.NoError(t, err)
	tagID, err := repo.CreateTag(&models.Tag{UserID: userID, Name: "benchmark"})
	assert.NoError(t, err)
	assert.NoError(t, repo.LinkWorkoutTag(workoutID, tagID))

	assert.NoError(t, repo.DeleteTag(tagID, userID))

	tags, err := repo.TagsForWorkout(workoutID)
	assert.NoError(t, err)
	assert.Empty(t, tags)
}

func TestOrderClauseWhitelist(t *testing.T) {
	repo := setupTestDB(t)

	userID, err := repo.CreateUser("annie", "hash")
	assert.NoError(t, err)

	_, err = repo.ListWorkouts(userID, "name; DROP TABLE table_users", "asc")
	assert.True(t, shared.IsInvalidAttribute(err))
	assert.EqualError(t, err, "Invalid order_by.")

	_, err = repo.ListWorkouts(userID, "name", "sideways")
	assert.True(t, shared.IsInvalidAttribute(err))
	assert.EqualError(t, err, "Invalid direction.")
}

func TestSeededReferenceData(t *testing.T) {
	repo := setupTestDB(t)

	equipment, err := repo.ListEquipment("asc")
	assert.NoError(t, err)
	assert.Len(t, equipment, 11)

	barbell, err := repo.GetEquipment(1)
	assert.NoError(t, err)
	assert.Equal(t, "Barbell", barbell.Name)

	movements, err := repo.ListMovements("asc")
	assert.NoError(t, err)
	assert.Len(t, movements, 18)

	thruster, err := repo.GetMovement(6)
	assert.NoError(t, err)
	assert.Equal(t, "Thruster", thruster.Name)
	assert.Equal(t, []int64{1, 2}, thruster.EquipmentIDList())

	_, err = repo.GetEquipment(99999)
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "Equipment with id 99999 does not exist.")
}
