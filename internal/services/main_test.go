package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"whiteboard/internal/config"
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

// stubVerifier accepts a password when the stored hash is the password
// with a "hashed:" prefix. Real hashing lives in the auth package and
// is tested there.
type stubVerifier struct{}

func (stubVerifier) Verify(passwordHash, password string) error {
	if passwordHash == "hashed:"+password {
		return nil
	}
	return shared.NewInvalidPassword()
}

type testEnv struct {
	repo      *repository.Repository
	users     *userService
	workouts  *workoutService
	scores    *scoreService
	tags      *tagService
	equipment *equipmentService
	movements *movementService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	if err := repo.MigrateUp(); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	users := NewUserService(repo, stubVerifier{})
	workouts := NewWorkoutService(repo, users)
	scores := NewScoreService(repo, users, workouts)
	tags := NewTagService(repo, users, workouts)
	equipment := NewEquipmentService(repo)
	movements := NewMovementService(repo, equipment)

	return &testEnv{
		repo:      repo,
		users:     users,
		workouts:  workouts,
		scores:    scores,
		tags:      tags,
		equipment: equipment,
		movements: movements,
	}
}

// mustUser creates a user through the service and returns its id.
func (e *testEnv) mustUser(t *testing.T, name string) int64 {
	t.Helper()
	id, err := e.users.Add(userParams(name, "pw"))
	if err != nil {
		t.Fatalf("Failed to create user %q: %v", name, err)
	}
	return id
}

// mustWorkout creates a workout for the given owner and returns its id.
func (e *testEnv) mustWorkout(t *testing.T, ownerID int64, name string) int64 {
	t.Helper()
	id, err := e.workouts.Add(workoutParams(ownerID, name, "desc"))
	if err != nil {
		t.Fatalf("Failed to create workout %q: %v", name, err)
	}
	return id
}

func userParams(name, password string) models.UserParams {
	return models.UserParams{Name: name, PasswordHash: "hashed:" + password}
}

func workoutParams(ownerID int64, name, description string) models.WorkoutParams {
	return models.WorkoutParams{UserID: ownerID, Name: name, Description: description}
}

func scoreParams(ownerID, workoutID int64, value string) models.ScoreParams {
	return models.ScoreParams{
		UserID:    ownerID,
		WorkoutID: workoutID,
		Value:     value,
		Rx:        true,
		Note:      fmt.Sprintf("score %s", value),
	}
}
