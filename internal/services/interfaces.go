// Package services implements the entity operations: ordered field
// validation, foreign-key validation by delegation, and persistence
// through the repository. Operations accept raw, untyped field values;
// every failure is one of the two taxonomy errors from internal/shared
// (plus InvalidPasswordError at the authentication boundary).
package services

import "whiteboard/internal/models"

// UserService manages user accounts.
type UserService interface {
	Get(id any) (*models.User, error)
	GetByName(name any) (*models.User, error)
	Add(p models.UserParams) (int64, error)
	Update(id any, p models.UserParams) (bool, error)
	Remove(id any) (bool, error)
	Authenticate(name, password string) (*models.User, error)
}

// WorkoutService manages workouts.
type WorkoutService interface {
	Get(id any) (*models.Workout, error)
	Add(p models.WorkoutParams) (int64, error)
	Update(id any, p models.WorkoutParams) (bool, error)
	Remove(id, userID any) (bool, error)
	List(userID any, orderBy, direction string) ([]models.Workout, error)
	Tags(workoutID any) ([]models.Tag, error)
}

// ScoreService manages workout scores.
type ScoreService interface {
	Get(id, userID any) (*models.Score, error)
	Add(p models.ScoreParams) (int64, error)
	Update(id any, p models.ScoreParams) (bool, error)
	Remove(id, userID, workoutID any) (bool, error)
	ListByWorkout(workoutID, userID any, orderBy, direction string) ([]models.Score, error)
}

// TagService manages tags and their workout links.
type TagService interface {
	Get(id any) (*models.Tag, error)
	Add(p models.TagParams) (int64, error)
	Update(id any, p models.TagParams) (bool, error)
	Remove(id, userID any) (bool, error)
	List(userID any, direction string) ([]models.Tag, error)
	Link(workoutID, tagID any) (bool, error)
	Unlink(workoutID, tagID any) (bool, error)
}

// EquipmentService reads seeded equipment reference data.
type EquipmentService interface {
	Get(id any) (*models.Equipment, error)
	List(direction string) ([]models.Equipment, error)
}

// MovementService reads seeded movement reference data.
type MovementService interface {
	Get(id any) (*models.Movement, error)
	List(direction string) ([]models.Movement, error)
	EquipmentFor(id any) ([]models.Equipment, error)
}

// CredentialVerifier compares a stored password hash against a caller
// supplied password. The hashing scheme is external to the model layer.
type CredentialVerifier interface {
	Verify(passwordHash, password string) error
}
