package services

import (
	"time"

	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

var _ WorkoutService = (*workoutService)(nil)

type workoutService struct {
	repo  *repository.Repository
	users UserService
	now   func() int64
}

// NewWorkoutService creates a new WorkoutService. The clock is read per
// call so timestamp defaults are never frozen at construction time.
func NewWorkoutService(repo *repository.Repository, users UserService) *workoutService {
	return &workoutService{
		repo:  repo,
		users: users,
		now:   func() int64 { return time.Now().Unix() },
	}
}

// Get retrieves a workout by id.
func (s *workoutService) Get(id any) (*models.Workout, error) {
	workoutID, err := shared.Identifier("workout_id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetWorkout(workoutID)
}

// Add creates a workout and returns the generated id. Scalar fields are
// validated first, the owner reference last, by delegation to the user
// service. A missing datetime defaults to now; a supplied one is kept.
func (s *workoutService) Add(p models.WorkoutParams) (int64, error) {
	name, err := shared.Name("name", p.Name)
	if err != nil {
		return 0, err
	}
	description, err := shared.Text("description", p.Description)
	if err != nil {
		return 0, err
	}
	datetime := s.now()
	if p.Datetime != nil {
		datetime, err = shared.UnixTimestamp("datetime", p.Datetime)
		if err != nil {
			return 0, err
		}
	}
	userID, err := shared.Identifier("user_id", p.UserID)
	if err != nil {
		return 0, err
	}
	if _, err := s.users.Get(userID); err != nil {
		return 0, err
	}

	return s.repo.CreateWorkout(&models.Workout{
		UserID:      userID,
		Name:        name,
		Description: description,
		Datetime:    datetime,
	})
}

// Update overwrites a workout. The stored datetime is always refreshed
// to now, even when the caller supplies an explicit value; only Add
// preserves caller timestamps.
func (s *workoutService) Update(id any, p models.WorkoutParams) (bool, error) {
	name, err := shared.Name("name", p.Name)
	if err != nil {
		return false, err
	}
	description, err := shared.Text("description", p.Description)
	if err != nil {
		return false, err
	}
	if p.Datetime != nil {
		if _, err := shared.UnixTimestamp("datetime", p.Datetime); err != nil {
			return false, err
		}
	}
	workoutID, err := shared.Identifier("workout_id", id)
	if err != nil {
		return false, err
	}
	userID, err := shared.Identifier("user_id", p.UserID)
	if err != nil {
		return false, err
	}
	if _, err := s.users.Get(userID); err != nil {
		return false, err
	}

	exists, err := s.repo.WorkoutExists(workoutID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NewNotFound("Workout", workoutID)
	}

	err = s.repo.UpdateWorkout(&models.Workout{
		ID:          workoutID,
		UserID:      userID,
		Name:        name,
		Description: description,
		Datetime:    s.now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a workout together with its scores and tag links.
func (s *workoutService) Remove(id, userID any) (bool, error) {
	workoutID, err := shared.Identifier("workout_id", id)
	if err != nil {
		return false, err
	}
	ownerID, err := shared.Identifier("user_id", userID)
	if err != nil {
		return false, err
	}
	if _, err := s.users.Get(ownerID); err != nil {
		return false, err
	}

	exists, err := s.repo.WorkoutExists(workoutID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NewNotFound("Workout", workoutID)
	}

	if err := s.repo.DeleteWorkout(workoutID, ownerID); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the workouts visible to userID: their own rows plus the
// shared owner's. Defaults to ordering by name.
func (s *workoutService) List(userID any, orderBy, direction string) ([]models.Workout, error) {
	ownerID, err := shared.Identifier("user_id", userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ownerID); err != nil {
		return nil, err
	}

	if orderBy == "" {
		orderBy = "name"
	}
	return s.repo.ListWorkouts(ownerID, orderBy, direction)
}

// Tags returns the tags linked to a workout.
func (s *workoutService) Tags(workoutID any) ([]models.Tag, error) {
	id, err := shared.Identifier("workout_id", workoutID)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.WorkoutExists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewNotFound("Workout", id)
	}
	return s.repo.TagsForWorkout(id)
}
