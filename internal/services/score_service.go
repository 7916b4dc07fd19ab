package services

import (
	"time"

	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

var _ ScoreService = (*scoreService)(nil)

type scoreService struct {
	repo     *repository.Repository
	users    UserService
	workouts WorkoutService
	now      func() int64
}

// NewScoreService creates a new ScoreService.
func NewScoreService(repo *repository.Repository, users UserService, workouts WorkoutService) *scoreService {
	return &scoreService{
		repo:     repo,
		users:    users,
		workouts: workouts,
		now:      func() int64 { return time.Now().Unix() },
	}
}

// Get retrieves a score by id, scoped to its owner. The owner reference
// is validated by delegation before the lookup.
func (s *scoreService) Get(id, userID any) (*models.Score, error) {
	scoreID, err := shared.Identifier("score_id", id)
	if err != nil {
		return nil, err
	}
	ownerID, err := shared.Identifier("user_id", userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ownerID); err != nil {
		return nil, err
	}

	return s.repo.GetScore(scoreID, ownerID)
}

// Add creates a score and returns the generated id. All scalar fields
// are validated before either foreign key, so a malformed value is
// reported even when the referenced workout is absent. The workout
// reference is checked before the user reference, both by delegation.
func (s *scoreService) Add(p models.ScoreParams) (int64, error) {
	userID, err := shared.Identifier("user_id", p.UserID)
	if err != nil {
		return 0, err
	}
	workoutID, err := shared.Identifier("workout_id", p.WorkoutID)
	if err != nil {
		return 0, err
	}
	value, err := shared.ScoreValue("value", p.Value)
	if err != nil {
		return 0, err
	}
	rx, err := shared.Bool("rx", p.Rx)
	if err != nil {
		return 0, err
	}
	note, err := shared.Text("note", p.Note)
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

	if _, err := s.workouts.Get(workoutID); err != nil {
		return 0, err
	}
	if _, err := s.users.Get(userID); err != nil {
		return 0, err
	}

	return s.repo.CreateScore(&models.Score{
		UserID:    userID,
		WorkoutID: workoutID,
		Value:     value,
		Rx:        rx,
		Note:      note,
		Datetime:  datetime,
	})
}

// Update overwrites a score. Shape checks come first, then the foreign
// keys by delegation, and the score's own existence last. The stored
// datetime is always refreshed to now.
func (s *scoreService) Update(id any, p models.ScoreParams) (bool, error) {
	scoreID, err := shared.Identifier("score_id", id)
	if err != nil {
		return false, err
	}
	userID, err := shared.Identifier("user_id", p.UserID)
	if err != nil {
		return false, err
	}
	workoutID, err := shared.Identifier("workout_id", p.WorkoutID)
	if err != nil {
		return false, err
	}
	value, err := shared.ScoreValue("value", p.Value)
	if err != nil {
		return false, err
	}
	rx, err := shared.Bool("rx", p.Rx)
	if err != nil {
		return false, err
	}
	note, err := shared.Text("note", p.Note)
	if err != nil {
		return false, err
	}
	if p.Datetime != nil {
		if _, err := shared.UnixTimestamp("datetime", p.Datetime); err != nil {
			return false, err
		}
	}

	if _, err := s.workouts.Get(workoutID); err != nil {
		return false, err
	}
	if _, err := s.users.Get(userID); err != nil {
		return false, err
	}

	exists, err := s.repo.ScoreExists(scoreID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NewNotFound("Score", scoreID)
	}

	err = s.repo.UpdateScore(&models.Score{
		ID:        scoreID,
		UserID:    userID,
		WorkoutID: workoutID,
		Value:     value,
		Rx:        rx,
		Note:      note,
		Datetime:  s.now(),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a score, scoped to owner and workout.
func (s *scoreService) Remove(id, userID, workoutID any) (bool, error) {
	scoreID, err := shared.Identifier("score_id", id)
	if err != nil {
		return false, err
	}
	ownerID, err := shared.Identifier("user_id", userID)
	if err != nil {
		return false, err
	}
	wID, err := shared.Identifier("workout_id", workoutID)
	if err != nil {
		return false, err
	}

	if _, err := s.workouts.Get(wID); err != nil {
		return false, err
	}
	if _, err := s.users.Get(ownerID); err != nil {
		return false, err
	}

	exists, err := s.repo.ScoreExists(scoreID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NewNotFound("Score", scoreID)
	}

	if err := s.repo.DeleteScore(scoreID, ownerID, wID); err != nil {
		return false, err
	}
	return true, nil
}

// ListByWorkout returns a workout's scores visible to userID, by
// default in chronological order.
func (s *scoreService) ListByWorkout(workoutID, userID any, orderBy, direction string) ([]models.Score, error) {
	ownerID, err := shared.Identifier("user_id", userID)
	if err != nil {
		return nil, err
	}
	wID, err := shared.Identifier("workout_id", workoutID)
	if err != nil {
		return nil, err
	}
	if _, err := s.workouts.Get(wID); err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ownerID); err != nil {
		return nil, err
	}

	if orderBy == "" {
		orderBy = "datetime"
	}
	return s.repo.ListScoresByWorkout(wID, ownerID, orderBy, direction)
}
