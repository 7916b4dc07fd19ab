package repository

import (
	"database/sql"
	"fmt"

	"whiteboard/internal/models"
	"whiteboard/internal/shared"

	"github.com/Masterminds/squirrel"
)

var scoreOrderColumns = map[string]bool{
	"id":       true,
	"score":    true,
	"datetime": true,
}

// GetScore retrieves a score by id, scoped to its owner. A score that
// exists but belongs to someone else is reported as not found.
func (r *Repository) GetScore(id, userID int64) (*models.Score, error) {
	row := r.DB.QueryRow(
		"SELECT id, userId, workoutId, score, rx, datetime, note"+
			" FROM table_workout_score WHERE id = ? AND userId = ?",
		id, userID)

	var s models.Score
	err := row.Scan(&s.ID, &s.UserID, &s.WorkoutID, &s.Value, &s.Rx, &s.Datetime, &s.Note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("Score", id)
		}
		return nil, err
	}
	return &s, nil
}

// ScoreExists checks for a score row regardless of owner.
func (r *Repository) ScoreExists(id int64) (bool, error) {
	var found int64
	err := r.DB.QueryRow(
		"SELECT id FROM table_workout_score WHERE id = ?", id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateScore inserts a score row and returns the generated id.
func (r *Repository) CreateScore(s *models.Score) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO table_workout_score (userId, workoutId, score, rx, datetime, note)"+
			" VALUES (?, ?, ?, ?, ?, ?)",
		s.UserID, s.WorkoutID, s.Value, s.Rx, s.Datetime, s.Note)
	if err != nil {
		return 0, fmt.Errorf("failed to insert score: %w", err)
	}
	return result.LastInsertId()
}

// UpdateScore overwrites an existing score row, scoped to its owner.
func (r *Repository) UpdateScore(s *models.Score) error {
	_, err := r.DB.Exec(
		"UPDATE table_workout_score"+
			" SET workoutId = ?, score = ?, rx = ?, datetime = ?, note = ?"+
			" WHERE id = ? AND userId = ?",
		s.WorkoutID, s.Value, s.Rx, s.Datetime, s.Note, s.ID, s.UserID)
	return err
}

// DeleteScore removes a score row, scoped to owner and workout.
func (r *Repository) DeleteScore(id, userID, workoutID int64) error {
	_, err := r.DB.Exec(
		"DELETE FROM table_workout_score"+
			" WHERE id = ? AND userId = ? AND workoutId = ?",
		id, userID, workoutID)
	return err
}

// ListScoresByWorkout returns all scores for a workout that are visible
// to ownerID, ordered by a whitelisted column.
func (r *Repository) ListScoresByWorkout(workoutID, ownerID int64, column, direction string) ([]models.Score, error) {
	order, err := orderClause(column, direction, scoreOrderColumns)
	if err != nil {
		return nil, err
	}

	query, args, err := r.Builder.
		Select("id", "userId", "workoutId", "score", "rx", "datetime", "note").
		From("table_workout_score").
		Where(squirrel.And{squirrel.Eq{"workoutId": workoutID}, visibleTo(ownerID)}).
		OrderBy(order).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]models.Score, 0)
	for rows.Next() {
		var s models.Score
		if err := rows.Scan(&s.ID, &s.UserID, &s.WorkoutID, &s.Value, &s.Rx, &s.Datetime, &s.Note); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
