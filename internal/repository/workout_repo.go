package repository

import (
	"database/sql"
	"fmt"

	"whiteboard/internal/logging"
	"whiteboard/internal/models"
	"whiteboard/internal/shared"
)

var workoutOrderColumns = map[string]bool{
	"id":       true,
	"name":     true,
	"datetime": true,
}

// GetWorkout retrieves a workout by id. The lookup is unscoped; owner
// visibility applies to listings, not to direct gets, matching the
// delegation contract used by Score's foreign-key validation.
func (r *Repository) GetWorkout(id int64) (*models.Workout, error) {
	row := r.DB.QueryRow(
		"SELECT id, userId, name, description, datetime"+
			" FROM table_workout WHERE id = ?", id)

	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.Datetime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("Workout", id)
		}
		return nil, err
	}
	return &w, nil
}

// WorkoutExists checks for a workout row without materializing it.
func (r *Repository) WorkoutExists(id int64) (bool, error) {
	var found int64
	err := r.DB.QueryRow(
		"SELECT id FROM table_workout WHERE id = ?", id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateWorkout inserts a workout row and returns the generated id.
func (r *Repository) CreateWorkout(w *models.Workout) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO table_workout (userId, name, description, datetime)"+
			" VALUES (?, ?, ?, ?)",
		w.UserID, w.Name, w.Description, w.Datetime)
	if err != nil {
		return 0, fmt.Errorf("failed to insert workout: %w", err)
	}
	return result.LastInsertId()
}

// UpdateWorkout overwrites an existing workout row, scoped to its owner.
func (r *Repository) UpdateWorkout(w *models.Workout) error {
	_, err := r.DB.Exec(
		"UPDATE table_workout SET name = ?, description = ?, datetime = ?"+
			" WHERE id = ? AND userId = ?",
		w.Name, w.Description, w.Datetime, w.ID, w.UserID)
	return err
}

// DeleteWorkout removes a workout together with its scores and tag
// links in one transaction. The workout row goes first, scoped to its
// owner; when no row matches, the cascade never runs and the caller
// cannot tell a foreign workout from an absent one.
func (r *Repository) DeleteWorkout(id, userID int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"DELETE FROM table_workout WHERE id = ? AND userId = ?", id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.NewNotFound("Workout", id)
	}

	if _, err := tx.Exec(
		"DELETE FROM table_workout_score WHERE workoutId = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"DELETE FROM table_workout_tags WHERE workoutId = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// ListWorkouts returns all workouts visible to ownerID, ordered by a
// whitelisted column.
func (r *Repository) ListWorkouts(ownerID int64, column, direction string) ([]models.Workout, error) {
	order, err := orderClause(column, direction, workoutOrderColumns)
	if err != nil {
		return nil, err
	}

	query, args, err := r.Builder.
		Select("id", "userId", "name", "description", "datetime").
		From("table_workout").
		Where(visibleTo(ownerID)).
		OrderBy(order).
		ToSql()
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("ListWorkouts: %s %v", query, args)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.Datetime); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
