package repository

import (
	"database/sql"
	"fmt"

	"whiteboard/internal/models"
	"whiteboard/internal/shared"
)

// GetTag retrieves a tag by id.
func (r *Repository) GetTag(id int64) (*models.Tag, error) {
	row := r.DB.QueryRow(
		"SELECT id, userId, tag FROM table_tags WHERE id = ?", id)

	var t models.Tag
	if err := row.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("Tag", id)
		}
		return nil, err
	}
	return &t, nil
}

// TagExists checks for a tag row without materializing it.
func (r *Repository) TagExists(id int64) (bool, error) {
	var found int64
	err := r.DB.QueryRow(
		"SELECT id FROM table_tags WHERE id = ?", id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateTag inserts a tag row and returns the generated id.
func (r *Repository) CreateTag(t *models.Tag) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO table_tags (userId, tag) VALUES (?, ?)",
		t.UserID, t.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tag: %w", err)
	}
	return result.LastInsertId()
}

// UpdateTag renames an existing tag, scoped to its owner.
func (r *Repository) UpdateTag(t *models.Tag) error {
	_, err := r.DB.Exec(
		"UPDATE table_tags SET tag = ? WHERE id = ? AND userId = ?",
		t.Name, t.ID, t.UserID)
	return err
}

// DeleteTag removes a tag and its workout links in one transaction.
// The tag row goes first, scoped to its owner, so a non-owner's call
// fails before any link is touched.
func (r *Repository) DeleteTag(id, userID int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"DELETE FROM table_tags WHERE id = ? AND userId = ?", id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.NewNotFound("Tag", id)
	}

	if _, err := tx.Exec(
		"DELETE FROM table_workout_tags WHERE tagId = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// ListTags returns all tags visible to ownerID, ordered by name.
func (r *Repository) ListTags(ownerID int64, direction string) ([]models.Tag, error) {
	order, err := orderClause("tag", direction, map[string]bool{"tag": true})
	if err != nil {
		return nil, err
	}

	query, args, err := r.Builder.
		Select("id", "userId", "tag").
		From("table_tags").
		Where(visibleTo(ownerID)).
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

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// LinkWorkoutTag attaches a tag to a workout. Linking twice is a no-op.
func (r *Repository) LinkWorkoutTag(workoutID, tagID int64) error {
	_, err := r.DB.Exec(
		"INSERT OR IGNORE INTO table_workout_tags (workoutId, tagId) VALUES (?, ?)",
		workoutID, tagID)
	return err
}

// UnlinkWorkoutTag detaches a tag from a workout.
func (r *Repository) UnlinkWorkoutTag(workoutID, tagID int64) error {
	_, err := r.DB.Exec(
		"DELETE FROM table_workout_tags WHERE workoutId = ? AND tagId = ?",
		workoutID, tagID)
	return err
}

// TagsForWorkout returns the tags linked to a workout.
func (r *Repository) TagsForWorkout(workoutID int64) ([]models.Tag, error) {
	rows, err := r.DB.Query(
		"SELECT t.id, t.userId, t.tag FROM table_tags t"+
			" INNER JOIN table_workout_tags wt ON wt.tagId = t.id"+
			" WHERE wt.workoutId = ? ORDER BY t.tag ASC",
		workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
