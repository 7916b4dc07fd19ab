package repository

import (
	"database/sql"
	"fmt"

	"whiteboard/internal/models"
	"whiteboard/internal/shared"
)

// GetEquipment retrieves one piece of equipment by id.
func (r *Repository) GetEquipment(id int64) (*models.Equipment, error) {
	row := r.DB.QueryRow(
		"SELECT id, equipment FROM table_equipment WHERE id = ?", id)

	var e models.Equipment
	if err := row.Scan(&e.ID, &e.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("Equipment", id)
		}
		return nil, err
	}
	return &e, nil
}

// ListEquipment returns all equipment ordered by name.
func (r *Repository) ListEquipment(direction string) ([]models.Equipment, error) {
	order, err := orderClause("equipment", direction, map[string]bool{"equipment": true})
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(
		fmt.Sprintf("SELECT id, equipment FROM table_equipment ORDER BY %s", order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipment := make([]models.Equipment, 0)
	for rows.Next() {
		var e models.Equipment
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		equipment = append(equipment, e)
	}
	return equipment, rows.Err()
}

// InsertEquipment adds a reference row. Used by migrations' seed data
// counterpart, the seed command; entity operations never write here.
func (r *Repository) InsertEquipment(name string) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO table_equipment (equipment) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert equipment: %w", err)
	}
	return result.LastInsertId()
}
