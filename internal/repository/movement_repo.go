package repository

import (
	"database/sql"
	"fmt"

	"whiteboard/internal/models"
	"whiteboard/internal/shared"
)

// GetMovement retrieves one movement by id.
func (r *Repository) GetMovement(id int64) (*models.Movement, error) {
	row := r.DB.QueryRow(
		"SELECT id, movement, equipmentIds FROM table_movements WHERE id = ?", id)

	var m models.Movement
	if err := row.Scan(&m.ID, &m.Name, &m.EquipmentIDs); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("Movement", id)
		}
		return nil, err
	}
	return &m, nil
}

// ListMovements returns all movements ordered by name.
func (r *Repository) ListMovements(direction string) ([]models.Movement, error) {
	order, err := orderClause("movement", direction, map[string]bool{"movement": true})
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(
		fmt.Sprintf("SELECT id, movement, equipmentIds FROM table_movements ORDER BY %s", order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]models.Movement, 0)
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.Name, &m.EquipmentIDs); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// InsertMovement adds a reference row for the seed command.
func (r *Repository) InsertMovement(name, equipmentIDs string) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO table_movements (movement, equipmentIds) VALUES (?, ?)",
		name, equipmentIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert movement: %w", err)
	}
	return result.LastInsertId()
}
