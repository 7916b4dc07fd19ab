package services

import (
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

var _ MovementService = (*movementService)(nil)

type movementService struct {
	repo      *repository.Repository
	equipment EquipmentService
}

// NewMovementService creates a new MovementService.
func NewMovementService(repo *repository.Repository, equipment EquipmentService) *movementService {
	return &movementService{repo: repo, equipment: equipment}
}

func (s *movementService) Get(id any) (*models.Movement, error) {
	movementID, err := shared.Identifier("movement_id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetMovement(movementID)
}

func (s *movementService) List(direction string) ([]models.Movement, error) {
	return s.repo.ListMovements(direction)
}

// EquipmentFor resolves the equipment referenced by a movement. A stale
// equipment reference surfaces as a NotFoundError rather than being
// silently dropped.
func (s *movementService) EquipmentFor(id any) ([]models.Equipment, error) {
	movement, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	ids := movement.EquipmentIDList()
	equipment := make([]models.Equipment, 0, len(ids))
	for _, equipmentID := range ids {
		e, err := s.equipment.Get(equipmentID)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, *e)
	}
	return equipment, nil
}
