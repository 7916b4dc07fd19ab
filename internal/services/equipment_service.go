package services

import (
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

var _ EquipmentService = (*equipmentService)(nil)

type equipmentService struct {
	repo *repository.Repository
}

// NewEquipmentService creates a new EquipmentService.
func NewEquipmentService(repo *repository.Repository) *equipmentService {
	return &equipmentService{repo: repo}
}

func (s *equipmentService) Get(id any) (*models.Equipment, error) {
	equipmentID, err := shared.Identifier("equipment_id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetEquipment(equipmentID)
}

func (s *equipmentService) List(direction string) ([]models.Equipment, error) {
	return s.repo.ListEquipment(direction)
}
