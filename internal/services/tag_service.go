package services

import (
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

var _ TagService = (*tagService)(nil)

type tagService struct {
	repo     *repository.Repository
	users    UserService
	workouts WorkoutService
}

// NewTagService creates a new TagService.
func NewTagService(repo *repository.Repository, users UserService, workouts WorkoutService) *tagService {
	return &tagService{repo: repo, users: users, workouts: workouts}
}

// Get retrieves a tag by id.
func (s *tagService) Get(id any) (*models.Tag, error) {
	tagID, err := shared.Identifier("tag_id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTag(tagID)
}

// Add creates a tag and returns the generated id.
func (s *tagService) Add(p models.TagParams) (int64, error) {
	userID, err := shared.Identifier("user_id", p.UserID)
	if err != nil {
		return 0, err
	}
	name, err := shared.Name("name", p.Name)
	if err != nil {
		return 0, err
	}
	if _, err := s.users.Get(userID); err != nil {
		return 0, err
	}

	return s.repo.CreateTag(&models.Tag{UserID: userID, Name: name})
}

// Update renames an existing tag.
func (s *tagService) Update(id any, p models.TagParams) (bool, error) {
	name, err := shared.Name("name", p.Name)
	if err != nil {
		return false, err
	}
	tagID, err := shared.Identifier("tag_id", id)
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

	exists, err := s.repo.TagExists(tagID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NewNotFound("Tag", tagID)
	}

	err = s.repo.UpdateTag(&models.Tag{ID: tagID, UserID: userID, Name: name})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a tag and its workout links.
func (s *tagService) Remove(id, userID any) (bool, error) {
	tagID, err := shared.Identifier("tag_id", id)
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

	exists, err := s.repo.TagExists(tagID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, shared.NewNotFound("Tag", tagID)
	}

	if err := s.repo.DeleteTag(tagID, ownerID); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the tags visible to userID, ordered by name.
func (s *tagService) List(userID any, direction string) ([]models.Tag, error) {
	ownerID, err := shared.Identifier("user_id", userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListTags(ownerID, direction)
}

// Link attaches a tag to a workout. Both references are validated by
// delegation; linking an already linked pair is a no-op.
func (s *tagService) Link(workoutID, tagID any) (bool, error) {
	wID, err := shared.Identifier("workout_id", workoutID)
	if err != nil {
		return false, err
	}
	tID, err := shared.Identifier("tag_id", tagID)
	if err != nil {
		return false, err
	}
	if _, err := s.workouts.Get(wID); err != nil {
		return false, err
	}
	if _, err := s.Get(tID); err != nil {
		return false, err
	}

	if err := s.repo.LinkWorkoutTag(wID, tID); err != nil {
		return false, err
	}
	return true, nil
}

// Unlink detaches a tag from a workout.
func (s *tagService) Unlink(workoutID, tagID any) (bool, error) {
	wID, err := shared.Identifier("workout_id", workoutID)
	if err != nil {
		return false, err
	}
	tID, err := shared.Identifier("tag_id", tagID)
	if err != nil {
		return false, err
	}
	if _, err := s.workouts.Get(wID); err != nil {
		return false, err
	}
	if _, err := s.Get(tID); err != nil {
		return false, err
	}

	if err := s.repo.UnlinkWorkoutTag(wID, tID); err != nil {
		return false, err
	}
	return true, nil
}
