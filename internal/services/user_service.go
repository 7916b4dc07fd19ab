package services

import (
	"whiteboard/internal/logging"
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/shared"
)

var _ UserService = (*userService)(nil)

// userService is the single source of truth for what makes a user
// valid; every other entity validates its owner reference by calling
// Get here instead of querying table_users itself.
type userService struct {
	repo     *repository.Repository
	verifier CredentialVerifier
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository, verifier CredentialVerifier) *userService {
	return &userService{repo: repo, verifier: verifier}
}

// Get retrieves a user by id.
func (s *userService) Get(id any) (*models.User, error) {
	userID, err := shared.Identifier("user_id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserByID(userID)
}

// GetByName retrieves a user by their unique name.
func (s *userService) GetByName(name any) (*models.User, error) {
	userName, err := shared.Name("name", name)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUserByName(userName)
}

// Add creates a user and returns the generated id. The password hash is
// opaque here; hashing happens in the auth package before this call.
func (s *userService) Add(p models.UserParams) (int64, error) {
	name, err := shared.Name("name", p.Name)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return 0, shared.NewInvalidAttribute("name")
	}
	hash, err := shared.Text("password_hash", p.PasswordHash)
	if err != nil {
		return 0, err
	}

	return s.repo.CreateUser(name, hash)
}

// Update overwrites name and password hash for an existing user.
// Field shapes are checked first, existence of the id last.
func (s *userService) Update(id any, p models.UserParams) (bool, error) {
	name, err := shared.Name("name", p.Name)
	if err != nil {
		return false, err
	}
	if name == "" {
		return false, shared.NewInvalidAttribute("name")
	}
	hash, err := shared.Text("password_hash", p.PasswordHash)
	if err != nil {
		return false, err
	}
	userID, err := shared.Identifier("user_id", id)
	if err != nil {
		return false, err
	}

	if _, err := s.repo.GetUserByID(userID); err != nil {
		return false, err
	}

	err = s.repo.UpdateUser(&models.User{ID: userID, Name: name, PasswordHash: hash})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a user by id.
func (s *userService) Remove(id any) (bool, error) {
	userID, err := shared.Identifier("user_id", id)
	if err != nil {
		return false, err
	}

	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return false, err
	}

	if err := s.repo.DeleteUser(user); err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate confirms a user's identity: lookup by name, then
// credential comparison through the external verifier.
func (s *userService) Authenticate(name, password string) (*models.User, error) {
	user, err := s.GetByName(name)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.Verify(user.PasswordHash, password); err != nil {
		logging.Log.Debugf("Authenticate: credential check failed for %q", name)
		return nil, err
	}
	return user, nil
}
