package repository

import (
	"database/sql"
	"fmt"

	"whiteboard/internal/logging"
	"whiteboard/internal/models"
	"whiteboard/internal/shared"

	"github.com/patrickmn/go-cache"
)

// GetUserByID retrieves a user by id, using a short-lived cache.
func (r *Repository) GetUserByID(id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_id_%d", id)
	if cached, found := r.Cache.Get(cacheKey); found {
		return cached.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByID: cache miss for %d, querying db", id)
	row := r.DB.QueryRow(
		"SELECT id, name, password FROM table_users WHERE id = ?", id)

	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("User", id)
		}
		return nil, err
	}

	r.cacheUser(&user)
	return &user, nil
}

// GetUserByName retrieves a user by their unique name.
func (r *Repository) GetUserByName(name string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", name)
	if cached, found := r.Cache.Get(cacheKey); found {
		return cached.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByName: cache miss for %q, querying db", name)
	row := r.DB.QueryRow(
		"SELECT id, name, password FROM table_users WHERE name = ?", name)

	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.NewNotFound("User", name)
		}
		return nil, err
	}

	r.cacheUser(&user)
	return &user, nil
}

// CreateUser inserts a new user row and returns the generated id.
func (r *Repository) CreateUser(name, passwordHash string) (int64, error) {
	result, err := r.DB.Exec(
		"INSERT INTO table_users (name, password) VALUES (?, ?)",
		name, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return result.LastInsertId()
}

// UpdateUser overwrites name and password hash for an existing user.
func (r *Repository) UpdateUser(user *models.User) error {
	_, err := r.DB.Exec(
		"UPDATE table_users SET name = ?, password = ? WHERE id = ?",
		user.Name, user.PasswordHash, user.ID)
	if err != nil {
		return err
	}
	r.invalidateUser(user)
	return nil
}

// DeleteUser removes a user row.
func (r *Repository) DeleteUser(user *models.User) error {
	_, err := r.DB.Exec("DELETE FROM table_users WHERE id = ?", user.ID)
	if err != nil {
		return err
	}
	r.invalidateUser(user)
	return nil
}

func (r *Repository) cacheUser(user *models.User) {
	r.Cache.Set(fmt.Sprintf("user_by_id_%d", user.ID), user, cache.DefaultExpiration)
	r.Cache.Set(fmt.Sprintf("user_by_name_%s", user.Name), user, cache.DefaultExpiration)
}

func (r *Repository) invalidateUser(user *models.User) {
	r.Cache.Delete(fmt.Sprintf("user_by_id_%d", user.ID))
	r.Cache.Delete(fmt.Sprintf("user_by_name_%s", user.Name))
}
