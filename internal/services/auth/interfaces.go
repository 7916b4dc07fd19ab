// Package auth implements the authentication boundary: password
// verification, JWT issuing and validation, and the HTTP middleware
// that resolves tokens to users.
package auth

import "whiteboard/internal/models"

// TokenService defines the contract for JWT operations.
type TokenService interface {
	Generate(user *models.User) (string, error)
	Validate(tokenString string) (*models.User, error)
}
