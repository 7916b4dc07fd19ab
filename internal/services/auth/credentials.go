package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"whiteboard/internal/services"
	"whiteboard/internal/shared"
)

// Passwords are pre-hashed with SHA-256 before bcrypt so that inputs
// longer than bcrypt's 72-byte limit are still fully significant.

var _ services.CredentialVerifier = (*credentialVerifier)(nil)

type credentialVerifier struct{}

// NewCredentialVerifier creates the bcrypt-backed CredentialVerifier.
func NewCredentialVerifier() *credentialVerifier {
	return &credentialVerifier{}
}

// Verify checks a password against a stored hash. A mismatch is
// reported as InvalidPasswordError, never as a detailed bcrypt error.
func (v *credentialVerifier) Verify(passwordHash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(preHash(password)))
	if err != nil {
		return shared.NewInvalidPassword()
	}
	return nil
}

// HashPassword derives the stored hash for a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(preHash(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func preHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
