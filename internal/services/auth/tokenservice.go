package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"whiteboard/internal/config"
	"whiteboard/internal/models"
	"whiteboard/internal/services"
)

// accessClaims defines the custom claims for the access token.
type accessClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

type tokenService struct {
	cfg     *config.Config
	userSvc services.UserService
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config, userSvc services.UserService) TokenService {
	return &tokenService{cfg: cfg, userSvc: userSvc}
}

// Generate creates and signs an access token for the given user.
func (s *tokenService) Generate(user *models.User) (string, error) {
	expiry := time.Now().Add(time.Minute * time.Duration(s.cfg.JWT.AccessDurationMin))
	claims := &accessClaims{
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "whiteboard",
			Subject:   strconv.FormatInt(user.ID, 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Validate checks a token's signature and expiry, then resolves the
// user named in the 'sub' claim.
func (s *tokenService) Validate(tokenString string) (*models.User, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err // Handles expired tokens as well
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	user, err := s.userSvc.Get(claims.Subject)
	if err != nil {
		return nil, errors.New("user not found for token")
	}
	return user, nil
}
