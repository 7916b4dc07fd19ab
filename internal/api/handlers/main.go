// Package handlers exposes the entity operations over HTTP. Request
// bodies are decoded into raw values and handed to the services
// untyped; all field validation happens there.
package handlers

import (
	"whiteboard/internal/config"
	"whiteboard/internal/services"
	"whiteboard/internal/services/auth"
)

// Handlers holds the shared dependencies for the API handlers.
type Handlers struct {
	User      services.UserService
	Workout   services.WorkoutService
	Score     services.ScoreService
	Tag       services.TagService
	Equipment services.EquipmentService
	Movement  services.MovementService

	Token auth.TokenService
	Cfg   *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	user services.UserService,
	workout services.WorkoutService,
	score services.ScoreService,
	tag services.TagService,
	equipment services.EquipmentService,
	movement services.MovementService,
	token auth.TokenService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		User:      user,
		Workout:   workout,
		Score:     score,
		Tag:       tag,
		Equipment: equipment,
		Movement:  movement,
		Token:     token,
		Cfg:       cfg,
	}
}
