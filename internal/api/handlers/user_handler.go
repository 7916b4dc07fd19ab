package handlers

import (
	"encoding/json"
	"net/http"

	"whiteboard/internal/logging"
	"whiteboard/internal/models"
	"whiteboard/internal/services/auth"
)

// registerRequest is the JSON body for the registration endpoint.
type registerRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// passwordUpdateRequest is the JSON body for updating a password.
type passwordUpdateRequest struct {
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid request body.")
		return
	}

	if req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid password.")
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logging.Log.WithError(err).Error("Password hashing failed")
		respondWithError(w, http.StatusInternalServerError, "InternalError", "Internal server error.")
		return
	}

	id, err := h.User.Add(models.UserParams{Name: req.Name, PasswordHash: hash})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	logging.Log.Infof("Registered user '%s' (ID: %d)", req.Name, id)
	respondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// GetUserMe returns the authenticated user's details.
func (h *Handlers) GetUserMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	// Copy so the cached user keeps its hash.
	safeUser := *user
	safeUser.PasswordHash = ""
	respondWithJSON(w, http.StatusOK, safeUser)
}

// UpdateUserMe lets a user change their own password.
func (h *Handlers) UpdateUserMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	var req passwordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid request body.")
		return
	}
	if req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid password.")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logging.Log.WithError(err).Error("Password hashing failed")
		respondWithError(w, http.StatusInternalServerError, "InternalError", "Internal server error.")
		return
	}

	if _, err := h.User.Update(user.ID, models.UserParams{Name: user.Name, PasswordHash: hash}); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully."})
}
