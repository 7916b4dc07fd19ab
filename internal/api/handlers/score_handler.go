package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"whiteboard/internal/models"
	"whiteboard/internal/services/auth"
)

// GetScore returns a single score, scoped to the authenticated user's
// visibility.
func (h *Handlers) GetScore(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	score, err := h.Score.Get(mux.Vars(r)["id"], user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, score)
}

// CreateScore records a score for a workout.
func (h *Handlers) CreateScore(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	body, err := decodeJSON(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid request body.")
		return
	}

	id, err := h.Score.Add(models.ScoreParams{
		UserID:    user.ID,
		WorkoutID: body["workout_id"],
		Value:     body["score"],
		Rx:        body["rx"],
		Note:      body["note"],
		Datetime:  body["datetime"],
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateScore updates a recorded score. The stored timestamp is
// refreshed on every update.
func (h *Handlers) UpdateScore(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	body, err := decodeJSON(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid request body.")
		return
	}

	if _, err := h.Score.Update(mux.Vars(r)["id"], models.ScoreParams{
		UserID:    user.ID,
		WorkoutID: body["workout_id"],
		Value:     body["score"],
		Rx:        body["rx"],
		Note:      body["note"],
		Datetime:  body["datetime"],
	}); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Score updated successfully."})
}

// DeleteScore removes a recorded score. The owning workout is passed as
// a query parameter and validated like any other reference.
func (h *Handlers) DeleteScore(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	workoutID := r.URL.Query().Get("workout_id")
	if _, err := h.Score.Remove(mux.Vars(r)["id"], user.ID, workoutID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Score deleted successfully."})
}
