package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"whiteboard/internal/models"
	"whiteboard/internal/services/auth"
)

// ListWorkouts returns the workouts visible to the authenticated user:
// their own plus the shared ones.
func (h *Handlers) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	orderBy := r.URL.Query().Get("order_by")
	direction := r.URL.Query().Get("direction")

	workouts, err := h.Workout.List(user.ID, orderBy, direction)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, workouts)
}

// GetWorkout returns a single workout by id.
func (h *Handlers) GetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := h.Workout.Get(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, workout)
}

// CreateWorkout creates a workout owned by the authenticated user.
func (h *Handlers) CreateWorkout(w http.ResponseWriter, r *http.Request) {
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

	id, err := h.Workout.Add(models.WorkoutParams{
		UserID:      user.ID,
		Name:        body["name"],
		Description: body["description"],
		Datetime:    body["datetime"],
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateWorkout updates a workout owned by the authenticated user. The
// stored timestamp is refreshed on every update.
func (h *Handlers) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.Workout.Update(mux.Vars(r)["id"], models.WorkoutParams{
		UserID:      user.ID,
		Name:        body["name"],
		Description: body["description"],
		Datetime:    body["datetime"],
	}); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Workout updated successfully."})
}

// DeleteWorkout removes a workout along with its scores and tag links.
func (h *Handlers) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	if _, err := h.Workout.Remove(mux.Vars(r)["id"], user.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Workout deleted successfully."})
}

// GetWorkoutScores lists the scores recorded for a workout, scoped to
// scores the authenticated user may see.
func (h *Handlers) GetWorkoutScores(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	orderBy := r.URL.Query().Get("order_by")
	direction := r.URL.Query().Get("direction")

	scores, err := h.Score.ListByWorkout(mux.Vars(r)["id"], user.ID, orderBy, direction)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, scores)
}

// GetWorkoutTags lists the tags linked to a workout.
func (h *Handlers) GetWorkoutTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Workout.Tags(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}
