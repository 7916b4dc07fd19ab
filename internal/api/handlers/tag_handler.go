package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"whiteboard/internal/models"
	"whiteboard/internal/services/auth"
)

// ListTags returns the tags visible to the authenticated user.
func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	direction := r.URL.Query().Get("direction")
	tags, err := h.Tag.List(user.ID, direction)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tags)
}

// GetTag returns a single tag by id.
func (h *Handlers) GetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.Tag.Get(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tag)
}

// CreateTag creates a tag owned by the authenticated user.
func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
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

	id, err := h.Tag.Add(models.TagParams{UserID: user.ID, Name: body["name"]})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, IDResponse{ID: id})
}

// UpdateTag renames a tag.
func (h *Handlers) UpdateTag(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.Tag.Update(mux.Vars(r)["id"], models.TagParams{UserID: user.ID, Name: body["name"]}); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Tag updated successfully."})
}

// DeleteTag removes a tag and its workout links.
func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "AuthenticationError", "Authorization required.")
		return
	}

	if _, err := h.Tag.Remove(mux.Vars(r)["id"], user.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Tag deleted successfully."})
}

// LinkTag attaches a tag to a workout.
func (h *Handlers) LinkTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if _, err := h.Tag.Link(vars["id"], vars["tagId"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Tag linked successfully."})
}

// UnlinkTag detaches a tag from a workout.
func (h *Handlers) UnlinkTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if _, err := h.Tag.Unlink(vars["id"], vars["tagId"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Tag unlinked successfully."})
}
