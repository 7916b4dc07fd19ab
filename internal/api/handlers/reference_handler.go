package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListEquipment returns the seeded equipment catalog.
func (h *Handlers) ListEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.Equipment.List(r.URL.Query().Get("direction"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, equipment)
}

// GetEquipment returns a single equipment entry.
func (h *Handlers) GetEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.Equipment.Get(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, equipment)
}

// ListMovements returns the seeded movement catalog.
func (h *Handlers) ListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.Movement.List(r.URL.Query().Get("direction"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, movements)
}

// GetMovement returns a single movement entry.
func (h *Handlers) GetMovement(w http.ResponseWriter, r *http.Request) {
	movement, err := h.Movement.Get(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, movement)
}

// GetMovementEquipment resolves the equipment a movement requires.
func (h *Handlers) GetMovementEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.Movement.EquipmentFor(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, equipment)
}
