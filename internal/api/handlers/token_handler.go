package handlers

import (
	"encoding/json"
	"net/http"

	"whiteboard/internal/logging"
	"whiteboard/internal/shared"
)

// loginRequest is the JSON body for the login endpoint.
type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// loginResponse is returned on successful authentication.
type loginResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// Login authenticates a user by name and password and returns a signed
// access token. Unknown names and wrong passwords get the same answer
// so the endpoint cannot be used to probe for accounts.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "InvalidAttributeError", "Invalid request body.")
		return
	}

	user, err := h.User.Authenticate(req.Name, req.Password)
	if err != nil {
		if shared.IsInvalidAttribute(err) {
			respondWithServiceError(w, err)
			return
		}
		respondWithError(w, http.StatusUnauthorized, "InvalidPasswordError", "Invalid user password.")
		return
	}

	token, err := h.Token.Generate(user)
	if err != nil {
		logging.Log.WithError(err).Errorf("Token generation failed for %s", user.Name)
		respondWithError(w, http.StatusInternalServerError, "InternalError", "Could not generate token.")
		return
	}

	respondWithJSON(w, http.StatusOK, loginResponse{
		UserID: user.ID,
		Name:   user.Name,
		Token:  token,
	})
}
