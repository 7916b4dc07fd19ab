package handlers

import (
	"encoding/json"
	"net/http"

	"whiteboard/internal/logging"
	"whiteboard/internal/shared"
)

// decodeJSON decodes a request body into raw field values. UseNumber
// keeps numeric literals as json.Number so the validators can tell
// integers from floats.
func decodeJSON(r *http.Request) (map[string]any, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	body := map[string]any{}
	if err := decoder.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// statusFromError maps the error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case shared.IsInvalidAttribute(err):
		return http.StatusBadRequest
	case shared.IsInvalidPassword(err):
		return http.StatusUnauthorized
	case shared.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorType names the taxonomy kind for the response payload.
func errorType(err error) string {
	switch {
	case shared.IsInvalidAttribute(err):
		return "InvalidAttributeError"
	case shared.IsInvalidPassword(err):
		return "InvalidPasswordError"
	case shared.IsNotFound(err):
		return "NotFoundError"
	default:
		return "InternalError"
	}
}

// respondWithServiceError translates a service layer error into the
// standard JSON error response. Unclassified errors are logged and
// masked.
func respondWithServiceError(w http.ResponseWriter, err error) {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		logging.Log.WithError(err).Error("Unhandled service error")
		message = "Internal server error."
	}
	respondWithError(w, code, errorType(err), message)
}
