// Package api wires the HTTP surface: routing, request logging and the
// authentication boundary.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/oklog/ulid/v2"

	"whiteboard/internal/api/handlers"
	"whiteboard/internal/logging"
	"whiteboard/internal/services/auth"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	// Public endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")

	// Authenticated API routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.RequireToken)

	addUserRoutes(apiRouter, h)
	addWorkoutRoutes(apiRouter, h)
	addScoreRoutes(apiRouter, h)
	addTagRoutes(apiRouter, h)
	addReferenceRoutes(apiRouter, h)

	return r
}

// requestLogger tags every request with a ULID and logs method, path,
// and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Make().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		logging.Log.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start).String(),
		}).Debug("Request handled")
	})
}

// addUserRoutes configures routes for a user's own profile.
func addUserRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/me", h.GetUserMe).Methods("GET")
	r.HandleFunc("/me", h.UpdateUserMe).Methods("PATCH")
}

// addWorkoutRoutes configures routes related to workouts.
func addWorkoutRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/workouts", h.ListWorkouts).Methods("GET")
	r.HandleFunc("/workout", h.CreateWorkout).Methods("POST")
	r.HandleFunc("/workout/{id}", h.GetWorkout).Methods("GET")
	r.HandleFunc("/workout/{id}", h.UpdateWorkout).Methods("PUT")
	r.HandleFunc("/workout/{id}", h.DeleteWorkout).Methods("DELETE")
	r.HandleFunc("/workout/{id}/scores", h.GetWorkoutScores).Methods("GET")
	r.HandleFunc("/workout/{id}/tags", h.GetWorkoutTags).Methods("GET")
	r.HandleFunc("/workout/{id}/tag/{tagId}", h.LinkTag).Methods("POST")
	r.HandleFunc("/workout/{id}/tag/{tagId}", h.UnlinkTag).Methods("DELETE")
}

// addScoreRoutes configures routes related to workout scores.
func addScoreRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/score", h.CreateScore).Methods("POST")
	r.HandleFunc("/score/{id}", h.GetScore).Methods("GET")
	r.HandleFunc("/score/{id}", h.UpdateScore).Methods("PUT")
	r.HandleFunc("/score/{id}", h.DeleteScore).Methods("DELETE")
}

// addTagRoutes configures routes related to tags.
func addTagRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/tags", h.ListTags).Methods("GET")
	r.HandleFunc("/tag", h.CreateTag).Methods("POST")
	r.HandleFunc("/tag/{id}", h.GetTag).Methods("GET")
	r.HandleFunc("/tag/{id}", h.UpdateTag).Methods("PUT")
	r.HandleFunc("/tag/{id}", h.DeleteTag).Methods("DELETE")
}

// addReferenceRoutes configures read-only routes for the seeded
// equipment and movement catalogs.
func addReferenceRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/equipment", h.ListEquipment).Methods("GET")
	r.HandleFunc("/equipment/{id}", h.GetEquipment).Methods("GET")
	r.HandleFunc("/movements", h.ListMovements).Methods("GET")
	r.HandleFunc("/movement/{id}", h.GetMovement).Methods("GET")
	r.HandleFunc("/movement/{id}/equipment", h.GetMovementEquipment).Methods("GET")
}
