// Package models contains the core data structures for the application.
package models

import (
	"strconv"
	"strings"
)

// User is an account that owns workouts, scores and tags. The name is
// unique in storage. PasswordHash is opaque to the model layer; hashing
// and comparison belong to the credential verifier.
type User struct {
	ID           int64  `json:"user_id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// SharedOwnerID is the distinguished user whose workouts and tags are
// visible to every other user.
const SharedOwnerID int64 = 1

// Workout belongs to exactly one user.
type Workout struct {
	ID          int64  `json:"workout_id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Datetime    int64  `json:"datetime"`
}

// Score is a recorded result for a workout. Value encodes a count, a
// decimal or a duration; Rx means the workout was done as prescribed.
type Score struct {
	ID        int64  `json:"score_id"`
	UserID    int64  `json:"user_id"`
	WorkoutID int64  `json:"workout_id"`
	Value     string `json:"value"`
	Rx        bool   `json:"rx"`
	Note      string `json:"note"`
	Datetime  int64  `json:"datetime"`
}

// Tag is a user-owned label, linked to workouts via a join table.
type Tag struct {
	ID     int64  `json:"tag_id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// Equipment is seeded reference data with no owner.
type Equipment struct {
	ID   int64  `json:"equipment_id"`
	Name string `json:"name"`
}

// Movement is seeded reference data. EquipmentIDs is stored as a
// comma-separated scalar, matching the persisted column format.
type Movement struct {
	ID           int64  `json:"movement_id"`
	Name         string `json:"name"`
	EquipmentIDs string `json:"equipment_ids"`
}

// EquipmentIDList decodes the comma-separated equipment reference list.
// Malformed elements are skipped rather than failing the whole movement.
func (m *Movement) EquipmentIDList() []int64 {
	if m.EquipmentIDs == "" {
		return nil
	}
	parts := strings.Split(m.EquipmentIDs, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// The *Params structs carry raw, still-unvalidated field values from the
// route layer into the entity operations. Fields are typed any on
// purpose: validation and normalization happen inside the services, per
// the declared order of each operation.

// UserParams holds incoming user fields.
type UserParams struct {
	Name         any
	PasswordHash any
}

// WorkoutParams holds incoming workout fields. A nil Datetime means
// "default to now".
type WorkoutParams struct {
	UserID      any
	Name        any
	Description any
	Datetime    any
}

// ScoreParams holds incoming score fields. A nil Datetime means
// "default to now".
type ScoreParams struct {
	UserID    any
	WorkoutID any
	Value     any
	Rx        any
	Note      any
	Datetime  any
}

// TagParams holds incoming tag fields.
type TagParams struct {
	UserID any
	Name   any
}
