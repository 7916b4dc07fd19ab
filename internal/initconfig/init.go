// Package initconfig seeds users, workouts and catalog data from a
// TOML file on startup. Seeding is idempotent: entries that already
// exist are skipped.
package initconfig

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"whiteboard/internal/logging"
	"whiteboard/internal/models"
	"whiteboard/internal/repository"
	"whiteboard/internal/services"
	"whiteboard/internal/services/auth"
	"whiteboard/internal/shared"
)

// Run executes the one-time seeding from the config file.
func Run(
	userSvc services.UserService,
	workoutSvc services.WorkoutService,
	repo *repository.Repository,
	configPath string,
) {
	logging.Log.Infof("Seed file found at: %s. Processing...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		logging.Log.Errorf("Failed to read seed file '%s': %v", configPath, err)
		return
	}

	var config InitConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		logging.Log.Errorf("Failed to parse TOML seed file '%s': %v", configPath, err)
		return
	}

	logging.Log.Infof("Found %d user(s), %d workout(s), %d equipment, %d movement(s) in seed file.",
		len(config.Users), len(config.Workouts), len(config.Equipment), len(config.Movements))

	processUsers(userSvc, config.Users)
	processWorkouts(userSvc, workoutSvc, config.Workouts)
	processEquipment(repo, config.Equipment)
	processMovements(repo, config.Movements)

	clearPasswords(&config, configPath)
}

// processUsers creates the seed users that do not exist yet.
func processUsers(userSvc services.UserService, users []InitUser) {
	for _, u := range users {
		if u.Name == "" || u.Password == "" {
			logging.Log.Warn("Skipping user with empty name or password.")
			continue
		}

		_, err := userSvc.GetByName(u.Name)
		if err == nil {
			logging.Log.Infof("Skipping user: '%s' already exists.", u.Name)
			continue
		}
		if !shared.IsNotFound(err) {
			logging.Log.Errorf("Failed to check if user '%s' exists: %v", u.Name, err)
			continue
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			logging.Log.Errorf("Failed to hash password for user '%s': %v", u.Name, err)
			continue
		}

		if _, err := userSvc.Add(models.UserParams{Name: u.Name, PasswordHash: hash}); err != nil {
			logging.Log.Errorf("Failed to create user '%s': %v", u.Name, err)
		} else {
			logging.Log.Infof("Successfully created user: '%s'", u.Name)
		}
	}
}

// processWorkouts creates the seed workouts that do not exist yet.
// Workouts without an owner go to the shared user.
func processWorkouts(userSvc services.UserService, workoutSvc services.WorkoutService, workouts []InitWorkout) {
	for _, ws := range workouts {
		if ws.Name == "" {
			logging.Log.Warn("Skipping workout with empty name.")
			continue
		}

		ownerID := models.SharedOwnerID
		if ws.Owner != "" {
			owner, err := userSvc.GetByName(ws.Owner)
			if err != nil {
				logging.Log.Errorf("Failed to resolve owner '%s' for workout '%s': %v", ws.Owner, ws.Name, err)
				continue
			}
			ownerID = owner.ID
		}

		existing, err := workoutSvc.List(ownerID, "name", "asc")
		if err != nil {
			logging.Log.Errorf("Failed to list workouts for owner %d: %v", ownerID, err)
			continue
		}
		exists := false
		for _, existingWorkout := range existing {
			if existingWorkout.Name == ws.Name && existingWorkout.UserID == ownerID {
				exists = true
				break
			}
		}
		if exists {
			logging.Log.Infof("Skipping workout: '%s' already exists.", ws.Name)
			continue
		}

		_, err = workoutSvc.Add(models.WorkoutParams{
			UserID:      ownerID,
			Name:        ws.Name,
			Description: ws.Description,
		})
		if err != nil {
			logging.Log.Errorf("Failed to create workout '%s': %v", ws.Name, err)
		} else {
			logging.Log.Infof("Successfully created workout: '%s'", ws.Name)
		}
	}
}

// processEquipment adds seed equipment not present in the catalog.
func processEquipment(repo *repository.Repository, entries []InitCatalog) {
	existing, err := repo.ListEquipment("asc")
	if err != nil {
		logging.Log.Errorf("Failed to list equipment: %v", err)
		return
	}
	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[e.Name] = true
	}

	for _, entry := range entries {
		if entry.Name == "" || known[entry.Name] {
			continue
		}
		if _, err := repo.InsertEquipment(entry.Name); err != nil {
			logging.Log.Errorf("Failed to create equipment '%s': %v", entry.Name, err)
		} else {
			logging.Log.Infof("Successfully created equipment: '%s'", entry.Name)
			known[entry.Name] = true
		}
	}
}

// processMovements adds seed movements not present in the catalog.
func processMovements(repo *repository.Repository, entries []InitMovement) {
	existing, err := repo.ListMovements("asc")
	if err != nil {
		logging.Log.Errorf("Failed to list movements: %v", err)
		return
	}
	known := make(map[string]bool, len(existing))
	for _, m := range existing {
		known[m.Name] = true
	}

	for _, entry := range entries {
		if entry.Name == "" || known[entry.Name] {
			continue
		}
		if _, err := repo.InsertMovement(entry.Name, entry.EquipmentIDs); err != nil {
			logging.Log.Errorf("Failed to create movement '%s': %v", entry.Name, err)
		} else {
			logging.Log.Infof("Successfully created movement: '%s'", entry.Name)
			known[entry.Name] = true
		}
	}
}

// clearPasswords attempts to overwrite the seed file with passwords removed.
func clearPasswords(config *InitConfig, configPath string) {
	logging.Log.Info("Attempting to clear passwords from seed file...")

	for i := range config.Users {
		config.Users[i].Password = ""
	}

	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(config); err != nil {
		logging.Log.Warnf("Could not re-encode seed file to clear passwords: %v", err)
		logging.Log.Warnf("SECURITY: Please manually remove passwords from '%s'", configPath)
		return
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		logging.Log.Warnf("Failed to write back to seed file to clear passwords: %v", err)
		logging.Log.Warnf("SECURITY: Please manually remove passwords from '%s'", configPath)
		return
	}

	logging.Log.Info("Successfully cleared passwords from seed file.")
}
