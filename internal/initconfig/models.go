package initconfig

// InitConfig is the root struct for parsing the TOML seed file.
type InitConfig struct {
	Users     []InitUser     `toml:"user"`
	Workouts  []InitWorkout  `toml:"workout"`
	Equipment []InitCatalog  `toml:"equipment"`
	Movements []InitMovement `toml:"movement"`
}

// InitUser represents a user entry in the seed file.
type InitUser struct {
	Name     string `toml:"name"`
	Password string `toml:"password"`
}

// InitWorkout represents a workout entry in the seed file. Workouts
// without an owner are assigned to the shared user so every account
// sees them.
type InitWorkout struct {
	Owner       string `toml:"owner"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// InitCatalog represents an equipment entry in the seed file.
type InitCatalog struct {
	Name string `toml:"name"`
}

// InitMovement represents a movement entry in the seed file.
// EquipmentIDs uses the persisted comma-separated format.
type InitMovement struct {
	Name         string `toml:"name"`
	EquipmentIDs string `toml:"equipment_ids"`
}
