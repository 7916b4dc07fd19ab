package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"whiteboard/internal/initconfig"
	"whiteboard/internal/repository"
	"whiteboard/internal/services"
	"whiteboard/internal/services/auth"
)

// seedCmd applies a TOML seed file without starting the server.
var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Apply a TOML seed file of users and reference data",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Seed.Path
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no seed file given; pass a path or set seed.path")
		}
		return runSeed(path)
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
}

func runSeed(path string) error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.MigrateUp(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	verifier := auth.NewCredentialVerifier()
	userService := services.NewUserService(repo, verifier)
	workoutService := services.NewWorkoutService(repo, userService)

	initconfig.Run(userService, workoutService, repo, path)
	return nil
}
