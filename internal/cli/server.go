package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whiteboard/internal/api"
	"whiteboard/internal/api/handlers"
	"whiteboard/internal/initconfig"
	"whiteboard/internal/logging"
	"whiteboard/internal/repository"
	"whiteboard/internal/services"
	"whiteboard/internal/services/auth"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	if cfg.JWT.Secret == "" {
		logging.Log.Info("Generating new random JWT secret...")
		secret, err := auth.GenerateSecret()
		if err != nil {
			return fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		cfg.JWT.Secret = secret
		logging.Log.Warn("The generated secret is not persisted; tokens will not survive a restart. Configure jwt.secret to keep them valid.")
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// Auto-migrate on startup
	if err := repo.MigrateUp(); err != nil {
		logging.Log.Errorf("Failed to migrate database: %v", err)
		return err
	}

	// Service initialization
	verifier := auth.NewCredentialVerifier()
	userService := services.NewUserService(repo, verifier)
	workoutService := services.NewWorkoutService(repo, userService)
	scoreService := services.NewScoreService(repo, userService, workoutService)
	tagService := services.NewTagService(repo, userService, workoutService)
	equipmentService := services.NewEquipmentService(repo)
	movementService := services.NewMovementService(repo, equipmentService)
	tokenService := auth.NewTokenService(cfg, userService)

	authMiddleware := auth.NewMiddleware(tokenService)

	if cfg.Seed.Path != "" {
		initconfig.Run(userService, workoutService, repo, cfg.Seed.Path)
	}

	h := handlers.NewHandlers(
		userService,
		workoutService,
		scoreService,
		tagService,
		equipmentService,
		movementService,
		tokenService,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server %s starting on %s", Version, serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
