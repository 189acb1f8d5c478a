package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/database"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/logging"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/services"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var RootCmd = &cobra.Command{
	Use:           "flatctl",
	Short:         "myflat operator CLI",
	Long:          "Administrative commands that run directly against the myflat database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Env is what every subcommand works against: the loaded config, an open
// and migrated database, and the services built on it.
type Env struct {
	Config   *config.Config
	DB       *gorm.DB
	Auth     *services.AuthService
	Listings *services.ListingService

	logger *logging.Logger
}

// Open loads configuration the same way the server does. Logs go to the
// command's stderr so table output on stdout stays clean.
func Open(cmd *cobra.Command) (*Env, error) {
	cfg := config.Load()
	logger := logging.SetupTo(cfg, cmd.ErrOrStderr())

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Close()
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		closeDB(db)
		logger.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Env{
		Config:   cfg,
		DB:       db,
		Auth:     services.NewAuthService(db, session.NewManager(cfg)),
		Listings: services.NewListingService(db),
		logger:   logger,
	}, nil
}

func (e *Env) Close() error {
	return errors.Join(closeDB(e.DB), e.logger.Close())
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
