package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/campuscache/campuscache/internal/app"
	"github.com/campuscache/campuscache/internal/database"
	"github.com/campuscache/campuscache/internal/models"
	"github.com/campuscache/campuscache/pkg/logger"
)

// Seeds the database with the fixed demo accounts and the campus landmark
// caches. Safe to run repeatedly.
func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("campuscache-seed", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)

	var configPath string
	fs.StringVar(&configPath, "config", "", "Path to configuration directory or file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadApplicationConfig(configPath)
	if err != nil {
		return err
	}

	if err := app.ConfigureLogging(cfg.Server.LogLevel); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer logger.Sync() // best effort

	log := logger.WithModule("seed")

	db, err := database.Open(database.Config{
		Driver: strings.ToLower(strings.TrimSpace(cfg.Database.Driver)),
		Path:   strings.TrimSpace(cfg.Database.Path),
		DSN:    strings.TrimSpace(cfg.Database.DSN),
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("auto-migrate database: %w", err)
	}

	if err := database.SeedDemoAccounts(db); err != nil {
		return fmt.Errorf("seed demo accounts: %w", err)
	}
	log.Info("demo accounts reconciled")

	var admin models.User
	if err := db.Where("username = ?", "admin").Take(&admin).Error; err != nil {
		return fmt.Errorf("look up admin account: %w", err)
	}

	if err := database.SeedCampusCaches(db, admin.ID); err != nil {
		return fmt.Errorf("seed campus caches: %w", err)
	}
	log.Info("campus caches seeded", zap.Uint("owner_id", admin.ID))

	return nil
}

func loadApplicationConfig(path string) (*app.Config, error) {
	switch {
	case strings.TrimSpace(path) == "":
		return app.LoadConfig()
	default:
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() {
				return app.LoadConfig(path)
			}
			return app.LoadConfig(filepath.Dir(path))
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config path %q does not exist", path)
		}
		return nil, fmt.Errorf("stat config path: %w", err)
	}
}
