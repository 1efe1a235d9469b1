package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/ledger"
	"github.com/hance08/kea-import/internal/logging"
	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/store"
	"github.com/sirupsen/logrus"
)

const appName = "kea-import"

type App struct {
	Service *service.Service
	Store   store.TxRepository
	Log     *logrus.Logger
	DBPath  string
	Schema  uint
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log := logging.New(cfg.Log)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, err := DataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPath = filepath.Join(appDir, appName+".db")
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc, err := service.NewService(dbStore, ledger.NewPoster(dbStore, log), cfg, log)
	if err != nil {
		_ = dbStore.Close()
		return nil, nil, err
	}

	log.WithFields(logrus.Fields{
		"database": dbPath,
		"schema":   dbStore.SchemaVersion(),
	}).Debug("application ready")

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			log.WithError(err).Error("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Log:     log,
		DBPath:  dbPath,
		Schema:  dbStore.SchemaVersion(),
	}, cleanup, nil
}

// DataDir is where the config file and the default database live.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(configDir, appName), nil
}
