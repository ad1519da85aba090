// Package wire provides dependency injection for the academia application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/academia/internal/adapters/cli"
	"github.com/example/academia/internal/adapters/filesystem"
	"github.com/example/academia/internal/adapters/logging"
	"github.com/example/academia/internal/adapters/memory"
	"github.com/example/academia/internal/adapters/persistence"
	"github.com/example/academia/internal/adapters/sqlite"
	"github.com/example/academia/internal/app"
	"github.com/example/academia/internal/config"
	"github.com/example/academia/internal/db"
	"github.com/example/academia/internal/logger"
	"github.com/example/academia/internal/ports/primary"
	"github.com/example/academia/internal/ports/secondary"
)

// StoreInfo describes the medium behind the activity store.
type StoreInfo struct {
	Backend   string
	Location  string // file path, or "" for memory and none
	Available bool
}

var (
	log              *logger.Logger
	activityService  primary.ActivityService
	dashboardService primary.DashboardService
	storeInfo        StoreInfo
	once             sync.Once
)

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	once.Do(initServices)
	return activityService
}

// Logger returns the application logger.
func Logger() *logger.Logger {
	once.Do(initServices)
	return log
}

// Store returns a description of the configured store.
func Store() StoreInfo {
	once.Do(initServices)
	return storeInfo
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	resolved, cfgErr := config.Resolve(cwd)
	mode := ""
	if cfgErr == nil {
		mode = resolved.LogMode
	}

	l, err := logger.New(mode)
	if err != nil {
		l = logger.NewNop()
	}
	log = l
	if cfgErr != nil {
		log.Fatal("failed to load configuration", "error", cfgErr)
	}
	cfg := resolved

	path, err := cfg.ResolveStorePath()
	if err != nil {
		log.Fatal("failed to resolve store path", "error", err)
	}
	storeInfo = StoreInfo{Backend: cfg.StoreBackend, Location: path}

	// Create the key-value medium (secondary port) for the configured backend
	var kv secondary.KeyValueStore
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		database, err := db.Open(path)
		if err != nil {
			log.Fatal("failed to initialize database", "path", path, "error", err)
		}
		kv = sqlite.NewKVStore(database)
	case config.BackendFile:
		kv = filesystem.NewKVStore(path)
	case config.BackendMemory:
		kv = memory.NewKVStore()
	}
	storeInfo.Available = kv != nil

	log.Debug("store configured", "backend", storeInfo.Backend, "location", storeInfo.Location)

	store := persistence.NewActivityStore(kv, log.With("component", "store"))
	auditWriter := logging.NewAuditLogWriter(log)

	// Create services (primary ports implementation)
	activityService = app.NewActivityService(store, auditWriter)
	dashboardService = app.NewDashboardService(activityService)
}

// ActivityAdapterWithOutput returns a new ActivityAdapter writing to the given output.
// Each call creates a new adapter (adapters are stateless translators).
func ActivityAdapterWithOutput(out io.Writer) *cliadapter.ActivityAdapter {
	once.Do(initServices)
	return cliadapter.NewActivityAdapter(activityService, out)
}

// DashboardAdapterWithOutput returns a new DashboardAdapter writing to the given output.
func DashboardAdapterWithOutput(out io.Writer) *cliadapter.DashboardAdapter {
	once.Do(initServices)
	return cliadapter.NewDashboardAdapter(dashboardService, out)
}

// Sync flushes the logger if services were initialized.
func Sync() {
	if log != nil {
		log.Sync()
	}
}
