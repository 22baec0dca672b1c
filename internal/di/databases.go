// Package di provides dependency injection for database connections.
package di

import (
	"fmt"

	"github.com/aristath/energyintel/internal/config"
	"github.com/aristath/energyintel/internal/database"
	"github.com/rs/zerolog"
)

// InitializeDatabases opens the cache database and applies its schema
func InitializeDatabases(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	container := &Container{}

	cacheDB, err := database.New(database.Config{
		Path: cfg.CacheDBPath,
		Name: "cache",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache database: %w", err)
	}

	if err := cacheDB.Migrate(); err != nil {
		cacheDB.Close()
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}
	container.CacheDB = cacheDB

	log.Info().
		Str("profile", string(cacheDB.Profile())).
		Msg("Cache database initialized")

	return container, nil
}
