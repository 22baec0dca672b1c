// Package di provides dependency injection for repository implementations.
package di

import (
	"fmt"

	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/rs/zerolog"
)

// InitializeRepositories creates the repositories over the open databases
func InitializeRepositories(container *Container, log zerolog.Logger) error {
	if container.CacheDB == nil {
		return fmt.Errorf("cache database not initialized")
	}

	container.ClientDataRepo = clientdata.NewRepository(container.CacheDB.Conn())

	log.Debug().Msg("Repositories initialized")
	return nil
}
