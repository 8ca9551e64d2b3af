package store

import (
	"github.com/MKhiriev/account-service/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
	}
}
