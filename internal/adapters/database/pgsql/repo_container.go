package pgsql

import (
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider bundles the pgsql repositories with the local
// mirror for injection into the service layer.
func NewRepositoryProvider(pool PgxPool, mirror portsrepo.LocalMirror) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RecordRepo:     NewPgxRecordRepository(pool),
		PreferenceRepo: NewPgxPreferenceRepository(pool),
		Mirror:         mirror,
	}
}
