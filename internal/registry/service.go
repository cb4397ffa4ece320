// Package registry holds the gift-registry workflows: guest reservations,
// admin catalog management and admin authentication. Handlers translate the
// typed errors returned here into flash messages.
package registry

import (
	"time"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func New(s *store.Store) *Service {
	return &Service{store: s, now: time.Now}
}
