// internal/core/domain/acceptance.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Acceptance is an intake batch of incoming stock. It owns the received items
// and the placing tasks generated to shelve them.
type Acceptance struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAcceptance creates an acceptance batch.
func NewAcceptance() *Acceptance {
	return &Acceptance{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}
