// Package repository defines the persistence contract for farm saves.
// Two implementations exist: a Postgres JSONB store and a Supabase REST
// store; the game service only sees this interface.
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/greenpatch/sprout/internal/domain"
)

// Save persists one JSON save record per user. Load returns the raw
// record so the normalizer owns all shape decisions; writes take the
// typed state and marshal it at the edge.
type Save interface {
	// Load returns the stored save record, or domain.ErrSaveNotFound.
	Load(ctx context.Context, userID string) (json.RawMessage, error)
	// Create inserts a record for a user that has none.
	Create(ctx context.Context, userID string, state *domain.SaveState) error
	// Persist overwrites the record unconditionally (last write wins)
	// and stamps updated_at. Returns domain.ErrSaveNotFound when no
	// record exists.
	Persist(ctx context.Context, userID string, state *domain.SaveState, updatedAt time.Time) error
}
