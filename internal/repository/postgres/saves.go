// Package postgres stores farm saves as JSONB rows, one per user.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenpatch/sprout/internal/domain"
)

// SaveRepository implements the save repository for PostgreSQL
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a new save repository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Load retrieves the raw save record for a user
func (r *SaveRepository) Load(ctx context.Context, userID string) (json.RawMessage, error) {
	var data json.RawMessage
	err := r.db.QueryRow(ctx,
		`SELECT data FROM farm_saves WHERE user_id = $1`, userID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	return data, nil
}

// Create inserts a save record for a new user
func (r *SaveRepository) Create(ctx context.Context, userID string, state *domain.SaveState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	if _, err := r.db.Exec(ctx,
		`INSERT INTO farm_saves (user_id, data) VALUES ($1, $2)`, userID, data,
	); err != nil {
		return fmt.Errorf("failed to insert save: %w", err)
	}
	return nil
}

// Persist overwrites the save record unconditionally (last write wins)
func (r *SaveRepository) Persist(ctx context.Context, userID string, state *domain.SaveState, updatedAt time.Time) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE farm_saves SET data = $2, updated_at = $3 WHERE user_id = $1`,
		userID, data, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update save: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}
