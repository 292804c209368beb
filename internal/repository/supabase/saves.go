package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/greenpatch/sprout/internal/domain"
)

// SaveRepository implements the save repository over the Supabase REST
// API.
type SaveRepository struct {
	client *Client
}

// NewSaveRepository creates a new Supabase-backed save repository
func NewSaveRepository(client *Client) *SaveRepository {
	return &SaveRepository{client: client}
}

type saveRow struct {
	Data json.RawMessage `json:"data"`
}

// Load retrieves the raw save record for a user
func (r *SaveRepository) Load(ctx context.Context, userID string) (json.RawMessage, error) {
	query := "user_id=eq." + url.QueryEscape(userID) + "&select=data"
	body, status, err := r.client.do(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("supabase select returned status %d", status)
	}
	var rows []saveRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode select response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrSaveNotFound
	}
	return rows[0].Data, nil
}

// Create inserts a save record for a new user
func (r *SaveRepository) Create(ctx context.Context, userID string, state *domain.SaveState) error {
	payload, err := json.Marshal([]map[string]any{{
		"user_id": userID,
		"data":    state,
	}})
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	_, status, err := r.client.do(ctx, http.MethodPost, "", payload)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return fmt.Errorf("supabase insert returned status %d", status)
	}
	return nil
}

// Persist overwrites the save record unconditionally (last write wins)
func (r *SaveRepository) Persist(ctx context.Context, userID string, state *domain.SaveState, updatedAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"data":       state,
		"updated_at": updatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	query := "user_id=eq." + url.QueryEscape(userID)
	body, status, err := r.client.do(ctx, http.MethodPatch, query, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("supabase update returned status %d", status)
	}
	// With return=representation an empty array means no row matched.
	var rows []saveRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("failed to decode update response: %w", err)
	}
	if len(rows) == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}
