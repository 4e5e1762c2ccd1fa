package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// lastSessionKey is the row holding the most recent snapshot.
const lastSessionKey = "last"

const (
	upsertSessionState = `
INSERT INTO session_state (key, state_json, version, tab_count, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
    state_json = excluded.state_json,
    version    = excluded.version,
    tab_count  = excluded.tab_count,
    updated_at = excluded.updated_at`
	selectSessionState = `SELECT state_json FROM session_state WHERE key = ?`
	deleteSessionState = `DELETE FROM session_state WHERE key = ?`
)

type sessionStateRepo struct {
	db *sql.DB
}

// NewSessionStateRepository creates a repository backed by db.
func NewSessionStateRepository(db *sql.DB) repository.SessionStateRepository {
	return &sessionStateRepo{db: db}
}

// Save replaces the stored snapshot.
func (r *sessionStateRepo) Save(ctx context.Context, state *entity.SessionState) error {
	log := logging.FromContext(ctx)
	if state == nil {
		return errors.New("session state cannot be nil")
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	log.Debug().
		Int("tab_count", len(state.Tabs)).
		Int("bytes", len(stateJSON)).
		Msg("saving session state snapshot")

	if _, err := r.db.ExecContext(ctx, upsertSessionState,
		lastSessionKey, string(stateJSON), state.Version, len(state.Tabs), state.SavedAt,
	); err != nil {
		return fmt.Errorf("upsert session state: %w", err)
	}
	return nil
}

// Load returns the stored snapshot or nil when none exists.
func (r *sessionStateRepo) Load(ctx context.Context) (*entity.SessionState, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx, selectSessionState, lastSessionKey).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session state: %w", err)
	}

	var state entity.SessionState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to unmarshal session state")
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}

	return &state, nil
}

// Delete removes the stored snapshot.
func (r *sessionStateRepo) Delete(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("deleting session state snapshot")
	if _, err := r.db.ExecContext(ctx, deleteSessionState, lastSessionKey); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}
