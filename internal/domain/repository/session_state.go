package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

//go:generate mockgen -source=session_state.go -destination=mocks/mock_session_state.go -package=mocks

// SessionStateRepository persists the last tab strip snapshot.
type SessionStateRepository interface {
	// Save stores state, replacing any previous snapshot.
	Save(ctx context.Context, state *entity.SessionState) error

	// Load returns the stored snapshot, or nil and no error when none exists.
	Load(ctx context.Context) (*entity.SessionState, error)

	// Delete removes the stored snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context) error
}
