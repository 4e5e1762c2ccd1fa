package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrSessionNotFound is returned when no snapshot has been saved yet.
var ErrSessionNotFound = errors.New("session not found")

// RestoreSessionUseCase loads the last saved snapshot.
type RestoreSessionUseCase struct {
	stateRepo repository.SessionStateRepository
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(stateRepo repository.SessionStateRepository) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{stateRepo: stateRepo}
}

// Execute loads and validates the stored snapshot.
// Returns ErrSessionNotFound when nothing is stored or the snapshot has no tabs.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context) (*entity.SessionState, error) {
	log := logging.FromContext(ctx)

	state, err := uc.stateRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session snapshot: %w", err)
	}
	if state == nil || len(state.Tabs) == 0 {
		return nil, ErrSessionNotFound
	}

	if err := state.Validate(); err != nil {
		log.Warn().
			Int("state_version", state.Version).
			Int("current_version", entity.SessionStateVersion).
			Msg("session state version is incompatible")
		return nil, err
	}

	log.Info().
		Int("tab_count", len(state.Tabs)).
		Time("saved_at", state.SavedAt).
		Msg("session state loaded for restoration")

	return state, nil
}
