package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// ClearSessionUseCase forgets the saved snapshot so the next launch starts fresh.
type ClearSessionUseCase struct {
	stateRepo repository.SessionStateRepository
}

// NewClearSessionUseCase creates a new ClearSessionUseCase.
func NewClearSessionUseCase(stateRepo repository.SessionStateRepository) *ClearSessionUseCase {
	return &ClearSessionUseCase{stateRepo: stateRepo}
}

// Execute deletes the stored snapshot.
func (uc *ClearSessionUseCase) Execute(ctx context.Context) error {
	if err := uc.stateRepo.Delete(ctx); err != nil {
		return fmt.Errorf("delete session snapshot: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("session snapshot cleared")
	return nil
}
