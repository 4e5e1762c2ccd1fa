package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// SnapshotSessionUseCase saves the tab strip so it can be restored on the next launch.
type SnapshotSessionUseCase struct {
	stateRepo repository.SessionStateRepository
	now       func() time.Time
}

// NewSnapshotSessionUseCase creates a new SnapshotSessionUseCase.
func NewSnapshotSessionUseCase(stateRepo repository.SessionStateRepository) *SnapshotSessionUseCase {
	return &SnapshotSessionUseCase{stateRepo: stateRepo, now: time.Now}
}

// Execute converts a manager snapshot to a SessionState and saves it.
func (uc *SnapshotSessionUseCase) Execute(ctx context.Context, st tabs.State) error {
	log := logging.FromContext(ctx)

	state := entity.SnapshotFromTabs(st.Tabs, st.SelectedTabID, uc.now().UTC())

	log.Debug().
		Int("tab_count", len(state.Tabs)).
		Int("selected_index", state.SelectedIndex).
		Uint64("version", st.Version).
		Msg("creating session snapshot")

	if err := uc.stateRepo.Save(ctx, state); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}

	return nil
}
