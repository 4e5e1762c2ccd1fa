package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	repomocks "github.com/bnema/tabshell/internal/domain/repository/mocks"
)

func TestSnapshotSessionUseCase_Execute_SavesSnapshot(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	stateRepo := repomocks.NewMockSessionStateRepository(ctrl)

	st := tabs.State{
		Tabs: entity.TabList{
			entity.NewTab("a", "https://a.example/", "A"),
			entity.NewTab("b", "https://b.example/", "B"),
		},
		SelectedTabID: "b",
		Version:       7,
	}

	stateRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, state *entity.SessionState) error {
			require.Len(t, state.Tabs, 2)
			assert.Equal(t, 1, state.SelectedIndex)
			assert.Equal(t, "A", state.Tabs[0].Title)
			assert.Equal(t, entity.SessionStateVersion, state.Version)
			assert.False(t, state.SavedAt.IsZero())
			return nil
		})

	uc := usecase.NewSnapshotSessionUseCase(stateRepo)

	require.NoError(t, uc.Execute(ctx, st))
}

func TestSnapshotSessionUseCase_Execute_WrapsRepoError(t *testing.T) {
	ctx := testContext()
	ctrl := gomock.NewController(t)

	stateRepo := repomocks.NewMockSessionStateRepository(ctrl)
	dbErr := errors.New("disk full")
	stateRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)

	uc := usecase.NewSnapshotSessionUseCase(stateRepo)

	err := uc.Execute(ctx, tabs.State{Tabs: entity.TabList{entity.NewTab("a", "https://a.example/", "")}, SelectedTabID: "a"})
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "save session snapshot")
}
