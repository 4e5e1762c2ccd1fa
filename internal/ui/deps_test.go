package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/tabs"
)

func TestDependencies_Validate(t *testing.T) {
	ctx := context.Background()
	manager := tabs.NewManager(ctx, tabs.Config{})
	t.Cleanup(func() { manager.Teardown(ctx) })
	factory := port.ViewFactory(func(context.Context) (port.ViewResource, error) { return nil, nil })

	tests := []struct {
		name    string
		deps    Dependencies
		missing string
	}{
		{name: "complete", deps: Dependencies{Ctx: ctx, Manager: manager, Factory: factory}},
		{name: "no context", deps: Dependencies{Manager: manager, Factory: factory}, missing: "Ctx"},
		{name: "no manager", deps: Dependencies{Ctx: ctx, Factory: factory}, missing: "Manager"},
		{name: "no factory", deps: Dependencies{Ctx: ctx, Manager: manager}, missing: "Factory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deps.Validate()
			if tt.missing == "" {
				require.NoError(t, err)
				return
			}
			var depErr DependencyError
			require.ErrorAs(t, err, &depErr)
			assert.Equal(t, tt.missing, depErr.Name)
		})
	}
}
