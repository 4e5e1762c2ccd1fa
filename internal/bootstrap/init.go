package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/logging"
)

// InitInput holds the input for the parallel init phase.
type InitInput struct {
	Config     *config.Config
	SchemaPath string
}

// InitResult holds what the parallel init phase produced.
type InitResult struct {
	DB          *sql.DB
	SessionRepo repository.SessionStateRepository
	// Session is the snapshot to restore, nil when auto restore is off or nothing usable was saved.
	Session  *entity.SessionState
	Duration time.Duration
}

// Close releases the database.
func (r *InitResult) Close() error {
	if r == nil || r.DB == nil {
		return nil
	}
	return r.DB.Close()
}

// RunParallelInit opens the database and loads the saved session while the
// config schema is refreshed. Only a database failure is fatal.
func RunParallelInit(ctx context.Context, in InitInput) (*InitResult, error) {
	start := time.Now()
	result := &InitResult{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		db, err := sqlite.NewConnection(gctx, in.Config.Database.Path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		result.DB = db
		result.SessionRepo = sqlite.NewSessionStateRepository(db)

		if in.Config.Session.AutoRestore {
			result.Session = loadSession(gctx, result.SessionRepo)
		}
		return nil
	})

	g.Go(func() error {
		if in.SchemaPath == "" {
			return nil
		}
		if err := config.WriteSchemaFile(in.SchemaPath); err != nil {
			logging.FromContext(gctx).Warn().Err(err).Str("path", in.SchemaPath).Msg("failed to refresh config schema")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		_ = result.Close()
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

func loadSession(ctx context.Context, repo repository.SessionStateRepository) *entity.SessionState {
	log := logging.FromContext(ctx)

	state, err := usecase.NewRestoreSessionUseCase(repo).Execute(ctx)
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		log.Debug().Msg("no saved session")
		return nil
	case err != nil:
		log.Warn().Err(err).Msg("saved session ignored")
		return nil
	}
	return state
}
