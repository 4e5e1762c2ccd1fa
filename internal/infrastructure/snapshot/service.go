// Package snapshot persists the tab strip in the background, debouncing bursts
// of tab changes into a single write.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/logging"
)

// DefaultInterval is the debounce window used when none is configured.
const DefaultInterval = 2 * time.Second

// StateSource publishes tab manager snapshots.
type StateSource interface {
	Snapshot() tabs.State
	Subscribe(fn tabs.Listener) (unsubscribe func())
}

// Service saves a snapshot once the tab state has been quiet for the interval.
type Service struct {
	snapshotUC *usecase.SnapshotSessionUseCase
	source     StateSource
	interval   time.Duration

	mu          sync.Mutex
	timer       *time.Timer
	dirty       bool
	lastVersion uint64
	unsubscribe func()
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewService creates a snapshot service. intervalMs <= 0 selects DefaultInterval.
func NewService(snapshotUC *usecase.SnapshotSessionUseCase, source StateSource, intervalMs int) *Service {
	interval := DefaultInterval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	return &Service{
		snapshotUC: snapshotUC,
		source:     source,
		interval:   interval,
	}
}

// Start subscribes to the source. Every published state after the current
// one marks the session dirty.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.lastVersion = s.source.Snapshot().Version
	s.mu.Unlock()

	unsubscribe := s.source.Subscribe(func(st tabs.State) {
		s.mu.Lock()
		changed := st.Version > s.lastVersion
		if changed {
			s.lastVersion = st.Version
		}
		s.mu.Unlock()

		if changed {
			s.MarkDirty()
		}
	})

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop unsubscribes and saves any pending state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty schedules a save after the debounce interval, restarting the
// window if one is already pending.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save session snapshot")
		}
	})
}

// SaveNow writes pending state immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	if err := s.snapshotUC.Execute(ctx, s.source.Snapshot()); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}
