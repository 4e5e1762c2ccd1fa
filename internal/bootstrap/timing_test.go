package bootstrap

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/logging"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStartupTimer_MarksPhases(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	timer := newStartupTimer(clock.now)

	clock.advance(10 * time.Millisecond)
	timer.Mark("config")
	clock.advance(25 * time.Millisecond)
	timer.Mark("init")
	timer.MarkDuration("db", 7*time.Millisecond)

	assert.Equal(t, 35*time.Millisecond, timer.Total())

	var buf bytes.Buffer
	ctx := logging.WithContext(t.Context(), zerolog.New(&buf))
	timer.Log(ctx, zerolog.InfoLevel)

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "startup timing", event["message"])
	assert.InDelta(t, 10.0, event["config"], 0.001)
	assert.InDelta(t, 25.0, event["init"], 0.001)
	assert.InDelta(t, 7.0, event["db"], 0.001)
	assert.InDelta(t, 35.0, event["total"], 0.001)
}
