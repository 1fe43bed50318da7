package hist

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/tws-tools/internal/tws"
)

func newTestPlanner(t *testing.T, cfg Config) *Planner {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := NewPlanner(cfg, logger)
	require.NoError(t, err)
	return p
}

func TestNewPlanner(t *testing.T) {
	_, err := NewPlanner(DefaultConfig(), nil)
	require.NoError(t, err)

	_, err = NewPlanner(Config{MaxChunk: "1 year"}, nil)
	assert.ErrorIs(t, err, tws.ErrParse)

	_, err = NewPlanner(Config{MaxChunk: "0 D"}, nil)
	assert.Error(t, err)
}

func TestPlannerRequest(t *testing.T) {
	p := newTestPlanner(t, Config{MaxChunk: "1 Y", UseRTH: false})

	req, err := p.Request(spy, "20231231 16:00:00", "1 Y", "1 day", "TRADES")
	require.NoError(t, err)
	assert.False(t, req.UseRTH)
	assert.Equal(t, "756733_T_eod_all", req.Key())

	_, err = p.Request(spy, "20231231 16:00:00", "1 Y", "1 fortnight", "TRADES")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestSplitFits(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())
	req := NewRequest(spy, "20231231 16:00:00", "6 M", "1 day", "TRADES", true)

	chunks, err := p.Split(req, time.Now())
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, req, chunks[0])
}

func TestSplitEven(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())
	req := NewRequest(spy, "20231231 16:00:00", "2 Y", "1 day", "TRADES", true)

	chunks, err := p.Split(req, time.Now())
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Equal(t, "20231231 16:00:00", chunks[0].EndDateTime)
	assert.Equal(t, "1 Y", chunks[0].Duration)
	assert.Equal(t, "20221231 16:00:00", chunks[1].EndDateTime)
	assert.Equal(t, "1 Y", chunks[1].Duration)

	assert.NotEqual(t, chunks[0].ID, chunks[1].ID)
	assert.NotEqual(t, req.ID, chunks[0].ID)
	for _, c := range chunks {
		assert.Equal(t, req.Key(), c.Key())
		assert.NoError(t, c.Validate())
	}
}

func TestSplitRemainder(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())
	req := NewRequest(spy, "20231231 16:00:00", "400 D", "1 day", "TRADES", true)

	chunks, err := p.Split(req, time.Now())
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Equal(t, "1 Y", chunks[0].Duration)
	assert.Equal(t, "5 W", chunks[1].Duration)
	assert.Equal(t, "20221231 16:00:00", chunks[1].EndDateTime)

	// Chunks cover exactly the original span.
	var total time.Duration
	for _, c := range chunks {
		span, err := c.Span()
		require.NoError(t, err)
		total += span
	}
	want, err := req.Span()
	require.NoError(t, err)
	assert.Equal(t, want, total)
}

func TestSplitEmptyEndUsesNow(t *testing.T) {
	t.Cleanup(func() { tws.SetLocation(nil) })
	tws.SetLocation(time.UTC)

	p := newTestPlanner(t, Config{MaxChunk: "1 D"})
	req := NewRequest(spy, "", "3 D", "1 min", "MIDPOINT", true)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	chunks, err := p.Split(req, now)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, "20240310 12:00:00", chunks[0].EndDateTime)
	assert.Equal(t, "20240309 12:00:00", chunks[1].EndDateTime)
	assert.Equal(t, "20240308 12:00:00", chunks[2].EndDateTime)
	for _, c := range chunks {
		assert.Equal(t, "1 D", c.Duration)
	}
}

func TestSplitInvalid(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())
	req := NewRequest(spy, "", "10 X", "1 day", "TRADES", true)

	_, err := p.Split(req, time.Now())
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
