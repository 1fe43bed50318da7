package hist

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/tws-tools/internal/model"
	"github.com/rickgao/tws-tools/internal/tws"
)

// Config holds planner settings.
type Config struct {
	MaxChunk string // Longest duration per request (e.g., "1 Y")
	UseRTH   bool   // Default for new requests
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunk: "1 Y",
		UseRTH:   true,
	}
}

// Planner creates and splits historical-data requests.
type Planner struct {
	cfg      Config
	maxChunk int // seconds
	logger   *slog.Logger
}

// NewPlanner creates a Planner. MaxChunk must be a valid, non-zero duration.
func NewPlanner(cfg Config, logger *slog.Logger) (*Planner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	maxChunk, err := tws.DurationSeconds(cfg.MaxChunk)
	if err != nil {
		return nil, fmt.Errorf("max chunk: %w", err)
	}
	if maxChunk == 0 {
		return nil, fmt.Errorf("max chunk %q must be positive", cfg.MaxChunk)
	}

	return &Planner{
		cfg:      cfg,
		maxChunk: maxChunk,
		logger:   logger,
	}, nil
}

// Request creates and validates a request using the planner's RTH default.
func (p *Planner) Request(c model.Contract, end, duration, barSize, wts string) (Request, error) {
	req := NewRequest(c, end, duration, barSize, wts, p.cfg.UseRTH)
	if err := req.Validate(); err != nil {
		return Request{}, err
	}

	p.logger.Debug("historical request created",
		"id", req.ID,
		"key", req.Key(),
	)
	return req, nil
}

// Split cuts req into consecutive chunks no longer than MaxChunk, newest first.
// Each chunk has its own ID and an explicit end date-time; chunks tile the original
// window without gaps or overlap. A request that already fits is returned as-is.
func (p *Planner) Split(req Request, now time.Time) ([]Request, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	total, err := tws.DurationSeconds(req.Duration)
	if err != nil {
		return nil, err
	}
	if total <= p.maxChunk {
		return []Request{req}, nil
	}

	end, err := req.End(now)
	if err != nil {
		return nil, err
	}

	chunks := make([]Request, 0, (total+p.maxChunk-1)/p.maxChunk)
	for remaining := total; remaining > 0; {
		n := min(remaining, p.maxChunk)

		chunk := req
		chunk.ID = uuid.New()
		chunk.EndDateTime = tws.FormatDateTime(end)
		chunk.Duration = tws.FormatDuration(n)
		chunks = append(chunks, chunk)

		end = end.Add(-time.Duration(n) * time.Second)
		remaining -= n
	}

	p.logger.Debug("historical request split",
		"id", req.ID,
		"key", req.Key(),
		"duration", req.Duration,
		"max_chunk", p.cfg.MaxChunk,
		"chunks", len(chunks),
	)
	return chunks, nil
}
