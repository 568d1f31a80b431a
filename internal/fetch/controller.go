package fetch

import (
	"context"
	"image"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
	"github.com/pokeview/pokedex/internal/pokeapi"
)

// Config holds the controller's collaborators
type Config struct {
	Client pokeapi.Client
	// Roller is optional and defaults to DiceRoller
	Roller Roller
	// MaxRandomID is optional and defaults to MaxRandomID
	MaxRandomID int
	// Logger is optional and defaults to slog.Default()
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.Client == nil {
		return errors.InvalidArgument("client is required")
	}
	if cfg.Roller == nil {
		cfg.Roller = DiceRoller{}
	}
	if cfg.MaxRandomID <= 0 {
		cfg.MaxRandomID = MaxRandomID
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// Controller runs queries against the API and publishes their state
type Controller struct {
	client      pokeapi.Client
	roller      Roller
	maxRandomID int
	logger      *slog.Logger

	state      atomic.Pointer[model.QueryState]
	generation uint64
	publishMu  sync.Mutex
	onUpdate   func(*model.QueryState) // callback for UI updates
}

var _ QueryController = (*Controller)(nil)

// NewController creates a controller in the Idle phase
func NewController(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		client:      cfg.Client,
		roller:      cfg.Roller,
		maxRandomID: cfg.MaxRandomID,
		logger:      cfg.Logger,
	}
	c.state.Store(model.IdleState())
	return c, nil
}

// SetUpdateCallback sets the callback function for state updates.
// It must be set before the first Submit.
func (c *Controller) SetUpdateCallback(callback func(*model.QueryState)) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()
	c.onUpdate = callback
}

// Snapshot returns the latest published state
func (c *Controller) Snapshot() *model.QueryState {
	return c.state.Load()
}

// NormalizeQuery trims and lowercases raw input
func NormalizeQuery(rawInput string) string {
	return strings.ToLower(strings.TrimSpace(rawInput))
}

// Submit starts a query for rawInput. The Loading state is published before
// Submit returns; the fetch itself runs in the background and the returned
// channel is closed once it has finished. Blank input is a no-op.
//
// A newer Submit supersedes this one without cancelling its requests; the
// older completion is discarded when it arrives.
func (c *Controller) Submit(ctx context.Context, rawInput string) <-chan struct{} {
	done := make(chan struct{})

	query := NormalizeQuery(rawInput)
	if query == "" {
		close(done)
		return done
	}

	c.publishMu.Lock()
	c.generation++
	loading := model.LoadingState(c.generation, uuid.NewString(), query)
	c.storeLocked(loading)
	c.publishMu.Unlock()

	c.logger.InfoContext(ctx, "query submitted",
		"request_id", loading.RequestID,
		"query", query,
		"generation", loading.Generation)

	go func() {
		defer close(done)
		c.run(ctx, loading)
	}()

	return done
}

// run performs the fetch for one query and publishes its outcome
func (c *Controller) run(ctx context.Context, loading *model.QueryState) {
	log := c.logger.With("request_id", loading.RequestID, "query", loading.Query)

	record, err := c.client.GetPokemon(ctx, loading.Query)
	if err != nil {
		log.WarnContext(ctx, "query failed",
			"code", errors.GetCode(err).String(),
			"error", err)
		c.publish(ctx, loading.Failed(errors.GetMessage(err)))
		return
	}

	img := c.loadImage(ctx, log, record)

	if c.publish(ctx, loading.Loaded(record, img)) {
		log.InfoContext(ctx, "query loaded",
			"id", record.ID,
			"name", record.Name,
			"has_image", img != nil)
	}
}

// loadImage resolves the sprite; failures leave the image absent
func (c *Controller) loadImage(ctx context.Context, log *slog.Logger, record *model.Record) image.Image {
	if record.ArtworkURL == "" {
		return nil
	}

	img, err := c.client.FetchImage(ctx, record.ArtworkURL)
	if err != nil {
		log.WarnContext(ctx, "sprite unavailable",
			"url", record.ArtworkURL,
			"code", errors.GetCode(err).String(),
			"error", err)
		return nil
	}
	return img
}

// publish stores next if it still belongs to the current generation.
// It reports whether the state was accepted.
func (c *Controller) publish(ctx context.Context, next *model.QueryState) bool {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	if next.Generation != c.generation {
		c.logger.DebugContext(ctx, "discarding stale completion",
			"request_id", next.RequestID,
			"generation", next.Generation,
			"current", c.generation)
		return false
	}

	c.storeLocked(next)
	return true
}

// storeLocked swaps the snapshot and notifies; publishMu must be held so
// callbacks observe states in generation order. Callbacks must not Submit.
func (c *Controller) storeLocked(next *model.QueryState) {
	c.state.Store(next)
	if c.onUpdate != nil {
		c.onUpdate(next)
	}
}

// RandomQueryID returns a uniformly random ID in [1, MaxRandomID]
func (c *Controller) RandomQueryID() int {
	v, err := c.roller.Roll(c.maxRandomID)
	if err != nil {
		c.logger.Warn("random roll failed", "error", err)
	}
	return clampRandom(v, err, c.maxRandomID)
}
