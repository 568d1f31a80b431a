package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/pokeview/pokedex/internal/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"  // sprite decoders
	_ "image/jpeg" // sprite decoders
	_ "image/png"  // sprite decoders
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	_ "golang.org/x/image/webp" // sprite decoders

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
)

// Defaults for Config
const (
	DefaultBaseURL     = "https://pokeapi.co/api/v2"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultUserAgent   = "pokedex-viewer/dev"

	// maxBodyBytes bounds both JSON and sprite downloads
	maxBodyBytes = 16 << 20
)

// Client defines the interface for PokéAPI interactions
type Client interface {
	// GetPokemon fetches and decodes the record for a name or numeric ID.
	// The query is used as-is; callers normalise it.
	GetPokemon(ctx context.Context, query string) (*model.Record, error)

	// FetchImage downloads and decodes a sprite. Every failure is reported
	// with errors.CodeImageDecode.
	FetchImage(ctx context.Context, imageURL string) (image.Image, error)
}

// Config contains configuration options for the API client.
type Config struct {
	// BaseURL of the API (optional, defaults to https://pokeapi.co/api/v2)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 15 seconds)
	HTTPTimeout time.Duration
	// UserAgent sent with every request (optional)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", cfg.BaseURL, err)
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgumentf("http timeout must not be negative: %s", cfg.HTTPTimeout)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return nil
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a new API client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

// PokemonURL builds the endpoint URL for a query
func PokemonURL(baseURL, query string) string {
	return strings.TrimRight(baseURL, "/") + "/pokemon/" + url.PathEscape(query)
}

func (c *client) GetPokemon(ctx context.Context, query string) (*model.Record, error) {
	endpoint := PokemonURL(c.baseURL, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid query %q: %v", query, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	slog.DebugContext(ctx, "requesting record", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Network(err).WithMeta("query", query)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NotFound(errors.NotFoundMessage).WithMeta("query", query)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.HTTPStatus(resp.StatusCode).WithMeta("query", query)
	}

	var payload pokemonResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "invalid response for %q: %v", query, err)
	}

	return payload.toRecord(), nil
}

func (c *client) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, errors.ImageDecode(err, fmt.Sprintf("invalid sprite URL %q", imageURL))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ImageDecode(err, "sprite download failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.ImageDecode(nil, fmt.Sprintf("sprite HTTP %d", resp.StatusCode))
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.ImageDecode(err, "sprite decode failed")
	}

	slog.DebugContext(ctx, "sprite decoded",
		"url", imageURL,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	return img, nil
}
