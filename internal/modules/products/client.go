package products

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/harinagireddy-katta/DeKart/internal/shared/apperr"
)

const (
	DefaultEndpoint = "https://backend-gamma-silk.vercel.app/api/user/allprods"
	DefaultOrigin   = "https://frontend-amber-tau-20.vercel.app"
	DefaultTimeout  = 15 * time.Second

	// listingField is the top-level key holding the collection.
	listingField = "prods"
)

var ErrUnexpectedStatus = errors.New("unexpected listing status")

// LoadObserver receives one call per network load.
// status is "success" or "error".
type LoadObserver interface {
	ObserveLoad(status string, elapsed time.Duration, count int)
}

type ClientConfig struct {
	Endpoint string
	Origin   string
	Timeout  time.Duration

	// StrictStatus treats any non-2xx response as a failed load.
	// When false the body is decoded regardless of status.
	StrictStatus bool
}

// Client loads the listing collection from the marketplace backend.
type Client struct {
	cfg      ClientConfig
	http     *http.Client
	log      *slog.Logger
	observer LoadObserver
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func WithObserver(o LoadObserver) ClientOption {
	return func(c *Client) { c.observer = o }
}

func NewClient(cfg ClientConfig, opts ...ClientOption) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Origin == "" {
		cfg.Origin = DefaultOrigin
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load issues one GET against the listing endpoint. There is no retry.
func (c *Client) Load(ctx context.Context) ([]Product, error) {
	start := time.Now()
	items, err := c.load(ctx)
	elapsed := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
	}
	if c.observer != nil {
		c.observer.ObserveLoad(status, elapsed, len(items))
	}

	c.log.LogAttrs(ctx, slog.LevelDebug, "listing_load",
		slog.String("endpoint", c.cfg.Endpoint),
		slog.String("status", status),
		slog.Int("items", len(items)),
		slog.Duration("latency", elapsed),
	)
	return items, err
}

func (c *Client) load(ctx context.Context) ([]Product, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, http.NoBody)
	if err != nil {
		return nil, apperr.Wrap(fmt.Errorf("build listing request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", c.cfg.Origin)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.UpstreamErr(fmt.Errorf("fetch listing: %w", err))
	}
	defer resp.Body.Close()

	if c.cfg.StrictStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperr.UpstreamErr(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperr.UpstreamErr(fmt.Errorf("decode listing: %w", err))
	}

	items, err := DecodeListing(body)
	if err != nil {
		return nil, apperr.UpstreamErr(fmt.Errorf("decode listing: %w", err))
	}
	return items, nil
}

// DecodeListing extracts the collection from a listing response body.
// Any shape other than an object with an array under "prods" yields an
// empty collection. Records take whatever scalar types the backend sends;
// only a record that is not an object makes the whole decode fail.
func DecodeListing(body []byte) ([]Product, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, err
		}
		return []Product{}, nil
	}

	field := bytes.TrimSpace(obj[listingField])
	if len(field) == 0 || field[0] != '[' {
		return []Product{}, nil
	}

	var items []Product
	if err := json.Unmarshal(field, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []Product{}
	}
	return items, nil
}
