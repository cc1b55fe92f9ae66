package database

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xdpzq/devcore/pkg/domain"
)

const (
	CollectionUsers    = "users"
	CollectionSettings = "settings"
	CollectionHistory  = "history"

	defaultConnectLatency = 800 * time.Millisecond
)

// Client owns the three logical collections. It mimics a hosted document
// database driver: Connect must be called once before use and is a no-op
// on subsequent calls.
type Client struct {
	Users    *Collection[domain.User]
	Settings *Collection[domain.GlobalSettings]
	History  *Collection[domain.ChatSession]

	endpoint string
	latency  time.Duration

	mu        sync.Mutex
	connected bool
}

type Option func(*Client)

// WithConnectLatency overrides the simulated connection latency.
func WithConnectLatency(d time.Duration) Option {
	return func(c *Client) { c.latency = d }
}

func NewClient(kv KV, endpoint string, opts ...Option) *Client {
	c := &Client{
		Users:    NewCollection[domain.User](kv, CollectionUsers),
		Settings: NewCollection[domain.GlobalSettings](kv, CollectionSettings),
		History:  NewCollection[domain.ChatSession](kv, CollectionHistory),
		endpoint: endpoint,
		latency:  defaultConnectLatency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes the (simulated) connection. Idempotent: after the
// first call it returns immediately with no further latency or logging.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	slog.Info("attempting database connection", "endpoint", c.endpoint)

	select {
	case <-time.After(c.latency):
	case <-ctx.Done():
		return ctx.Err()
	}

	c.connected = true
	slog.Info("database connection established")
	return nil
}
