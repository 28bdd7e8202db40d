// Package maintenance decides whether the downtime page covers the application.
package maintenance

import (
	"log/slog"
	"sync"

	"moviehub/internal/domain/preferences"
)

// TokenKey marks in session storage that the downtime page was shown at least
// once in this session
const TokenKey = "downtimeToken"

// Status is the gate state reported to the frontend
type Status struct {
	Enabled bool   `json:"enabled"`
	Showing bool   `json:"showing"`
	Window  string `json:"window"`
}

// Gate covers the application with the downtime page while maintenance is
// enabled. Every new gate starts showing; only Dismiss hides it.
type Gate struct {
	mu      sync.Mutex
	enabled bool
	window  string
	showing bool
	session preferences.Storage
	logger  *slog.Logger
}

// NewGate builds a gate that is showing whenever maintenance is enabled and
// records the session token the first time that happens
func NewGate(enabled bool, window string, session preferences.Storage, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gate{
		enabled: enabled,
		window:  window,
		showing: enabled,
		session: session,
		logger:  logger,
	}
	g.evaluate()
	return g
}

func (g *Gate) evaluate() {
	if !g.enabled {
		return
	}

	_, seen, err := g.session.GetItem(TokenKey)
	if err != nil {
		g.logger.Warn("Failed to read session token", "key", TokenKey, "error", err)
	}
	if seen {
		return
	}

	if err := g.session.SetItem(TokenKey, "true"); err != nil {
		g.logger.Warn("Failed to record session token", "key", TokenKey, "error", err)
	}
}

// Showing reports whether the downtime page currently replaces the routes
func (g *Gate) Showing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.showing
}

// Dismiss hides the downtime page for the rest of the session
func (g *Gate) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.showing = false
}

func (g *Gate) Window() string {
	return g.window
}

func (g *Gate) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Status{
		Enabled: g.enabled,
		Showing: g.showing,
		Window:  g.window,
	}
}
