// Package session keeps per-shopper storefront sessions in memory.
// Nothing is persisted: sessions vanish when they end, idle out, or the
// process stops.
package session

import (
	"context"
	"sync"
	"time"

	"brandbear/internal/assistant"
	"brandbear/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config holds session lifecycle settings.
type Config struct {
	// IdleTimeout is how long a session may go untouched before it is swept.
	IdleTimeout time.Duration

	// SweepInterval is how often idle sessions are looked for.
	SweepInterval time.Duration

	// SizeErrorDelay is how long the size-error flag stays raised.
	SizeErrorDelay time.Duration
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		IdleTimeout:    time.Hour,
		SweepInterval:  time.Minute,
		SizeErrorDelay: 2 * time.Second,
	}
}

// Manager creates, finds and expires sessions.
type Manager struct {
	cfg       Config
	assistant *assistant.Client
	logger    zerolog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a new session manager.
func NewManager(cfg Config, assistantClient *assistant.Client, logger zerolog.Logger) *Manager {
	defaults := DefaultConfig()
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaults.IdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaults.SweepInterval
	}
	if cfg.SizeErrorDelay <= 0 {
		cfg.SizeErrorDelay = defaults.SizeErrorDelay
	}

	return &Manager{
		cfg:       cfg,
		assistant: assistantClient,
		logger:    logger.With().Str("component", "session-manager").Logger(),
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Create starts a new session with an empty cart and a seeded transcript.
func (m *Manager) Create() *Session {
	s := newSession(uuid.New(), m.assistant.NewConversation(), m.cfg.SizeErrorDelay, m.now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Debug().
		Str("session_id", s.ID.String()).
		Int("active_sessions", count).
		Msg("session created")

	return s
}

// Get returns the session and marks it as active.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, model.ErrSessionNotFound
	}

	s.touch(m.now())
	return s, nil
}

// Delete ends a session. It reports whether the session existed.
func (m *Manager) Delete(id uuid.UUID) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.close()
		m.logger.Debug().Str("session_id", id.String()).Msg("session ended")
	}
	return ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the idle timeout and returns
// how many were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.cfg.IdleTimeout)

	var expired []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.close()
	}

	if len(expired) > 0 {
		m.logger.Info().Int("expired", len(expired)).Msg("idle sessions swept")
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is cancelled, then ends every session.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Close ends every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}

	m.logger.Info().Int("closed", len(sessions)).Msg("session manager closed")
}
