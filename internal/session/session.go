// Package session manages the persisted seller identity. The manager is a
// two-state machine (logged out / logged in) backed by a Store holding a
// single serialized Seller record, read at startup and cleared on logout.
package session

import (
	"fmt"

	"romarket/internal/model"

	"github.com/rs/zerolog"
)

// Store persists a single seller record under a fixed key.
type Store interface {
	// Load reads the persisted seller. A missing record returns (nil, nil).
	Load() (*model.Seller, error)

	// Save persists the seller record, replacing any previous one.
	Save(seller *model.Seller) error

	// Clear removes the persisted record. Clearing an empty store is a no-op.
	Clear() error
}

// Manager gates dashboard access on a seller identity and keeps it in sync
// with the persisted store.
type Manager struct {
	store   Store
	current *model.Seller
	logger  zerolog.Logger
}

// NewManager creates a session manager over the given store, restoring a
// previously persisted seller if one exists. A corrupt or unreadable store
// is treated as logged out.
func NewManager(store Store, logger zerolog.Logger) *Manager {
	m := &Manager{
		store:  store,
		logger: logger.With().Str("component", "session").Logger(),
	}

	seller, err := store.Load()
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to restore persisted session")
		return m
	}
	if seller != nil {
		m.current = seller
		m.logger.Info().
			Int("seller_id", seller.ID).
			Str("username", seller.Username).
			Msg("session restored")
	}

	return m
}

// LoggedIn reports whether a seller is currently authenticated.
func (m *Manager) LoggedIn() bool {
	return m.current != nil
}

// Current returns the authenticated seller, or nil when logged out.
func (m *Manager) Current() *model.Seller {
	if m.current == nil {
		return nil
	}
	seller := *m.current
	return &seller
}

// Login transitions to the logged-in state and persists the seller for
// future restarts.
func (m *Manager) Login(seller model.Seller) error {
	if err := m.store.Save(&seller); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.current = &seller

	m.logger.Info().
		Int("seller_id", seller.ID).
		Str("username", seller.Username).
		Msg("seller logged in")

	return nil
}

// Logout transitions to the logged-out state and clears the persisted
// record. Logging out while already logged out is a no-op.
func (m *Manager) Logout() error {
	if m.current == nil {
		return nil
	}
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	m.logger.Info().Int("seller_id", m.current.ID).Msg("seller logged out")
	m.current = nil

	return nil
}
