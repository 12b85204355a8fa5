package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/session"
)

// ContactKeyNamespace is the fixed namespace under which customer contact
// details are cached per session
const ContactKeyNamespace = "parworld_golf_customer"

// ContactKey returns the session-store key for a session's cached contact
func ContactKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", ContactKeyNamespace, sessionID)
}

// ContactCache persists the customer contact for the current session so a
// returning visitor does not retype it at checkout.
type ContactCache struct {
	persist session.Store
	logger  *slog.Logger
}

// NewContactCache creates a contact cache backed by the given session store
func NewContactCache(persist session.Store, logger *slog.Logger) *ContactCache {
	return &ContactCache{persist: persist, logger: logger}
}

// Get returns the cached contact for a session, or nil when none is cached.
// Corrupt stored data is cleared and treated as absent.
func (c *ContactCache) Get(ctx context.Context, sessionID string) (*models.CustomerContact, error) {
	data, err := c.persist.Get(ctx, ContactKey(sessionID))
	if err == session.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}

	var contact models.CustomerContact
	if err := json.Unmarshal(data, &contact); err != nil {
		c.logger.Error("corrupt contact data, clearing key",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		if delErr := c.persist.Delete(ctx, ContactKey(sessionID)); delErr != nil {
			c.logger.Error("failed to clear corrupt contact key",
				slog.String("error", delErr.Error()),
			)
		}
		return nil, nil
	}

	return &contact, nil
}

// Save caches the contact for a session
func (c *ContactCache) Save(ctx context.Context, sessionID string, contact models.CustomerContact) error {
	data, err := json.Marshal(contact)
	if err != nil {
		return fmt.Errorf("failed to serialize contact: %w", err)
	}
	if err := c.persist.Set(ctx, ContactKey(sessionID), data); err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

// Clear removes the cached contact for a session
func (c *ContactCache) Clear(ctx context.Context, sessionID string) error {
	return c.persist.Delete(ctx, ContactKey(sessionID))
}
