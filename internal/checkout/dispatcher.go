package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/parworldgolf/storefront-backend/internal/cart"
	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/pricing"
)

// Dispatcher orchestrates the checkout handoff: validate, build the order
// message, hand it to the channel, then clear the cart.
//
// Semantics are at-most-once with no delivery confirmation. The channel
// accepting the message counts as success; there is no server-side order
// record to confirm against. If the channel rejects the handoff the cart is
// left untouched so the customer can retry without re-entering items.
type Dispatcher struct {
	channel  Channel
	contacts *ContactCache
	clock    func() time.Time
	logger   *slog.Logger
}

// NewDispatcher creates a checkout dispatcher. clock supplies the order
// timestamp; pass time.Now in production.
func NewDispatcher(channel Channel, contacts *ContactCache, clock func() time.Time, logger *slog.Logger) *Dispatcher {
	if clock == nil {
		clock = time.Now
	}
	return &Dispatcher{
		channel:  channel,
		contacts: contacts,
		clock:    clock,
		logger:   logger,
	}
}

// Result reports a completed checkout handoff
type Result struct {
	WhatsAppURL string `json:"whatsapp_url"`
	TotalItems  int    `json:"total_items"`
	Total       string `json:"total"`
}

// Checkout validates the contact and cart, builds the order message, hands
// it to the channel and clears the cart. Validation failures and channel
// failures both leave the cart exactly as it was.
func (d *Dispatcher) Checkout(ctx context.Context, store *cart.Store, sessionID string, contact models.CustomerContact) (*Result, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	snapshot := store.Snapshot()
	if len(snapshot) == 0 {
		return nil, models.ErrInvalidInput("cart is empty")
	}

	message := BuildOrderMessage(snapshot, contact, d.clock())

	link, err := d.channel.Send(ctx, message)
	if err != nil {
		d.logger.Error("checkout handoff failed, cart preserved",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return nil, models.ErrDispatchWithMsg("failed to hand order to messaging channel", err)
	}

	totalItems := cart.TotalItems(snapshot)
	totalPrice := cart.TotalPrice(snapshot)

	// Handoff initiated: the order is out of our hands, clear the cart
	store.Clear(ctx)

	if err := d.contacts.Save(ctx, sessionID, contact); err != nil {
		// Contact caching is a convenience, not part of the checkout contract
		d.logger.Error("failed to cache customer contact",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	d.logger.Info("order handed off",
		slog.String("session_id", sessionID),
		slog.Int("total_items", totalItems),
		slog.Float64("total_price", totalPrice),
	)

	return &Result{
		WhatsAppURL: link,
		TotalItems:  totalItems,
		Total:       pricing.Format(totalPrice),
	}, nil
}

// SendInquiry hands a contact-form submission to the channel
func (d *Dispatcher) SendInquiry(ctx context.Context, form InquiryForm) (string, error) {
	if err := form.Validate(); err != nil {
		return "", err
	}

	link, err := d.channel.Send(ctx, BuildInquiryMessage(form))
	if err != nil {
		d.logger.Error("inquiry handoff failed",
			slog.String("error", err.Error()),
		)
		return "", models.ErrDispatchWithMsg("failed to hand inquiry to messaging channel", err)
	}

	return link, nil
}
