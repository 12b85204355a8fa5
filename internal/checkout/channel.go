package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Channel defines the interface for handing a message to the outbound
// conversation. Send returns a link the caller can open to continue the
// conversation; delivery is fire-and-forget with no receipt.
type Channel interface {
	Send(ctx context.Context, text string) (string, error)
}

// WhatsAppChannel hands messages off as pre-filled wa.me conversations
// addressed to a single configured shop number.
type WhatsAppChannel struct {
	number string
	logger *slog.Logger
}

// NewWhatsAppChannel creates a channel for the given destination number.
// The number may contain spaces, dashes or a leading plus; only the digits
// are kept.
func NewWhatsAppChannel(number string, logger *slog.Logger) (*WhatsAppChannel, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if digits == "" {
		return nil, fmt.Errorf("whatsapp number %q contains no digits", number)
	}

	return &WhatsAppChannel{number: digits, logger: logger}, nil
}

// Send builds the pre-filled conversation link for the message
func (c *WhatsAppChannel) Send(ctx context.Context, text string) (string, error) {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", c.number, url.QueryEscape(text))

	c.logger.Info("message handed to WhatsApp",
		slog.String("destination", c.number),
		slog.Int("length", len(text)),
	)

	return link, nil
}
