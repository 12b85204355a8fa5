// Package checkout turns a session cart into an order handed off to the
// shop's WhatsApp conversation. There is no payment step and no server-side
// order record: the handoff message is the order.
package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/parworldgolf/storefront-backend/internal/cart"
	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/pricing"
)

// FallbackCondition is rendered when a line item carries no condition label
const FallbackCondition = "Premium Quality"

// BuildOrderMessage renders the order summary sent to the shop.
//
// The layout is fixed: greeting, customer details (email and location lines
// only when present), one bullet per line item with brand, condition, unit
// price, quantity and line subtotal, the grand total, and the order date
// taken from the injected clock value. The builder reads no ambient state,
// so the same inputs always produce the same message.
//
// The builder assumes a non-empty cart and contact; callers validate first.
// Given degenerate input it still produces a well-formed message with a
// "(no items)" body rather than failing.
func BuildOrderMessage(items []models.CartLineItem, contact models.CustomerContact, now time.Time) string {
	var b strings.Builder

	b.WriteString("Hi! I'd like to place an order:\n\n")

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", contact.Name)
	fmt.Fprintf(&b, "Phone: %s\n", contact.Phone)
	if contact.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", contact.Email)
	}
	if contact.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", contact.Location)
	}

	b.WriteString("\n*Order Items:*\n")
	if len(items) == 0 {
		b.WriteString("(no items)\n")
	}
	for _, item := range items {
		name := item.Name
		if item.Brand != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.Brand)
		}

		condition := item.Condition
		if condition == "" {
			condition = FallbackCondition
		}

		subtotal := item.Price * float64(item.Quantity)
		fmt.Fprintf(&b, "• %s - %s - %s x%d = %s\n",
			name,
			condition,
			pricing.Format(item.Price),
			item.Quantity,
			pricing.Format(subtotal),
		)
	}

	fmt.Fprintf(&b, "\n*Total: %s*\n", pricing.Format(cart.TotalPrice(items)))
	fmt.Fprintf(&b, "Total Items: %d\n", cart.TotalItems(items))
	fmt.Fprintf(&b, "Order date: %s\n", now.Format("2 Jan 2006 15:04"))

	b.WriteString("\nPlease confirm my order. Thank you!")

	return b.String()
}

// InquiryForm carries a contact-page submission
type InquiryForm struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Validate checks the fields required for an inquiry
func (f *InquiryForm) Validate() error {
	if f.Name == "" {
		return models.ErrInvalidInput("name is required")
	}
	if f.Message == "" {
		return models.ErrInvalidInput("message is required")
	}
	return nil
}

// BuildInquiryMessage renders a contact-form submission for the shop's
// WhatsApp conversation.
func BuildInquiryMessage(form InquiryForm) string {
	var b strings.Builder

	b.WriteString("*New Contact Form Submission*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", form.Name)
	fmt.Fprintf(&b, "*Email:* %s\n", form.Email)
	fmt.Fprintf(&b, "*Phone:* %s\n", form.Phone)
	fmt.Fprintf(&b, "*Subject:* %s\n", form.Subject)
	fmt.Fprintf(&b, "\n*Message:*\n%s", form.Message)

	return b.String()
}
