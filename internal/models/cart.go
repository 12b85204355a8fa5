package models

// Product carries the subset of a catalog record that the cart consumes.
// It is the input to Store.Add; quantity is managed by the cart itself.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Brand     string  `json:"brand,omitempty"`
	Condition string  `json:"condition,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// Validate performs basic validation on a product before it enters the cart
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrInvalidInput("product id is required")
	}
	if p.Name == "" {
		return ErrInvalidInput("product name is required")
	}
	if p.Price < 0 {
		return ErrInvalidInput("product price cannot be negative")
	}
	return nil
}

// CartLineItem is one product entry in a cart with an aggregated quantity.
//
// Line items are deduplicated by ID: adding the same product again only
// increments Quantity. All other fields are snapshotted from the first add
// and deliberately never overwritten afterwards, so a catalog edit mid-session
// cannot make the cart display inconsistent (staleness is the accepted cost).
type CartLineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Brand     string  `json:"brand,omitempty"`
	Condition string  `json:"condition,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CustomerContact holds the contact details supplied at checkout time.
// It is ephemeral: required only for building the order message, optionally
// cached in the session store for convenience.
type CustomerContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
}

// Validate checks the fields required at checkout time
func (c *CustomerContact) Validate() error {
	if c.Name == "" {
		return ErrInvalidInput("name is required")
	}
	if c.Phone == "" {
		return ErrInvalidInput("phone is required")
	}
	return nil
}
