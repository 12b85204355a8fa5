package models

import "time"

// Condition and gender fallbacks applied when a catalog document omits them
const (
	DefaultCondition = "Used"
	DefaultGender    = "Unisex"
)

// ProductRecord represents a golf item as stored in the catalog collection.
// Price is kept as the raw stored string ("45000", "KSh 45,000", or absent);
// the pricing package owns parsing and display.
type ProductRecord struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Brand       string    `json:"brand,omitempty" bson:"brand,omitempty"`
	Units       string    `json:"units,omitempty" bson:"units,omitempty"`
	Price       string    `json:"price,omitempty" bson:"price,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Condition   string    `json:"condition" bson:"condition,omitempty"`
	Gender      string    `json:"gender" bson:"gender,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURLs   []string  `json:"image_urls" bson:"imageUrls,omitempty"`
	IsComplete  bool      `json:"is_complete" bson:"isComplete,omitempty"`
	IsVisible   bool      `json:"is_visible" bson:"isVisible,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty" bson:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"createdAt,omitempty"`
}

// ApplyDefaults fills the fields the catalog guarantees to callers
func (p *ProductRecord) ApplyDefaults() {
	if p.Condition == "" {
		p.Condition = DefaultCondition
	}
	if p.Gender == "" {
		p.Gender = DefaultGender
	}
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
}

// FirstImageURL returns the first product image, or "" when there is none
func (p *ProductRecord) FirstImageURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// ProductFilter holds filtering options for listing catalog items
type ProductFilter struct {
	Category string
	Search   string
}
