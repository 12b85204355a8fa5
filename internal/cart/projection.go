package cart

import "github.com/parworldgolf/storefront-backend/internal/models"

// TotalItems returns the sum of quantities over a snapshot
func TotalItems(items []models.CartLineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price x quantity over a snapshot
func TotalPrice(items []models.CartLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
