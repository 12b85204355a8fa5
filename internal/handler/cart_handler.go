package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parworldgolf/storefront-backend/internal/cart"
	"github.com/parworldgolf/storefront-backend/internal/checkout"
	"github.com/parworldgolf/storefront-backend/internal/models"
	"github.com/parworldgolf/storefront-backend/internal/pricing"
)

// CartHandler handles cart and checkout HTTP requests
type CartHandler struct {
	carts      *cart.Manager
	dispatcher *checkout.Dispatcher
	contacts   *checkout.ContactCache
	logger     *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, dispatcher *checkout.Dispatcher, contacts *checkout.ContactCache, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:      carts,
		dispatcher: dispatcher,
		contacts:   contacts,
		logger:     logger,
	}
}

// CartView is the cart representation returned to the frontend
type CartView struct {
	Items      []models.CartLineItem `json:"items"`
	TotalItems int                   `json:"total_items"`
	TotalPrice float64               `json:"total_price"`
	Total      string                `json:"total"`
}

func newCartView(items []models.CartLineItem) CartView {
	totalPrice := cart.TotalPrice(items)
	return CartView{
		Items:      items,
		TotalItems: cart.TotalItems(items),
		TotalPrice: totalPrice,
		Total:      pricing.Format(totalPrice),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), SessionID(r))
	respondSuccess(w, newCartView(store.Snapshot()))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	store := h.carts.Get(r.Context(), SessionID(r))
	if err := store.Add(r.Context(), product); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, newCartView(store.Snapshot()))
}

// UpdateQuantityRequest represents a quantity update for a line item
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity handles PUT /cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	store := h.carts.Get(r.Context(), SessionID(r))
	store.SetQuantity(r.Context(), id, req.Quantity)

	respondSuccess(w, newCartView(store.Snapshot()))
}

// RemoveItem handles DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	store := h.carts.Get(r.Context(), SessionID(r))
	store.Remove(r.Context(), id)

	respondSuccess(w, newCartView(store.Snapshot()))
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), SessionID(r))
	store.Clear(r.Context())

	respondSuccess(w, newCartView(store.Snapshot()))
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var contact models.CustomerContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	sessionID := SessionID(r)
	store := h.carts.Get(r.Context(), sessionID)

	result, err := h.dispatcher.Checkout(r.Context(), store, sessionID, contact)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}

// GetCustomer handles GET /customer
func (h *CartHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contacts.Get(r.Context(), SessionID(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	if contact == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "No customer details cached for this session")
		return
	}

	respondSuccess(w, contact)
}

// SaveCustomer handles PUT /customer
func (h *CartHandler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var contact models.CustomerContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	if err := contact.Validate(); err != nil {
		handleError(w, err, h.logger)
		return
	}

	if err := h.contacts.Save(r.Context(), SessionID(r), contact); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, contact)
}

// ClearCustomer handles DELETE /customer
func (h *CartHandler) ClearCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.Clear(r.Context(), SessionID(r)); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// SendInquiry handles POST /contact
func (h *CartHandler) SendInquiry(w http.ResponseWriter, r *http.Request) {
	var form checkout.InquiryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	link, err := h.dispatcher.SendInquiry(r.Context(), form)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, map[string]string{"whatsapp_url": link})
}
