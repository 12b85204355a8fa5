package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parworldgolf/storefront-backend/internal/catalog"
	"github.com/parworldgolf/storefront-backend/internal/models"
)

// CatalogHandler handles product browsing HTTP requests
type CatalogHandler struct {
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: service, logger: logger}
}

// ProductListResponse wraps a product listing
type ProductListResponse struct {
	Data  []models.ProductRecord `json:"data"`
	Count int                    `json:"count"`
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.ProductFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}

	products, err := h.catalog.FetchVisible(r.Context(), filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, ProductListResponse{Data: products, Count: len(products)})
}

// FeaturedProducts handles GET /products/featured
func (h *CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.catalog.FetchFeatured(r.Context(), limit)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, ProductListResponse{Data: products, Count: len(products)})
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.catalog.FetchByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, product)
}

// ListCategories handles GET /products/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, map[string][]string{"categories": categories})
}
