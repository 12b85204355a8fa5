package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/parworldgolf/storefront-backend/internal/community"
	"github.com/parworldgolf/storefront-backend/internal/models"
)

// CommunityHandler handles community membership HTTP requests
type CommunityHandler struct {
	community community.Service
	logger    *slog.Logger
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(service community.Service, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{community: service, logger: logger}
}

// JoinCommunity handles POST /community/members
func (h *CommunityHandler) JoinCommunity(w http.ResponseWriter, r *http.Request) {
	var member models.CommunityMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
		return
	}

	if err := h.community.Join(r.Context(), &member); err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, member)
}

// MemberCount handles GET /community/members/count
func (h *CommunityHandler) MemberCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.community.Count(r.Context())
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, map[string]int64{"count": count})
}

// ListMembers handles GET /community/members
func (h *CommunityHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))

	filter := models.MemberFilter{
		Email:    query.Get("email"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.community.List(r.Context(), filter)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}
