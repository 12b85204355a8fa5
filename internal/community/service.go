package community

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/parworldgolf/storefront-backend/internal/models"
)

// Service handles community membership business logic
type Service interface {
	Join(ctx context.Context, member *models.CommunityMember) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter models.MemberFilter) (*MemberListResult, error)
}

// MemberListResult represents paginated member list results
type MemberListResult struct {
	Data       []*models.CommunityMember `json:"data"`
	Pagination models.PaginationResult   `json:"pagination"`
}

type service struct {
	repo   MemberRepository
	logger *slog.Logger
}

// NewService creates a new community service
func NewService(repo MemberRepository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// Join registers a new community member. Each email joins once; a repeat
// signup is a conflict, not a duplicate row.
func (s *service) Join(ctx context.Context, member *models.CommunityMember) error {
	if err := member.Validate(); err != nil {
		return err
	}

	existing, err := s.repo.GetByEmail(ctx, member.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to check existing member: %w", err)
	}
	if existing != nil {
		return models.ErrConflictWithMsg("email already registered in our community")
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return err
	}

	s.logger.Info("community member joined",
		slog.Int64("member_id", member.ID),
		slog.String("email", member.Email),
	)

	return nil
}

// Count returns the number of active members
func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// List returns members with pagination
func (s *service) List(ctx context.Context, filter models.MemberFilter) (*MemberListResult, error) {
	models.ValidateAndSetDefaults(&filter.Page, &filter.PageSize)

	members, totalCount, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &MemberListResult{
		Data:       members,
		Pagination: models.NewPaginationResult(filter.Page, filter.PageSize, totalCount),
	}, nil
}
