// Package community manages newsletter/community signups.
package community

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/parworldgolf/storefront-backend/internal/models"
)

// MemberRepository defines the interface for community member data access
type MemberRepository interface {
	Create(ctx context.Context, member *models.CommunityMember) error
	GetByEmail(ctx context.Context, email string) (*models.CommunityMember, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter models.MemberFilter) ([]*models.CommunityMember, int64, error)
}

// memberRepository implements MemberRepository using PostgreSQL
type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new community member repository
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts a new community member
func (r *memberRepository) Create(ctx context.Context, member *models.CommunityMember) error {
	query := `
		INSERT INTO community_members (email, name, phone, interests, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, joined_at, is_active`

	err := r.db.QueryRowContext(
		ctx,
		query,
		member.Email,
		member.Name,
		member.Phone,
		pq.Array(member.Interests),
	).Scan(&member.ID, &member.JoinedAt, &member.IsActive)

	if err != nil {
		return fmt.Errorf("failed to create community member: %w", err)
	}

	return nil
}

// GetByEmail retrieves a member by email
func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*models.CommunityMember, error) {
	query := `
		SELECT id, email, name, phone, interests, joined_at, is_active
		FROM community_members
		WHERE email = $1`

	member := &models.CommunityMember{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&member.ID,
		&member.Email,
		&member.Name,
		&member.Phone,
		pq.Array(&member.Interests),
		&member.JoinedAt,
		&member.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("member with email %s not found", email))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}

	return member, nil
}

// Count returns the number of active community members
func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM community_members WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count community members: %w", err)
	}
	return count, nil
}

// List retrieves members with pagination and filtering
func (r *memberRepository) List(ctx context.Context, filter models.MemberFilter) ([]*models.CommunityMember, int64, error) {
	models.ValidateAndSetDefaults(&filter.Page, &filter.PageSize)

	query := `
		SELECT id, email, name, phone, interests, joined_at, is_active
		FROM community_members
		WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM community_members WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Email != "" {
		query += fmt.Sprintf(" AND email LIKE $%d", argPos)
		countQuery += fmt.Sprintf(" AND email LIKE $%d", argPos)
		args = append(args, "%"+filter.Email+"%")
		argPos++
	}

	var totalCount int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	offset := models.CalculateOffset(filter.Page, filter.PageSize)
	query += fmt.Sprintf(" ORDER BY joined_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*models.CommunityMember{}
	for rows.Next() {
		member := &models.CommunityMember{}
		err := rows.Scan(
			&member.ID,
			&member.Email,
			&member.Name,
			&member.Phone,
			pq.Array(&member.Interests),
			&member.JoinedAt,
			&member.IsActive,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating members: %w", err)
	}

	return members, totalCount, nil
}
