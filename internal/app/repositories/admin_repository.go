package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/db"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/logger"
)

// AdminRepository handles console admin accounts
type AdminRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(q db.Querier) *AdminRepository {
	return &AdminRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByEmail finds an admin account by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "email", "password_hash", "created_at").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building admin lookup query: %w", err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error looking up admin by email")
		return nil, fmt.Errorf("%w: looking up admin: %v", apperrors.ErrStoreUnavailable, err)
	}

	return &admin, nil
}

// GetByID finds an admin account by id
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "email", "password_hash", "created_at").
		From("admins").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building admin lookup query: %w", err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error looking up admin by id")
		return nil, fmt.Errorf("%w: looking up admin: %v", apperrors.ErrStoreUnavailable, err)
	}

	return &admin, nil
}

// EmailExists checks whether an admin account with the email already exists
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building admin existence query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error checking admin existence")
		return false, fmt.Errorf("%w: checking admin existence: %v", apperrors.ErrStoreUnavailable, err)
	}

	return count > 0, nil
}

// CreateAdmin inserts a new admin account and returns its assigned id
func (r *AdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("email", "password_hash").
		Values(admin.Email, admin.PasswordHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building admin insert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("email", admin.Email).Msg("Error creating admin")
		return 0, fmt.Errorf("%w: creating admin: %v", apperrors.ErrStoreWriteFailed, err)
	}

	return id, nil
}
