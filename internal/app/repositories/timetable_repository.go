package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/db"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/logger"
)

// TimetableRepository handles timetable URL documents keyed by the
// center/category composite id.
type TimetableRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(q db.Querier) *TimetableRepository {
	return &TimetableRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get performs a point read for the given center/category pair. Absence of
// the document, or a document without a url value, reports found=false
// rather than an error.
func (r *TimetableRepository) Get(ctx context.Context, centerName, categoryName string) (string, bool, error) {
	sql, args, err := r.sb.Select("url").
		From("timetable_urls").
		Where(squirrel.Eq{"id": models.TimetableDocID(centerName, categoryName)}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("building timetable lookup query: %w", err)
	}

	var url *string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&url); err != nil {
		if err == pgx.ErrNoRows {
			return "", false, nil
		}
		logger.Error().Err(err).Str("centerName", centerName).Str("categoryName", categoryName).
			Msg("Error looking up timetable URL")
		return "", false, fmt.Errorf("%w: looking up timetable URL: %v", apperrors.ErrStoreUnavailable, err)
	}

	if url == nil || *url == "" {
		return "", false, nil
	}
	return *url, true, nil
}

// List returns every stored timetable URL entry, including ones whose url
// is blank. Read failures degrade to an empty list with a warn log, the
// same availability tradeoff the instructor collection makes.
func (r *TimetableRepository) List(ctx context.Context) []models.TimetableURLEntry {
	sql, args, err := r.sb.Select(
		"COALESCE(center_name, '')",
		"COALESCE(category_name, '')",
		"COALESCE(url, '')",
	).From("timetable_urls").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building timetable list SQL")
		return []models.TimetableURLEntry{}
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Warn().Err(err).Msg("Timetable URL fetch failed, returning empty list")
		return []models.TimetableURLEntry{}
	}
	defer rows.Close()

	entries := []models.TimetableURLEntry{}
	for rows.Next() {
		var e models.TimetableURLEntry
		if err := rows.Scan(&e.CenterName, &e.CategoryName, &e.URL); err != nil {
			logger.Warn().Err(err).Msg("Timetable URL row scan failed, returning empty list")
			return []models.TimetableURLEntry{}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		logger.Warn().Err(err).Msg("Timetable URL row iteration failed, returning empty list")
		return []models.TimetableURLEntry{}
	}

	return entries
}

// Upsert writes the trimmed url together with its center and category names
// at the composite id.
func (r *TimetableRepository) Upsert(ctx context.Context, centerName, categoryName, url string) error {
	url = strings.TrimSpace(url)

	sql, args, err := r.sb.Insert("timetable_urls").
		Columns("id", "center_name", "category_name", "url").
		Values(models.TimetableDocID(centerName, categoryName), centerName, categoryName, url).
		Suffix("ON CONFLICT (id) DO UPDATE SET center_name = EXCLUDED.center_name, category_name = EXCLUDED.category_name, url = EXCLUDED.url").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: building timetable upsert query: %v", apperrors.ErrStoreWriteFailed, err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("centerName", centerName).Str("categoryName", categoryName).
			Msg("Error upserting timetable URL")
		return fmt.Errorf("%w: upserting timetable URL: %v", apperrors.ErrStoreWriteFailed, err)
	}

	return nil
}

// Delete removes the timetable URL document for the pair. Deleting a missing
// pair is not an error.
func (r *TimetableRepository) Delete(ctx context.Context, centerName, categoryName string) error {
	sql, args, err := r.sb.Delete("timetable_urls").
		Where(squirrel.Eq{"id": models.TimetableDocID(centerName, categoryName)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: building timetable delete query: %v", apperrors.ErrStoreWriteFailed, err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("centerName", centerName).Str("categoryName", categoryName).
			Msg("Error deleting timetable URL")
		return fmt.Errorf("%w: deleting timetable URL: %v", apperrors.ErrStoreWriteFailed, err)
	}

	return nil
}
