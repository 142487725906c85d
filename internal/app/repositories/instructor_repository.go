package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/db"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/logger"
)

// InstructorRepository handles the instructor document collection
type InstructorRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(q db.Querier) *InstructorRepository {
	return &InstructorRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FetchAll retrieves every instructor document ordered by stored name
// (store-side byte order, not locale-aware) and coerces each into a valid
// record.
//
// Any read failure degrades to an empty list: callers cannot distinguish an
// unreachable store from a truly empty collection. This mirrors the source
// system's availability tradeoff and is pinned by the test suite; the warn
// log is the only place the difference is visible.
func (r *InstructorRepository) FetchAll(ctx context.Context) []models.Instructor {
	sql, args, err := r.sb.Select("id", "doc").
		From("instructors").
		OrderBy("doc->>'name' ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building fetch instructors SQL")
		return []models.Instructor{}
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Warn().Err(err).Msg("Instructor fetch failed, returning empty list")
		return []models.Instructor{}
	}
	defer rows.Close()

	instructors := []models.Instructor{}
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			logger.Warn().Err(err).Msg("Instructor row scan failed, returning empty list")
			return []models.Instructor{}
		}

		var fields map[string]any
		if err := json.Unmarshal(doc, &fields); err != nil {
			// Coercion handles a nil bag; the record loads with defaults
			logger.Warn().Err(err).Str("instructorID", id).Msg("Malformed instructor document")
			fields = nil
		}
		instructors = append(instructors, models.CoerceInstructor(id, fields))
	}

	if err := rows.Err(); err != nil {
		logger.Warn().Err(err).Msg("Instructor row iteration failed, returning empty list")
		return []models.Instructor{}
	}

	return instructors
}

// Save upserts the full record at its id. The document carries explicit
// nulls for absent optional fields, so overwriting clears prior values.
func (r *InstructorRepository) Save(ctx context.Context, inst models.Instructor) error {
	doc, err := json.Marshal(inst.Document())
	if err != nil {
		logger.Error().Err(err).Str("instructorID", inst.ID).Msg("Error encoding instructor document")
		return fmt.Errorf("%w: encoding instructor document: %v", apperrors.ErrStoreWriteFailed, err)
	}

	sql, args, err := r.sb.Insert("instructors").
		Columns("id", "doc").
		Values(inst.ID, doc).
		Suffix("ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save instructor SQL")
		return fmt.Errorf("%w: building save query: %v", apperrors.ErrStoreWriteFailed, err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("instructorID", inst.ID).Msg("Error executing save instructor query")
		return fmt.Errorf("%w: saving instructor %s: %v", apperrors.ErrStoreWriteFailed, inst.ID, err)
	}

	return nil
}

// Delete removes the document at the given id. Deleting a missing id is not
// an error.
func (r *InstructorRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete instructor SQL")
		return fmt.Errorf("%w: building delete query: %v", apperrors.ErrStoreWriteFailed, err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("instructorID", id).Msg("Error executing delete instructor query")
		return fmt.Errorf("%w: deleting instructor %s: %v", apperrors.ErrStoreWriteFailed, id, err)
	}

	return nil
}
