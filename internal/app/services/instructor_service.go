package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/app/query"
	"github.com/yongsanfmc/instructor-directory/internal/app/reference"
	"github.com/yongsanfmc/instructor-directory/internal/app/repositories"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/logger"
)

// InstructorService implements instructor listing, search and admin
// maintenance operations.
type InstructorService struct {
	instructorRepo *repositories.InstructorRepository
}

// NewInstructorService creates a new InstructorService
func NewInstructorService(instructorRepo *repositories.InstructorRepository) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
	}
}

// List returns instructors narrowed by the optional center, category and
// search term, sorted by name with Korean collation. Filters compose: the
// center/category narrowing applies first, then the search term.
func (s *InstructorService) List(ctx context.Context, centerName, categoryName, term string) []models.Instructor {
	instructors := s.instructorRepo.FetchAll(ctx)
	instructors = query.FilterByCenterAndCategory(instructors, centerName, categoryName)
	instructors = query.SearchText(instructors, term)
	return query.SortByName(instructors)
}

// Overview groups the full collection by center, then by category within
// each center, following the reference display order. Centers and
// categories without instructors are omitted.
func (s *InstructorService) Overview(ctx context.Context) []query.CenterGroup {
	instructors := s.instructorRepo.FetchAll(ctx)
	return query.GroupByCenterThenCategory(instructors, reference.CenterNames(), reference.CategoryNames())
}

// Save validates and persists an instructor record. A blank id means a new
// record; the service assigns a timestamp-derived id before writing. The
// write replaces the whole document, so omitted optional fields clear any
// previously stored values.
func (s *InstructorService) Save(ctx context.Context, inst models.Instructor) (models.Instructor, error) {
	if err := validateInstructor(inst); err != nil {
		return models.Instructor{}, err
	}

	if strings.TrimSpace(inst.ID) == "" {
		inst.ID = newInstructorID()
	}

	if err := s.instructorRepo.Save(ctx, inst); err != nil {
		return models.Instructor{}, err
	}

	logger.Info().Str("instructorID", inst.ID).Str("name", inst.Name).Msg("Instructor saved")
	return inst, nil
}

// Delete removes an instructor record. Deleting an unknown id succeeds.
func (s *InstructorService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: instructor id is required", apperrors.ErrValidationFailed)
	}

	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("instructorID", id).Msg("Instructor deleted")
	return nil
}

func validateInstructor(inst models.Instructor) error {
	var missing []string
	if strings.TrimSpace(inst.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(inst.CurrentCenter) == "" {
		missing = append(missing, "currentCenter")
	}
	if strings.TrimSpace(inst.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(inst.Position) == "" {
		missing = append(missing, "position")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidationFailed, strings.Join(missing, ", "))
	}
	return nil
}

// newInstructorID derives an id from the current wall clock in
// milliseconds. Collisions require two creations within the same
// millisecond, which the single admin console does not produce.
func newInstructorID() string {
	return "inst" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
