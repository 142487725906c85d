package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/app/repositories"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/logger"
)

// TimetableService manages the external timetable links shown on
// center/category pages.
type TimetableService struct {
	timetableRepo *repositories.TimetableRepository
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(timetableRepo *repositories.TimetableRepository) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
	}
}

// Get returns the stored URL for a center/category pair. A missing or blank
// entry reports found=false without an error.
func (s *TimetableService) Get(ctx context.Context, centerName, categoryName string) (string, bool, error) {
	if err := validateTimetableKey(centerName, categoryName); err != nil {
		return "", false, err
	}
	return s.timetableRepo.Get(ctx, centerName, categoryName)
}

// List returns every stored timetable URL entry
func (s *TimetableService) List(ctx context.Context) []models.TimetableURLEntry {
	return s.timetableRepo.List(ctx)
}

// Set stores the trimmed URL for a center/category pair. Setting a blank
// URL is allowed and is equivalent to clearing the link.
func (s *TimetableService) Set(ctx context.Context, centerName, categoryName, url string) error {
	if err := validateTimetableKey(centerName, categoryName); err != nil {
		return err
	}

	if err := s.timetableRepo.Upsert(ctx, centerName, categoryName, url); err != nil {
		return err
	}

	logger.Info().Str("centerName", centerName).Str("categoryName", categoryName).Msg("Timetable URL set")
	return nil
}

// Remove deletes the timetable URL for a center/category pair. Removing a
// missing entry succeeds.
func (s *TimetableService) Remove(ctx context.Context, centerName, categoryName string) error {
	if err := validateTimetableKey(centerName, categoryName); err != nil {
		return err
	}

	if err := s.timetableRepo.Delete(ctx, centerName, categoryName); err != nil {
		return err
	}

	logger.Info().Str("centerName", centerName).Str("categoryName", categoryName).Msg("Timetable URL removed")
	return nil
}

func validateTimetableKey(centerName, categoryName string) error {
	if strings.TrimSpace(centerName) == "" || strings.TrimSpace(categoryName) == "" {
		return fmt.Errorf("%w: center and category names are required", apperrors.ErrValidationFailed)
	}
	return nil
}
