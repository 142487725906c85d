package services

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongsanfmc/instructor-directory/internal/app/repositories"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
)

func newTimetableService(t *testing.T) (*TimetableService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewTimetableService(repositories.NewTimetableRepository(mock)), mock
}

func TestTimetableServiceKeyValidation(t *testing.T) {
	svc, mock := newTimetableService(t)

	_, _, err := svc.Get(context.Background(), "", "수영")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Set(context.Background(), "문화체육센터", "  ", "https://x")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Remove(context.Background(), "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// No store interaction for rejected keys
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableServiceSetBlankURLAllowed(t *testing.T) {
	svc, mock := newTimetableService(t)

	mock.ExpectExec(`INSERT INTO timetable_urls`).
		WithArgs("문화체육센터_수영", "문화체육센터", "수영", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := svc.Set(context.Background(), "문화체육센터", "수영", "   ")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
