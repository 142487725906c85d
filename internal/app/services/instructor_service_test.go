package services

import (
	"context"
	"strconv"
	"strings"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/app/repositories"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
)

func newInstructorService(t *testing.T) (*InstructorService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewInstructorService(repositories.NewInstructorRepository(mock)), mock
}

func TestInstructorServiceSaveValidation(t *testing.T) {
	tests := []struct {
		name string
		inst models.Instructor
	}{
		{"missing name", models.Instructor{CurrentCenter: "문화체육센터", Category: "수영", Position: "강사"}},
		{"blank name", models.Instructor{Name: "   ", CurrentCenter: "문화체육센터", Category: "수영", Position: "강사"}},
		{"missing center", models.Instructor{Name: "김수진", Category: "수영", Position: "강사"}},
		{"missing category", models.Instructor{Name: "김수진", CurrentCenter: "문화체육센터", Position: "강사"}},
		{"missing position", models.Instructor{Name: "김수진", CurrentCenter: "문화체육센터", Category: "수영"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newInstructorService(t)

			_, err := svc.Save(context.Background(), tt.inst)

			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			// Validation rejects before any store interaction
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInstructorServiceSaveAssignsID(t *testing.T) {
	svc, mock := newInstructorService(t)

	mock.ExpectExec(`INSERT INTO instructors`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := svc.Save(context.Background(), models.Instructor{
		Name:          "김수진",
		CurrentCenter: "문화체육센터",
		Category:      "수영",
		Position:      "강사",
	})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(saved.ID, "inst"))
	// The suffix is a millisecond timestamp
	_, err = strconv.ParseInt(strings.TrimPrefix(saved.ID, "inst"), 10, 64)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorServiceSaveKeepsExistingID(t *testing.T) {
	svc, mock := newInstructorService(t)

	mock.ExpectExec(`INSERT INTO instructors`).
		WithArgs("inst42", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := svc.Save(context.Background(), models.Instructor{
		ID:            "inst42",
		Name:          "김수진",
		CurrentCenter: "문화체육센터",
		Category:      "수영",
		Position:      "강사",
	})

	require.NoError(t, err)
	assert.Equal(t, "inst42", saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorServiceDeleteRequiresID(t *testing.T) {
	svc, mock := newInstructorService(t)

	err := svc.Delete(context.Background(), "  ")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorServiceListPipeline(t *testing.T) {
	svc, mock := newInstructorService(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("inst1", []byte(`{"name":"하준호","currentCenter":"문화체육센터","category":"수영","position":"강사"}`)).
		AddRow("inst2", []byte(`{"name":"김수진","currentCenter":"문화체육센터","category":"수영","position":"강사"}`)).
		AddRow("inst3", []byte(`{"name":"박지훈","currentCenter":"용산청소년센터","category":"헬스","position":"트레이너"}`))
	mock.ExpectQuery(`SELECT id, doc FROM instructors`).WillReturnRows(rows)

	got := svc.List(context.Background(), "문화체육센터", "수영", "")

	// Filtered to the center/category pair and re-sorted by name
	require.Len(t, got, 2)
	assert.Equal(t, "김수진", got[0].Name)
	assert.Equal(t, "하준호", got[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorServiceListSearchComposes(t *testing.T) {
	svc, mock := newInstructorService(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("inst1", []byte(`{"name":"김수진","currentCenter":"문화체육센터","category":"수영","position":"강사"}`)).
		AddRow("inst2", []byte(`{"name":"박지훈","currentCenter":"문화체육센터","category":"수영","position":"보조 강사"}`))
	mock.ExpectQuery(`SELECT id, doc FROM instructors`).WillReturnRows(rows)

	got := svc.List(context.Background(), "문화체육센터", "", "보조")

	require.Len(t, got, 1)
	assert.Equal(t, "박지훈", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorServiceOverview(t *testing.T) {
	svc, mock := newInstructorService(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("inst1", []byte(`{"name":"박지훈","currentCenter":"용산청소년센터","category":"헬스","position":"트레이너"}`)).
		AddRow("inst2", []byte(`{"name":"김수진","currentCenter":"문화체육센터","category":"수영","position":"강사"}`))
	mock.ExpectQuery(`SELECT id, doc FROM instructors`).WillReturnRows(rows)

	groups := svc.Overview(context.Background())

	// Reference display order puts 문화체육센터 first
	require.Len(t, groups, 2)
	assert.Equal(t, "문화체육센터", groups[0].Center)
	assert.Equal(t, "용산청소년센터", groups[1].Center)
	assert.NoError(t, mock.ExpectationsWereMet())
}
