package repositories

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yongsanfmc/instructor-directory/internal/app/models"
	"github.com/yongsanfmc/instructor-directory/internal/pkg/apperrors"
)

func newInstructorRepo(t *testing.T) (*InstructorRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewInstructorRepository(mock), mock
}

func TestInstructorRepositoryFetchAll(t *testing.T) {
	repo, mock := newInstructorRepo(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("inst1", []byte(`{"name":"김수진","currentCenter":"문화체육센터","category":"수영","position":"강사","gender":"female","assignedClasses":["새벽 수영"]}`)).
		AddRow("inst2", []byte(`{"name":"박지훈"}`))
	mock.ExpectQuery(`SELECT id, doc FROM instructors ORDER BY doc->>'name' ASC`).
		WillReturnRows(rows)

	got := repo.FetchAll(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "inst1", got[0].ID)
	assert.Equal(t, "김수진", got[0].Name)
	assert.Equal(t, "문화체육센터", got[0].CurrentCenter)
	require.NotNil(t, got[0].Gender)
	assert.Equal(t, models.GenderFemale, *got[0].Gender)
	assert.Equal(t, []string{"새벽 수영"}, got[0].AssignedClasses)

	// Sparse document still loads with defaults
	assert.Equal(t, "박지훈", got[1].Name)
	assert.Equal(t, "", got[1].CurrentCenter)
	assert.Equal(t, []string{}, got[1].Licenses)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryFetchAllSwallowsQueryFailure(t *testing.T) {
	repo, mock := newInstructorRepo(t)

	mock.ExpectQuery(`SELECT id, doc FROM instructors`).
		WillReturnError(errors.New("connection refused"))

	got := repo.FetchAll(context.Background())

	// An unreachable store reads as an empty collection, never an error
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryFetchAllMalformedDocument(t *testing.T) {
	repo, mock := newInstructorRepo(t)

	rows := pgxmock.NewRows([]string{"id", "doc"}).
		AddRow("inst9", []byte(`not json at all`))
	mock.ExpectQuery(`SELECT id, doc FROM instructors`).
		WillReturnRows(rows)

	got := repo.FetchAll(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "inst9", got[0].ID)
	assert.Equal(t, "", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositorySave(t *testing.T) {
	repo, mock := newInstructorRepo(t)

	mock.ExpectExec(`INSERT INTO instructors \(id,doc\) VALUES \(\$1,\$2\) ON CONFLICT \(id\) DO UPDATE SET doc = EXCLUDED\.doc`).
		WithArgs("inst1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Save(context.Background(), models.Instructor{
		ID:            "inst1",
		Name:          "김수진",
		CurrentCenter: "문화체육센터",
		Category:      "수영",
		Position:      "강사",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositorySaveWrapsWriteFailure(t *testing.T) {
	repo, mock := newInstructorRepo(t)

	mock.ExpectExec(`INSERT INTO instructors`).
		WithArgs("inst1", pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), models.Instructor{ID: "inst1", Name: "김수진"})

	assert.ErrorIs(t, err, apperrors.ErrStoreWriteFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryDeleteIdempotent(t *testing.T) {
	repo, mock := newInstructorRepo(t)

	// Zero rows affected is still success
	mock.ExpectExec(`DELETE FROM instructors WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
