package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return &DB{DB: sqlDB}, mock
}

func sampleSubmission() *domain.Submission {
	return &domain.Submission{
		ID:      uuid.New(),
		AppType: domain.AppTypeLifePlan,
		Contact: domain.Contact{Name: "Kim", Phone: "010-1234-5678"},
		Report: domain.ConsultationReport{
			Age:          50,
			RetireAge:    60,
			DeathAge:     90,
			Asset:        decimal.NewFromInt(3),
			ReAsset:      decimal.NewFromInt(7),
			PropsStr:     "Apartment",
			Score:        82,
			Grade:        domain.GradeB,
			ShortfallTxt: "Safe",
		},
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSubmissionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)
	submission := sampleSubmission()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO consultation_submissions")).
		WithArgs(
			submission.ID,
			"life",
			"Kim",
			"010-1234-5678",
			nil, // no email
			nil, // no message
			82,
			"B",
			sqlmock.AnyArg(),
			submission.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), submission)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_CreateWithEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)
	submission := sampleSubmission()
	submission.Contact.Email = "kim@example.com"
	submission.Contact.Message = "call after 6pm"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO consultation_submissions")).
		WithArgs(
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"kim@example.com",
			"call after 6pm",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), submission))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_CreateError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO consultation_submissions")).
		WillReturnError(errors.New("duplicate key"))

	err := repo.Create(context.Background(), sampleSubmission())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create submission")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Migrate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS consultation_submissions")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
