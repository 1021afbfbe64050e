package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

// submissionRepository implements domain.SubmissionRepository
type submissionRepository struct {
	db *DB
}

// NewSubmissionRepository creates a new consultation submission repository
func NewSubmissionRepository(db *DB) domain.SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create stores a consultation request; the report is kept as JSONB
func (r *submissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO consultation_submissions
			(id, app_type, contact_name, contact_phone, contact_email, message, score, grade, report, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	report, err := json.Marshal(submission.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		submission.ID,
		submission.AppType,
		submission.Contact.Name,
		submission.Contact.Phone,
		nullString(submission.Contact.Email),
		nullString(submission.Contact.Message),
		submission.Report.Score,
		string(submission.Report.Grade),
		report,
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
