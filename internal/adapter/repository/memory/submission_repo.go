package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

// SubmissionLog keeps consultation requests in memory and logs each one.
// Used when no database is configured.
type SubmissionLog struct {
	mu          sync.Mutex
	submissions []domain.Submission
	logger      *zap.Logger
}

// NewSubmissionLog creates an empty submission log
func NewSubmissionLog(logger *zap.Logger) *SubmissionLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionLog{logger: logger}
}

// Create records the submission
func (l *SubmissionLog) Create(_ context.Context, submission *domain.Submission) error {
	l.mu.Lock()
	l.submissions = append(l.submissions, *submission)
	l.mu.Unlock()

	l.logger.Info("consultation received",
		zap.String("submission_id", submission.ID.String()),
		zap.String("app_type", submission.AppType),
		zap.String("contact", submission.Contact.Name),
		zap.Int("score", submission.Report.Score),
		zap.String("grade", string(submission.Report.Grade)),
		zap.String("shortfall", submission.Report.ShortfallTxt),
	)
	return nil
}

// List returns the recorded submissions in arrival order
func (l *SubmissionLog) List() []domain.Submission {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Submission, len(l.submissions))
	copy(out, l.submissions)
	return out
}
