package domain

import (
	"context"

	"github.com/google/uuid"
)

// LedgerRepository stores the property ledger of each planning session
type LedgerRepository interface {
	// Get returns a copy of the session's ledger, or an error wrapping ErrNotFound
	Get(ctx context.Context, sessionID uuid.UUID) (*PropertyLedger, error)

	// Save replaces the session's ledger
	Save(ctx context.Context, sessionID uuid.UUID, ledger *PropertyLedger) error

	// Append adds one holding to the session's ledger as a single atomic step,
	// creating the ledger when the session has none. Returns the new holding count.
	Append(ctx context.Context, sessionID uuid.UUID, holding PropertyHolding) (int, error)
}

// SubmissionRepository forwards consultation submissions to the reporting side
type SubmissionRepository interface {
	// Create stores a new submission
	Create(ctx context.Context, submission *Submission) error
}
