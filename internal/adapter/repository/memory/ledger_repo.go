package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

// ledgerRepository implements domain.LedgerRepository in process memory
type ledgerRepository struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID]*domain.PropertyLedger
}

// NewLedgerRepository creates an empty in-memory ledger store
func NewLedgerRepository() domain.LedgerRepository {
	return &ledgerRepository{ledgers: make(map[uuid.UUID]*domain.PropertyLedger)}
}

// Get returns a copy of the session's ledger
func (r *ledgerRepository) Get(_ context.Context, sessionID uuid.UUID) (*domain.PropertyLedger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger, ok := r.ledgers[sessionID]
	if !ok {
		return nil, fmt.Errorf("ledger %s: %w", sessionID, domain.ErrNotFound)
	}
	return ledger.Clone(), nil
}

// Save stores a copy of the ledger under the session ID
func (r *ledgerRepository) Save(_ context.Context, sessionID uuid.UUID, ledger *domain.PropertyLedger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledgers[sessionID] = ledger.Clone()
	return nil
}

// Append adds a holding under the write lock so concurrent adds are never lost
func (r *ledgerRepository) Append(_ context.Context, sessionID uuid.UUID, holding domain.PropertyHolding) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, ok := r.ledgers[sessionID]
	if !ok {
		ledger = domain.NewPropertyLedger()
	} else {
		ledger = ledger.Clone()
	}
	if err := ledger.Add(holding); err != nil {
		return 0, err
	}

	r.ledgers[sessionID] = ledger
	return ledger.Len(), nil
}
