package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

// AddHoldingInput represents the input for adding a property to a session's ledger.
// CurrentAge and DeathAge bound the disposal age.
type AddHoldingInput struct {
	Name          string          `json:"name"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	LoanBalance   decimal.Decimal `json:"loan_balance"`
	Strategy      domain.Strategy `json:"strategy"`
	DisposalAge   int             `json:"disposal_age"`
	CurrentAge    int             `json:"current_age"`
	DeathAge      int             `json:"death_age"`
}

// LedgerService manages the session-scoped property ledgers
type LedgerService struct {
	LedgerRepo domain.LedgerRepository
	Logger     *zap.Logger
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(ledgerRepo domain.LedgerRepository, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		LedgerRepo: ledgerRepo,
		Logger:     logger,
	}
}

// NewSession creates an empty ledger and returns its session ID
func (s *LedgerService) NewSession(ctx context.Context) (uuid.UUID, error) {
	sessionID := uuid.New()
	if err := s.LedgerRepo.Save(ctx, sessionID, domain.NewPropertyLedger()); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.Logger.Debug("ledger session created", zap.String("session_id", sessionID.String()))
	return sessionID, nil
}

// AddHolding validates the input and appends a new holding to the session's ledger.
// A session without a stored ledger starts from an empty one. Concurrent adds to one
// session are all kept: the repository appends atomically.
func (s *LedgerService) AddHolding(ctx context.Context, sessionID uuid.UUID, input AddHoldingInput) (*domain.PropertyHolding, error) {
	if sessionID == uuid.Nil {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}

	holding := domain.PropertyHolding{
		ID:            uuid.New(),
		Name:          input.Name,
		CurrentValue:  input.CurrentValue,
		PurchasePrice: input.PurchasePrice,
		LoanBalance:   input.LoanBalance,
		Strategy:      input.Strategy,
		DisposalAge:   input.DisposalAge,
	}
	if err := holding.Validate(); err != nil {
		return nil, err
	}
	if err := holding.ValidateDisposalAge(input.CurrentAge, input.DeathAge); err != nil {
		return nil, err
	}

	count, err := s.LedgerRepo.Append(ctx, sessionID, holding)
	if err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	s.Logger.Info("property added",
		zap.String("session_id", sessionID.String()),
		zap.String("holding_id", holding.ID.String()),
		zap.String("strategy", string(holding.Strategy)),
		zap.Int("holdings", count),
	)

	return &holding, nil
}

// List returns the holdings of a session; unknown sessions have none
func (s *LedgerService) List(ctx context.Context, sessionID uuid.UUID) ([]domain.PropertyHolding, error) {
	ledger, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ledger.Holdings(), nil
}

// Snapshot returns an independent copy of the session's ledger.
// uuid.Nil and unknown sessions yield an empty ledger.
func (s *LedgerService) Snapshot(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyLedger, error) {
	if sessionID == uuid.Nil {
		return domain.NewPropertyLedger(), nil
	}
	ledger, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ledger.Clone(), nil
}

func (s *LedgerService) load(ctx context.Context, sessionID uuid.UUID) (*domain.PropertyLedger, error) {
	ledger, err := s.LedgerRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewPropertyLedger(), nil
		}
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return ledger, nil
}
