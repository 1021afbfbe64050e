package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/platform/metrics"
	"github.com/simaogato/lifeplan-backend/internal/usecase/ledger"
	"github.com/simaogato/lifeplan-backend/internal/usecase/projection"
	"github.com/simaogato/lifeplan-backend/internal/usecase/scoring"
)

// MaxReturnRatePct is the upper bound for the expected annual return, in percent.
const MaxReturnRatePct = 15

// SimulateInput is the dashboard form: amounts in the units the user types them in.
type SimulateInput struct {
	CurrentAge     int                    `json:"current_age"`
	RetirementAge  int                    `json:"retirement_age"`
	DeathAge       int                    `json:"death_age"`
	LiquidAsset    decimal.Decimal        `json:"liquid_asset"`    // 억
	MonthlySavings decimal.Decimal        `json:"monthly_savings"` // 만원
	ReturnRatePct  int                    `json:"return_rate_pct"`
	Lifestyle      domain.Lifestyle       `json:"lifestyle"`
	Inflation      domain.InflationPreset `json:"inflation"`
}

// Parameters validates the form and converts it into engine parameters.
// MonthlySpend includes the lifestyle add-ons.
func (in SimulateInput) Parameters() (domain.SimulationParameters, error) {
	if in.ReturnRatePct < 0 || in.ReturnRatePct > MaxReturnRatePct {
		return domain.SimulationParameters{}, fmt.Errorf("%w: return rate must be between 0 and %d percent", domain.ErrInvalidInput, MaxReturnRatePct)
	}
	preset, err := domain.ParseInflationPreset(string(in.Inflation))
	if err != nil {
		return domain.SimulationParameters{}, err
	}
	if err := in.Lifestyle.Validate(); err != nil {
		return domain.SimulationParameters{}, err
	}

	params := domain.SimulationParameters{
		CurrentAge:          in.CurrentAge,
		RetirementAge:       in.RetirementAge,
		DeathAge:            in.DeathAge,
		LiquidAsset:         in.LiquidAsset,
		MonthlySavings:      in.MonthlySavings,
		MonthlySpend:        in.Lifestyle.TotalMonthlySpend(),
		AnnualReturnRate:    decimal.New(int64(in.ReturnRatePct), -2),
		AnnualInflationRate: preset.Rate(),
	}
	if err := params.Validate(); err != nil {
		return domain.SimulationParameters{}, err
	}
	return params, nil
}

// Plan is the outcome of one simulation, ready for the dashboard.
type Plan struct {
	Input             SimulateInput               `json:"input"`
	Parameters        domain.SimulationParameters `json:"parameters"`
	Holdings          []domain.PropertyHolding    `json:"holdings"`
	Projection        *domain.Projection          `json:"-"`
	Chart             domain.NormalizedProjection `json:"chart"`
	Score             domain.ScoreResult          `json:"score"`
	Commentary        Commentary                  `json:"commentary"`
	TotalMonthlySpend decimal.Decimal             `json:"total_monthly_spend"` // 만원
	Sales             []domain.SaleEvent          `json:"sales"`
}

// PlannerService runs simulations and records consultation requests
type PlannerService struct {
	Ledgers        *ledger.LedgerService
	SubmissionRepo domain.SubmissionRepository
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	Now            func() time.Time
}

// NewPlannerService creates a new PlannerService instance
func NewPlannerService(
	ledgers *ledger.LedgerService,
	submissionRepo domain.SubmissionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		Ledgers:        ledgers,
		SubmissionRepo: submissionRepo,
		Metrics:        m,
		Logger:         logger,
		Now:            time.Now,
	}
}

// Simulate projects the session's holdings under the given form.
// uuid.Nil simulates without real estate.
// Logic:
//  1. Validate the form and derive engine parameters
//  2. Snapshot the session's ledger
//  3. Run the projection engine on the snapshot
//  4. Score the raw series and build the commentary
func (s *PlannerService) Simulate(ctx context.Context, sessionID uuid.UUID, input SimulateInput) (*Plan, error) {
	params, err := input.Parameters()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.Ledgers.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	proj, err := projection.Run(params, snapshot.Holdings())
	if err != nil {
		return nil, fmt.Errorf("failed to run projection: %w", err)
	}
	score := scoring.ScoreProjection(proj, params.RetirementAge, params.DeathAge)
	s.Metrics.ObserveSimulation(string(score.Grade), score.DepletionAge != nil, time.Since(start))

	input.Lifestyle = input.Lifestyle.Normalized()
	plan := &Plan{
		Input:             input,
		Parameters:        params,
		Holdings:          snapshot.Holdings(),
		Projection:        proj,
		Chart:             proj.Normalize(),
		Score:             score,
		Commentary:        buildCommentary(input, snapshot, score, params.MonthlySpend),
		TotalMonthlySpend: params.MonthlySpend,
		Sales:             proj.Sales,
	}

	s.Logger.Info("simulation completed",
		zap.String("session_id", sessionID.String()),
		zap.Int("holdings", snapshot.Len()),
		zap.Int("score", score.Score),
		zap.String("grade", string(score.Grade)),
		zap.String("depletion", domain.DescribeDepletion(score.DepletionAge)),
	)

	return plan, nil
}

// BuildReport flattens a plan into the record sent to the reporting collaborator.
// ReAsset is today's net equity, not the inflated projection.
func BuildReport(plan *Plan) (domain.ConsultationReport, error) {
	holdings := domain.NewPropertyLedger(plan.Holdings...)
	propsJSON, err := json.Marshal(holdings)
	if err != nil {
		return domain.ConsultationReport{}, fmt.Errorf("failed to encode holdings: %w", err)
	}

	preset, err := domain.ParseInflationPreset(string(plan.Input.Inflation))
	if err != nil {
		return domain.ConsultationReport{}, err
	}

	lifestyle := plan.Input.Lifestyle.Normalized()
	return domain.ConsultationReport{
		Age:            plan.Input.CurrentAge,
		RetireAge:      plan.Input.RetirementAge,
		DeathAge:       plan.Input.DeathAge,
		Asset:          plan.Input.LiquidAsset,
		Save:           plan.Input.MonthlySavings,
		RatePct:        plan.Input.ReturnRatePct,
		ReAsset:        holdings.NetEquity(),
		PropsStr:       holdings.Names(),
		PropsJSON:      string(propsJSON),
		Spend:          lifestyle.BaseMonthlySpend,
		GolfFreq:       lifestyle.Golf,
		TravelFreq:     lifestyle.Travel,
		InflationLabel: preset.Label(),
		InflationPct:   preset.Percent(),
		Score:          plan.Score.Score,
		Grade:          plan.Score.Grade,
		ShortfallTxt:   domain.DescribeDepletion(plan.Score.DepletionAge),
	}, nil
}

// Submit simulates the form, then stores a consultation request with the resulting report.
func (s *PlannerService) Submit(ctx context.Context, sessionID uuid.UUID, input SimulateInput, contact domain.Contact) (*domain.Submission, error) {
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.Simulate(ctx, sessionID, input)
	if err != nil {
		return nil, err
	}

	report, err := BuildReport(plan)
	if err != nil {
		return nil, err
	}

	submission := &domain.Submission{
		ID:        uuid.New(),
		AppType:   domain.AppTypeLifePlan,
		Contact:   contact,
		Report:    report,
		CreatedAt: s.Now().UTC(),
	}

	if err := s.SubmissionRepo.Create(ctx, submission); err != nil {
		s.Metrics.IncrementSubmission("failed")
		s.Logger.Error("failed to store consultation", zap.String("submission_id", submission.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to store consultation: %w", err)
	}
	s.Metrics.IncrementSubmission("stored")

	s.Logger.Info("consultation submitted",
		zap.String("submission_id", submission.ID.String()),
		zap.String("grade", string(report.Grade)),
	)

	return submission, nil
}
