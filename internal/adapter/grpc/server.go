package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/usecase/ledger"
	"github.com/simaogato/lifeplan-backend/internal/usecase/planner"
)

// Server implements the LifePlanService gRPC server
type Server struct {
	LedgerService  *ledger.LedgerService
	PlannerService *planner.PlannerService
	Logger         *zap.Logger
}

var _ LifePlanServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	ledgerService *ledger.LedgerService,
	plannerService *planner.PlannerService,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		LedgerService:  ledgerService,
		PlannerService: plannerService,
		Logger:         logger,
	}
}

// CreateSession handles the CreateSession RPC
func (s *Server) CreateSession(ctx context.Context, _ *CreateSessionRequest) (*CreateSessionResponse, error) {
	sessionID, err := s.LedgerService.NewSession(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &CreateSessionResponse{SessionId: sessionID.String()}, nil
}

// AddHolding handles the AddHolding RPC
func (s *Server) AddHolding(ctx context.Context, req *AddHoldingRequest) (*AddHoldingResponse, error) {
	sessionID, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid session_id format: %v", err)
	}

	strategy, err := domain.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, s.mapError(err)
	}

	amounts, err := parseDecimals(
		namedAmount{"current_value", req.CurrentValue},
		namedAmount{"purchase_price", req.PurchasePrice},
		namedAmount{"loan_balance", req.LoanBalance},
	)
	if err != nil {
		return nil, err
	}

	input := ledger.AddHoldingInput{
		Name:          req.Name,
		CurrentValue:  amounts[0],
		PurchasePrice: amounts[1],
		LoanBalance:   amounts[2],
		Strategy:      strategy,
		DisposalAge:   int(req.DisposalAge),
		CurrentAge:    int(req.CurrentAge),
		DeathAge:      int(req.DeathAge),
	}

	holding, err := s.LedgerService.AddHolding(ctx, sessionID, input)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &AddHoldingResponse{Holding: domainHoldingToProto(*holding)}, nil
}

// ListHoldings handles the ListHoldings RPC
func (s *Server) ListHoldings(ctx context.Context, req *ListHoldingsRequest) (*ListHoldingsResponse, error) {
	sessionID, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid session_id format: %v", err)
	}

	snapshot, err := s.LedgerService.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, s.mapError(err)
	}

	holdings := snapshot.Holdings()
	resp := &ListHoldingsResponse{
		Holdings:  make([]*Holding, 0, len(holdings)),
		Names:     snapshot.Names(),
		NetEquity: snapshot.NetEquity().String(),
	}
	for _, h := range holdings {
		resp.Holdings = append(resp.Holdings, domainHoldingToProto(h))
	}
	return resp, nil
}

// Simulate handles the Simulate RPC
func (s *Server) Simulate(ctx context.Context, req *SimulateRequest) (*SimulateResponse, error) {
	sessionID, err := parseOptionalSessionID(req.SessionId)
	if err != nil {
		return nil, err
	}
	input, err := formToInput(req.Form)
	if err != nil {
		return nil, err
	}

	plan, err := s.PlannerService.Simulate(ctx, sessionID, input)
	if err != nil {
		return nil, s.mapError(err)
	}

	return planToProto(plan), nil
}

// SubmitConsultation handles the SubmitConsultation RPC
func (s *Server) SubmitConsultation(ctx context.Context, req *SubmitConsultationRequest) (*SubmitConsultationResponse, error) {
	sessionID, err := parseOptionalSessionID(req.SessionId)
	if err != nil {
		return nil, err
	}
	input, err := formToInput(req.Form)
	if err != nil {
		return nil, err
	}
	if req.Contact == nil {
		return nil, status.Error(codes.InvalidArgument, "contact is required")
	}

	contact := domain.Contact{
		Name:    req.Contact.Name,
		Phone:   req.Contact.Phone,
		Email:   req.Contact.Email,
		Message: req.Contact.Message,
	}

	submission, err := s.PlannerService.Submit(ctx, sessionID, input, contact)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &SubmitConsultationResponse{
		SubmissionId: submission.ID.String(),
		Score:        int32(submission.Report.Score),
		Grade:        string(submission.Report.Grade),
		Shortfall:    submission.Report.ShortfallTxt,
		CreatedAt:    timestamppb.New(submission.CreatedAt),
	}, nil
}

type namedAmount struct {
	field string
	value string
}

// parseDecimals parses decimal strings; an empty string is zero
func parseDecimals(amounts ...namedAmount) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		if strings.TrimSpace(a.value) == "" {
			out[i] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(a.value)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", a.field, err)
		}
		out[i] = d
	}
	return out, nil
}

func parseOptionalSessionID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid session_id format: %v", err)
	}
	return id, nil
}

// formToInput converts the wire form into the planner input
func formToInput(form *SimulationForm) (planner.SimulateInput, error) {
	if form == nil {
		return planner.SimulateInput{}, status.Error(codes.InvalidArgument, "form is required")
	}

	amounts, err := parseDecimals(
		namedAmount{"liquid_asset", form.LiquidAsset},
		namedAmount{"monthly_savings", form.MonthlySavings},
		namedAmount{"base_monthly_spend", form.BaseMonthlySpend},
	)
	if err != nil {
		return planner.SimulateInput{}, err
	}

	return planner.SimulateInput{
		CurrentAge:     int(form.CurrentAge),
		RetirementAge:  int(form.RetirementAge),
		DeathAge:       int(form.DeathAge),
		LiquidAsset:    amounts[0],
		MonthlySavings: amounts[1],
		ReturnRatePct:  int(form.ReturnRatePct),
		Lifestyle: domain.Lifestyle{
			BaseMonthlySpend: amounts[2],
			Golf:             domain.GolfFrequency(form.Golf),
			Travel:           domain.TravelFrequency(form.Travel),
		},
		Inflation: domain.InflationPreset(form.Inflation),
	}, nil
}

// domainHoldingToProto converts a domain holding to a wire Holding
func domainHoldingToProto(h domain.PropertyHolding) *Holding {
	return &Holding{
		Id:            h.ID.String(),
		Name:          h.Name,
		CurrentValue:  h.CurrentValue.String(),
		PurchasePrice: h.PurchasePrice.String(),
		LoanBalance:   h.LoanBalance.String(),
		Strategy:      string(h.Strategy),
		StrategyLabel: h.Strategy.Label(),
		DisposalAge:   int32(h.DisposalAge),
	}
}

// planToProto converts a planner result to a SimulateResponse
func planToProto(plan *planner.Plan) *SimulateResponse {
	chart := plan.Chart
	resp := &SimulateResponse{
		Ages:              make([]int32, len(chart.Ages)),
		LiquidEok:         chart.LiquidEok,
		RealEstateEok:     chart.RealEstateEok,
		Score:             int32(plan.Score.Score),
		Grade:             string(plan.Score.Grade),
		Shortfall:         domain.DescribeDepletion(plan.Score.DepletionAge),
		TotalMonthlySpend: plan.TotalMonthlySpend.String(),
		Sales:             make([]*Sale, 0, len(plan.Sales)),
		Commentary: &Commentary{
			Depletion:           string(plan.Commentary.Depletion),
			DepletionDetail:     plan.Commentary.DepletionDetail,
			Summary:             plan.Commentary.Summary,
			Concentration:       string(plan.Commentary.Concentration),
			RealEstateShare:     plan.Commentary.RealEstateShare.StringFixed(2),
			ConcentrationDetail: plan.Commentary.ConcentrationDetail,
			OutstandingLoans:    plan.Commentary.OutstandingLoans.String(),
			Spending:            string(plan.Commentary.Spending),
			SpendingDetail:      plan.Commentary.SpendingDetail,
			Investment:          string(plan.Commentary.Investment),
			InvestmentDetail:    plan.Commentary.InvestmentDetail,
		},
	}
	for i, age := range chart.Ages {
		resp.Ages[i] = int32(age)
	}
	if chart.DepletionAge != nil {
		resp.Depleted = true
		resp.DepletionAge = int32(*chart.DepletionAge)
	}
	for _, sale := range plan.Sales {
		resp.Sales = append(resp.Sales, &Sale{
			HoldingId: sale.HoldingID.String(),
			Name:      sale.Name,
			Age:       int32(sale.Age),
			Proceeds:  sale.Proceeds.StringFixed(0),
		})
	}
	return resp
}

// mapError converts domain errors to gRPC status errors
func (s *Server) mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	default:
		s.Logger.Error("request failed", zap.Error(err))
		return status.Errorf(codes.Internal, "%s", err.Error())
	}
}
