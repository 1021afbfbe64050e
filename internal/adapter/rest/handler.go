package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/usecase/ledger"
	"github.com/simaogato/lifeplan-backend/internal/usecase/planner"
)

const requestTimeout = 30 * time.Second

// Handler serves the dashboard's JSON API
type Handler struct {
	LedgerService  *ledger.LedgerService
	PlannerService *planner.PlannerService
	Logger         *zap.Logger
	Token          string
}

// NewHandler creates a new Handler
func NewHandler(
	ledgerService *ledger.LedgerService,
	plannerService *planner.PlannerService,
	token string,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		LedgerService:  ledgerService,
		PlannerService: plannerService,
		Logger:         logger,
		Token:          token,
	}
}

// Register mounts the API routes on r
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.RequestID)
		api.Use(middleware.Recoverer)
		api.Use(requestLogger(h.Logger))
		api.Use(middleware.Timeout(requestTimeout))
		api.Use(requireToken(h.Token))

		api.Post("/sessions", h.handleCreateSession)
		api.Get("/sessions/{sessionID}/holdings", h.handleListHoldings)
		api.Post("/sessions/{sessionID}/holdings", h.handleAddHolding)
		api.Post("/sessions/{sessionID}/simulation", h.handleSimulate)
		api.Post("/simulation", h.handleSimulate)
		api.Post("/consultations", h.handleSubmitConsultation)
	})
}

// Router returns a chi router with all routes registered
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type sessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

type addHoldingRequest struct {
	Name          string          `json:"name"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	LoanBalance   decimal.Decimal `json:"loan_balance"`
	Strategy      string          `json:"strategy"`
	DisposalAge   int             `json:"disposal_age"`
	CurrentAge    int             `json:"current_age"`
	DeathAge      int             `json:"death_age"`
}

type holdingsResponse struct {
	Holdings  []domain.PropertyHolding `json:"holdings"`
	Names     string                   `json:"names"`
	NetEquity decimal.Decimal          `json:"net_equity"`
}

type consultationRequest struct {
	SessionID *uuid.UUID            `json:"session_id,omitempty"`
	Input     planner.SimulateInput `json:"input"`
	Contact   domain.Contact        `json:"contact"`
}

type consultationResponse struct {
	SubmissionID uuid.UUID                 `json:"submission_id"`
	CreatedAt    time.Time                 `json:"created_at"`
	Report       domain.ConsultationReport `json:"report"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := h.LedgerService.NewSession(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: sessionID})
}

func (h *Handler) handleAddHolding(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionParam(w, r)
	if !ok {
		return
	}

	var req addHoldingRequest
	if !h.decode(w, r, &req) {
		return
	}

	strategy, err := domain.ParseStrategy(req.Strategy)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	holding, err := h.LedgerService.AddHolding(r.Context(), sessionID, ledger.AddHoldingInput{
		Name:          req.Name,
		CurrentValue:  req.CurrentValue,
		PurchasePrice: req.PurchasePrice,
		LoanBalance:   req.LoanBalance,
		Strategy:      strategy,
		DisposalAge:   req.DisposalAge,
		CurrentAge:    req.CurrentAge,
		DeathAge:      req.DeathAge,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, holding)
}

func (h *Handler) handleListHoldings(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.LedgerService.Snapshot(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, holdingsResponse{
		Holdings:  snapshot.Holdings(),
		Names:     snapshot.Names(),
		NetEquity: snapshot.NetEquity(),
	})
}

// handleSimulate serves both the session-scoped and the anonymous simulation routes
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.Nil
	if chi.URLParam(r, "sessionID") != "" {
		var ok bool
		if sessionID, ok = h.sessionParam(w, r); !ok {
			return
		}
	}

	var input planner.SimulateInput
	if !h.decode(w, r, &input) {
		return
	}

	plan, err := h.PlannerService.Simulate(r.Context(), sessionID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) handleSubmitConsultation(w http.ResponseWriter, r *http.Request) {
	var req consultationRequest
	if !h.decode(w, r, &req) {
		return
	}

	sessionID := uuid.Nil
	if req.SessionID != nil {
		sessionID = *req.SessionID
	}

	submission, err := h.PlannerService.Submit(r.Context(), sessionID, req.Input, req.Contact)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, consultationResponse{
		SubmissionID: submission.ID,
		CreatedAt:    submission.CreatedAt,
		Report:       submission.Report,
	})
}

func (h *Handler) sessionParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid session id"})
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.Logger.Warn("invalid request body",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps domain errors to HTTP status codes
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.Logger.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
