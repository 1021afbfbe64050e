package grpc

import "google.golang.org/protobuf/types/known/timestamppb"

// Amounts travel as decimal strings: 억 for asset values, 만원 for monthly amounts.

type CreateSessionRequest struct{}

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
}

type AddHoldingRequest struct {
	SessionId     string `json:"session_id"`
	Name          string `json:"name"`
	CurrentValue  string `json:"current_value"`
	PurchasePrice string `json:"purchase_price"`
	LoanBalance   string `json:"loan_balance"`
	Strategy      string `json:"strategy"`
	DisposalAge   int32  `json:"disposal_age"`
	CurrentAge    int32  `json:"current_age"`
	DeathAge      int32  `json:"death_age"`
}

type Holding struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	CurrentValue  string `json:"current_value"`
	PurchasePrice string `json:"purchase_price"`
	LoanBalance   string `json:"loan_balance"`
	Strategy      string `json:"strategy"`
	StrategyLabel string `json:"strategy_label"`
	DisposalAge   int32  `json:"disposal_age"`
}

type AddHoldingResponse struct {
	Holding *Holding `json:"holding"`
}

type ListHoldingsRequest struct {
	SessionId string `json:"session_id"`
}

type ListHoldingsResponse struct {
	Holdings  []*Holding `json:"holdings"`
	Names     string     `json:"names"`
	NetEquity string     `json:"net_equity"`
}

// SimulationForm mirrors the dashboard inputs
type SimulationForm struct {
	CurrentAge       int32  `json:"current_age"`
	RetirementAge    int32  `json:"retirement_age"`
	DeathAge         int32  `json:"death_age"`
	LiquidAsset      string `json:"liquid_asset"`
	MonthlySavings   string `json:"monthly_savings"`
	ReturnRatePct    int32  `json:"return_rate_pct"`
	BaseMonthlySpend string `json:"base_monthly_spend"`
	Golf             string `json:"golf"`
	Travel           string `json:"travel"`
	Inflation        string `json:"inflation"`
}

type SimulateRequest struct {
	SessionId string          `json:"session_id"` // optional
	Form      *SimulationForm `json:"form"`
}

type Sale struct {
	HoldingId string `json:"holding_id"`
	Name      string `json:"name"`
	Age       int32  `json:"age"`
	Proceeds  string `json:"proceeds"` // won
}

type Commentary struct {
	Depletion           string `json:"depletion"`
	DepletionDetail     string `json:"depletion_detail"`
	Summary             string `json:"summary"`
	Concentration       string `json:"concentration"`
	RealEstateShare     string `json:"real_estate_share"`
	ConcentrationDetail string `json:"concentration_detail"`
	OutstandingLoans    string `json:"outstanding_loans"`
	Spending            string `json:"spending"`
	SpendingDetail      string `json:"spending_detail"`
	Investment          string `json:"investment"`
	InvestmentDetail    string `json:"investment_detail"`
}

type SimulateResponse struct {
	Ages              []int32     `json:"ages"`
	LiquidEok         []int64     `json:"liquid_eok"`
	RealEstateEok     []int64     `json:"real_estate_eok"`
	Depleted          bool        `json:"depleted"`
	DepletionAge      int32       `json:"depletion_age,omitempty"`
	Score             int32       `json:"score"`
	Grade             string      `json:"grade"`
	Shortfall         string      `json:"shortfall"`
	TotalMonthlySpend string      `json:"total_monthly_spend"`
	Sales             []*Sale     `json:"sales"`
	Commentary        *Commentary `json:"commentary"`
}

type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type SubmitConsultationRequest struct {
	SessionId string          `json:"session_id"` // optional
	Form      *SimulationForm `json:"form"`
	Contact   *Contact        `json:"contact"`
}

type SubmitConsultationResponse struct {
	SubmissionId string                 `json:"submission_id"`
	Score        int32                  `json:"score"`
	Grade        string                 `json:"grade"`
	Shortfall    string                 `json:"shortfall"`
	CreatedAt    *timestamppb.Timestamp `json:"created_at"`
}
