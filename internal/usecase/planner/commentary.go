package planner

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

// DepletionOutlook classifies when, if ever, liquid assets run out
type DepletionOutlook string

const (
	DepletionSafe  DepletionOutlook = "SAFE"
	DepletionEarly DepletionOutlook = "EARLY" // within 5 years of retirement
	DepletionMid   DepletionOutlook = "MID"
	DepletionLate  DepletionOutlook = "LATE" // within 5 years of death age
)

// ConcentrationLevel classifies the real-estate share of today's assets
type ConcentrationLevel string

const (
	ConcentrationNone     ConcentrationLevel = "NONE"
	ConcentrationSevere   ConcentrationLevel = "SEVERE"
	ConcentrationHigh     ConcentrationLevel = "HIGH"
	ConcentrationBalanced ConcentrationLevel = "BALANCED"
)

// SpendingLevel classifies the total monthly retirement spend
type SpendingLevel string

const (
	SpendingHighCost SpendingLevel = "HIGH_COST"
	SpendingModerate SpendingLevel = "MODERATE"
	SpendingFrugal   SpendingLevel = "FRUGAL"
)

// InvestmentStyle classifies the expected annual return
type InvestmentStyle string

const (
	InvestmentConservative InvestmentStyle = "CONSERVATIVE"
	InvestmentModerate     InvestmentStyle = "MODERATE"
	InvestmentAggressive   InvestmentStyle = "AGGRESSIVE"
)

const (
	depletionWindowYears   = 5
	conservativeReturnPct  = 3
	aggressiveReturnPct    = 7
	summaryAdequate        = "자산 대비 은퇴생활비가 적정 수준입니다."
	summaryNeedsAdjustment = "은퇴생활비를 줄이거나 저축/투자를 늘릴 필요가 있습니다."
)

var (
	severeConcentration = decimal.NewFromFloat(0.8)
	highConcentration   = decimal.NewFromFloat(0.6)
	highCostSpend       = decimal.NewFromInt(400) // 만원
	moderateSpend       = decimal.NewFromInt(250) // 만원
)

var depletionDetails = map[DepletionOutlook]string{
	DepletionSafe:  "현재 계획대로라면 기대수명까지 자산이 유지될 가능성이 높습니다.",
	DepletionEarly: "은퇴 직후 자산이 빠르게 감소합니다. 은퇴 시점과 생활비 계획을 다시 점검해야 합니다.",
	DepletionMid:   "은퇴 이후 중반부에서 자산 고갈 가능성이 있습니다. 생활비·투자전략·부동산 매각 시점을 조정해야 합니다.",
	DepletionLate:  "기대수명 직전에 자산이 고갈될 수 있습니다. 약간의 추가 저축 또는 리스크 관리가 필요합니다.",
}

var concentrationDetails = map[ConcentrationLevel]string{
	ConcentrationNone:     "현재 입력된 부동산 자산이 없습니다. 보유 중인 아파트/상가 등이 있다면 반드시 함께 고려해야 합니다.",
	ConcentrationSevere:   "전체 자산의 80% 이상이 부동산에 묶여 있습니다. 은퇴 직후 현금 흐름 부족 위험이 큽니다.",
	ConcentrationHigh:     "은퇴 전후 일부 매각을 통해 현금 비중을 늘리는 전략을 고민해 보셔야 합니다.",
	ConcentrationBalanced: "유동성과 자산가치의 균형이 비교적 잘 맞는 편입니다. 상속·증여 계획만 별도로 보완하시면 좋겠습니다.",
}

var spendingDetails = map[SpendingLevel]string{
	SpendingHighCost: "현재 계획하신 생활비는 꽤 높은 편입니다. 은퇴 초기에 지출을 조금 줄이고, 70대 이후에 취미 활동 강도를 조정하는 전략을 고려해 보세요.",
	SpendingModerate: "현재 수준은 평균적인 중상위 은퇴생활에 해당합니다. 의료비·요양비가 늘어나는 70대 이후를 대비해 별도의 예비 자금을 마련해 두시면 좋겠습니다.",
	SpendingFrugal:   "비교적 검소한 은퇴생활 계획입니다. 자녀 지원·여행·취미 활동에 여유를 조금 더 배분해도 됩니다.",
}

var investmentDetails = map[InvestmentStyle]string{
	InvestmentConservative: "원금 보존에 중점을 두고 계십니다. 실질 구매력을 지키려면 물가상승률에 1~2% 이상을 더한 수익이 필요합니다.",
	InvestmentModerate:     "은퇴 시점이 다가올수록 위험 자산 비중을 자동으로 줄여주는 TDF(Target Date Fund) 활용이 적합합니다.",
	InvestmentAggressive:   "은퇴 직전의 폭락장(Sequence Risk)에 취약합니다. 50대 후반부터 안전 자산을 늘리는 현금 쐐기(Cash Wedge) 전략이 필요합니다.",
}

// Commentary is the dashboard's risk analysis for one plan
type Commentary struct {
	Depletion       DepletionOutlook `json:"depletion"`
	DepletionDetail string           `json:"depletion_detail"`
	Summary         string           `json:"summary"`

	Concentration       ConcentrationLevel `json:"concentration"`
	RealEstateShare     decimal.Decimal    `json:"real_estate_share"`
	ConcentrationDetail string             `json:"concentration_detail"`
	OutstandingLoans    decimal.Decimal    `json:"outstanding_loans"` // 억

	Spending       SpendingLevel `json:"spending"`
	SpendingDetail string        `json:"spending_detail"`

	Investment       InvestmentStyle `json:"investment"`
	InvestmentDetail string          `json:"investment_detail"`
}

// ClassifyDepletion places a depletion age relative to retirement and death.
func ClassifyDepletion(depletionAge *int, retirementAge, deathAge int) DepletionOutlook {
	switch {
	case depletionAge == nil:
		return DepletionSafe
	case *depletionAge <= retirementAge+depletionWindowYears:
		return DepletionEarly
	case *depletionAge <= deathAge-depletionWindowYears:
		return DepletionMid
	default:
		return DepletionLate
	}
}

// RealEstateShare is today's net equity over liquid plus net equity, both in 억.
// Zero when there are no assets.
func RealEstateShare(liquid, netEquity decimal.Decimal) decimal.Decimal {
	total := liquid.Add(netEquity)
	if !total.IsPositive() {
		return decimal.Zero
	}
	return netEquity.Div(total)
}

// ClassifyConcentration grades the real-estate share; an empty ledger is NONE.
func ClassifyConcentration(holdings int, share decimal.Decimal) ConcentrationLevel {
	switch {
	case holdings == 0:
		return ConcentrationNone
	case share.GreaterThanOrEqual(severeConcentration):
		return ConcentrationSevere
	case share.GreaterThanOrEqual(highConcentration):
		return ConcentrationHigh
	default:
		return ConcentrationBalanced
	}
}

// ClassifySpending grades the total monthly spend (만원).
func ClassifySpending(totalMonthly decimal.Decimal) SpendingLevel {
	switch {
	case totalMonthly.GreaterThanOrEqual(highCostSpend):
		return SpendingHighCost
	case totalMonthly.GreaterThanOrEqual(moderateSpend):
		return SpendingModerate
	default:
		return SpendingFrugal
	}
}

// ClassifyInvestment grades the expected annual return in percent.
func ClassifyInvestment(returnPct int) InvestmentStyle {
	switch {
	case returnPct < conservativeReturnPct:
		return InvestmentConservative
	case returnPct > aggressiveReturnPct:
		return InvestmentAggressive
	default:
		return InvestmentModerate
	}
}

func summarize(grade domain.Grade) string {
	if grade == domain.GradeA || grade == domain.GradeB {
		return summaryAdequate
	}
	return summaryNeedsAdjustment
}

func buildCommentary(input SimulateInput, ledger *domain.PropertyLedger, score domain.ScoreResult, totalMonthly decimal.Decimal) Commentary {
	depletion := ClassifyDepletion(score.DepletionAge, input.RetirementAge, input.DeathAge)
	share := RealEstateShare(input.LiquidAsset, ledger.NetEquity())
	concentration := ClassifyConcentration(ledger.Len(), share)
	spending := ClassifySpending(totalMonthly)
	investment := ClassifyInvestment(input.ReturnRatePct)

	return Commentary{
		Depletion:           depletion,
		DepletionDetail:     depletionDetails[depletion],
		Summary:             summarize(score.Grade),
		Concentration:       concentration,
		RealEstateShare:     share,
		ConcentrationDetail: concentrationDetails[concentration],
		OutstandingLoans:    ledger.TotalLoans(),
		Spending:            spending,
		SpendingDetail:      spendingDetails[spending],
		Investment:          investment,
		InvestmentDetail:    investmentDetails[investment],
	}
}
