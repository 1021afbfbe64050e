package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Strategy is the disposal plan for a real-estate holding
type Strategy string

const (
	StrategyHold                 Strategy = "HOLD"
	StrategySellBeforeRetirement Strategy = "SELL_BEFORE_RETIREMENT"
	StrategyInheritancePlan      Strategy = "INHERITANCE_PLAN"
)

// MaxPropertyValue is the upper bound (in 억) accepted for property amounts.
var MaxPropertyValue = decimal.NewFromInt(100)

// strategyLabels maps the dashboard's display labels to strategies.
var strategyLabels = map[string]Strategy{
	"보유":      StrategyHold,
	"은퇴 전 매각": StrategySellBeforeRetirement,
	"상속 계획":   StrategyInheritancePlan,
}

// ParseStrategy accepts either the enum name (case-insensitive) or the dashboard label.
func ParseStrategy(s string) (Strategy, error) {
	trimmed := strings.TrimSpace(s)
	if st, ok := strategyLabels[trimmed]; ok {
		return st, nil
	}
	st := Strategy(strings.ToUpper(trimmed))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, s)
	}
	return st, nil
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyHold, StrategySellBeforeRetirement, StrategyInheritancePlan:
		return true
	}
	return false
}

// Label returns the dashboard display label.
func (s Strategy) Label() string {
	for label, st := range strategyLabels {
		if st == s {
			return label
		}
	}
	return string(s)
}

// PropertyHolding is a single real-estate asset entered by the user.
// Amounts are in 억.
type PropertyHolding struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	LoanBalance   decimal.Decimal `json:"loan_balance"`
	Strategy      Strategy        `json:"strategy"`
	DisposalAge   int             `json:"disposal_age"`

	// IsSold only changes inside a simulation run, on the run's own copy.
	IsSold bool `json:"is_sold"`
}

// Validate checks the holding's intrinsic fields.
func (h *PropertyHolding) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: property name cannot be empty", ErrInvalidInput)
	}
	if !h.Strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, h.Strategy)
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"current value", h.CurrentValue},
		{"purchase price", h.PurchasePrice},
		{"loan balance", h.LoanBalance},
	}
	for _, a := range amounts {
		if a.value.IsNegative() || a.value.GreaterThan(MaxPropertyValue) {
			return fmt.Errorf("%w: property %s must be between 0 and %s", ErrInvalidInput, a.field, MaxPropertyValue)
		}
	}

	return nil
}

// ValidateDisposalAge checks that the disposal age lies within [currentAge, deathAge].
func (h *PropertyHolding) ValidateDisposalAge(currentAge, deathAge int) error {
	if h.DisposalAge < currentAge || h.DisposalAge > deathAge {
		return fmt.Errorf("%w: disposal age %d must be between %d and %d", ErrInvalidInput, h.DisposalAge, currentAge, deathAge)
	}
	return nil
}

// NetEquity returns today's equity in 억: current value minus loan, floored at zero.
func (h PropertyHolding) NetEquity() decimal.Decimal {
	return decimal.Max(decimal.Zero, h.CurrentValue.Sub(h.LoanBalance))
}

// EquityAt returns the holding's equity in won after its value has been
// scaled by the cumulative inflation factor. Never negative.
func (h PropertyHolding) EquityAt(inflationFactor decimal.Decimal) decimal.Decimal {
	gross := EokToWon(h.CurrentValue).Mul(inflationFactor)
	return decimal.Max(decimal.Zero, gross.Sub(EokToWon(h.LoanBalance)))
}
