package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GolfFrequency is how often the user plans to play golf in retirement
type GolfFrequency string

const (
	GolfNone     GolfFrequency = "NONE"
	GolfMonthly1 GolfFrequency = "MONTHLY_1"
	GolfMonthly2 GolfFrequency = "MONTHLY_2"
	GolfMonthly4 GolfFrequency = "MONTHLY_4"
	GolfVIP      GolfFrequency = "VIP"
)

// TravelFrequency is how often the user plans to travel abroad in retirement
type TravelFrequency string

const (
	TravelNone      TravelFrequency = "NONE"
	TravelYearly1   TravelFrequency = "YEARLY_1"
	TravelYearly2   TravelFrequency = "YEARLY_2"
	TravelQuarterly TravelFrequency = "QUARTERLY"
)

// Per-event costs in won.
var (
	GolfRoundCost  = decimal.NewFromInt(400_000)
	TravelTripCost = decimal.NewFromInt(4_000_000)
)

var golfRoundsPerYear = map[GolfFrequency]int64{
	GolfNone:     0,
	GolfMonthly1: 12,
	GolfMonthly2: 24,
	GolfMonthly4: 48,
	GolfVIP:      100,
}

var travelTripsPerYear = map[TravelFrequency]int64{
	TravelNone:      0,
	TravelYearly1:   1,
	TravelYearly2:   2,
	TravelQuarterly: 4,
}

// Lifestyle is the retirement spending plan. BaseMonthlySpend is in 만원.
type Lifestyle struct {
	BaseMonthlySpend decimal.Decimal `json:"base_monthly_spend"`
	Golf             GolfFrequency   `json:"golf"`
	Travel           TravelFrequency `json:"travel"`
}

// Validate checks the spend range and the frequency values.
// Empty frequencies are treated as NONE.
func (l Lifestyle) Validate() error {
	if l.BaseMonthlySpend.IsNegative() || l.BaseMonthlySpend.GreaterThan(MaxMonthlyAmount) {
		return fmt.Errorf("%w: monthly spend must be between 0 and %s", ErrInvalidInput, MaxMonthlyAmount)
	}
	if _, ok := golfRoundsPerYear[l.golf()]; !ok {
		return fmt.Errorf("%w: unknown golf frequency %q", ErrInvalidInput, l.Golf)
	}
	if _, ok := travelTripsPerYear[l.travel()]; !ok {
		return fmt.Errorf("%w: unknown travel frequency %q", ErrInvalidInput, l.Travel)
	}
	return nil
}

// Normalized returns the lifestyle with empty frequencies replaced by NONE.
func (l Lifestyle) Normalized() Lifestyle {
	l.Golf = l.golf()
	l.Travel = l.travel()
	return l
}

func (l Lifestyle) golf() GolfFrequency {
	if l.Golf == "" {
		return GolfNone
	}
	return l.Golf
}

func (l Lifestyle) travel() TravelFrequency {
	if l.Travel == "" {
		return TravelNone
	}
	return l.Travel
}

// AnnualHobbyCost returns the yearly golf and travel cost in won.
func (l Lifestyle) AnnualHobbyCost() decimal.Decimal {
	golf := GolfRoundCost.Mul(decimal.NewFromInt(golfRoundsPerYear[l.golf()]))
	travel := TravelTripCost.Mul(decimal.NewFromInt(travelTripsPerYear[l.travel()]))
	return golf.Add(travel)
}

// TotalMonthlySpend returns the base spend plus the hobby add-on, in 만원.
// The add-on is truncated to whole 만원.
func (l Lifestyle) TotalMonthlySpend() decimal.Decimal {
	monthlyHobby := l.AnnualHobbyCost().Div(monthsPerYear)
	return l.BaseMonthlySpend.Add(WonToManwon(monthlyHobby))
}

// InflationPreset is one of the dashboard's inflation scenarios
type InflationPreset string

const (
	InflationStable InflationPreset = "STABLE"
	InflationNormal InflationPreset = "NORMAL"
	InflationSevere InflationPreset = "SEVERE"
)

var inflationPresets = map[InflationPreset]struct {
	rate  decimal.Decimal
	label string
}{
	InflationStable: {decimal.NewFromFloat(0.02), "안정(2%)"},
	InflationNormal: {decimal.NewFromFloat(0.035), "보통(3.5%)"},
	InflationSevere: {decimal.NewFromFloat(0.05), "심각(5%)"},
}

// ParseInflationPreset resolves a preset name; an empty string selects NORMAL.
func ParseInflationPreset(s string) (InflationPreset, error) {
	if s == "" {
		return InflationNormal, nil
	}
	p := InflationPreset(s)
	if _, ok := inflationPresets[p]; !ok {
		return "", fmt.Errorf("%w: unknown inflation preset %q", ErrInvalidInput, s)
	}
	return p, nil
}

// Rate returns the annual inflation rate as a fraction.
func (p InflationPreset) Rate() decimal.Decimal {
	return inflationPresets[p].rate
}

// Label returns the dashboard display label.
func (p InflationPreset) Label() string {
	return inflationPresets[p].label
}

// Percent returns the rate in percent.
func (p InflationPreset) Percent() decimal.Decimal {
	return p.Rate().Shift(2)
}
