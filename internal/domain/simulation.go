package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Input bounds accepted from the dashboard.
const (
	MinCurrentAge    = 20
	MaxCurrentAge    = 80
	MinRetirementAge = 40
	MaxRetirementAge = 80
	MinDeathAge      = 70
	MaxDeathAge      = 100
)

var (
	MaxLiquidAsset   = decimal.NewFromInt(100)  // 억
	MaxMonthlyAmount = decimal.NewFromInt(5000) // 만원
	MaxReturnRate    = decimal.NewFromFloat(0.15)
	MaxInflationRate = decimal.NewFromFloat(0.10)

	monthsPerYear = decimal.NewFromInt(12)
)

// SimulationParameters are the point-estimate inputs of one projection run.
// LiquidAsset is in 억, MonthlySavings and MonthlySpend in 만원; rates are fractions.
type SimulationParameters struct {
	CurrentAge          int             `json:"current_age"`
	RetirementAge       int             `json:"retirement_age"`
	DeathAge            int             `json:"death_age"`
	LiquidAsset         decimal.Decimal `json:"liquid_asset"`
	MonthlySavings      decimal.Decimal `json:"monthly_savings"`
	MonthlySpend        decimal.Decimal `json:"monthly_spend"`
	AnnualReturnRate    decimal.Decimal `json:"annual_return_rate"`
	AnnualInflationRate decimal.Decimal `json:"annual_inflation_rate"`
}

// Validate rejects parameters outside the dashboard's input ranges.
func (p SimulationParameters) Validate() error {
	ages := []struct {
		field    string
		value    int
		min, max int
	}{
		{"current age", p.CurrentAge, MinCurrentAge, MaxCurrentAge},
		{"retirement age", p.RetirementAge, MinRetirementAge, MaxRetirementAge},
		{"death age", p.DeathAge, MinDeathAge, MaxDeathAge},
	}
	for _, a := range ages {
		if a.value < a.min || a.value > a.max {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, a.field, a.min, a.max)
		}
	}

	if p.CurrentAge > p.RetirementAge {
		return fmt.Errorf("%w: current age %d must not exceed retirement age %d", ErrInvalidInput, p.CurrentAge, p.RetirementAge)
	}
	if p.RetirementAge > p.DeathAge {
		return fmt.Errorf("%w: retirement age %d must not exceed death age %d", ErrInvalidInput, p.RetirementAge, p.DeathAge)
	}

	amounts := []struct {
		field string
		value decimal.Decimal
		max   decimal.Decimal
	}{
		{"liquid asset", p.LiquidAsset, MaxLiquidAsset},
		{"monthly savings", p.MonthlySavings, MaxMonthlyAmount},
		{"monthly spend", p.MonthlySpend, MaxMonthlyAmount},
		{"annual return rate", p.AnnualReturnRate, MaxReturnRate},
		{"annual inflation rate", p.AnnualInflationRate, MaxInflationRate},
	}
	for _, a := range amounts {
		if a.value.IsNegative() || a.value.GreaterThan(a.max) {
			return fmt.Errorf("%w: %s must be between 0 and %s", ErrInvalidInput, a.field, a.max)
		}
	}

	return nil
}

// Years returns the number of simulated years, current age through death age inclusive.
func (p SimulationParameters) Years() int {
	return p.DeathAge - p.CurrentAge + 1
}

// AnnualSavings returns one year of pre-retirement savings in won.
func (p SimulationParameters) AnnualSavings() decimal.Decimal {
	return ManwonToWon(p.MonthlySavings).Mul(monthsPerYear)
}

// BaseAnnualSpend returns one year of post-retirement spending in won, before inflation.
func (p SimulationParameters) BaseAnnualSpend() decimal.Decimal {
	return ManwonToWon(p.MonthlySpend).Mul(monthsPerYear)
}
