package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/usecase/ledger"
	"github.com/simaogato/lifeplan-backend/internal/usecase/planner"
)

// Scenario is a YAML description of one planning session.
// Asset values are in 억, monthly amounts in 만원.
type Scenario struct {
	CurrentAge     int                `yaml:"current_age"`
	RetirementAge  int                `yaml:"retirement_age"`
	DeathAge       int                `yaml:"death_age"`
	LiquidAsset    float64            `yaml:"liquid_asset"`
	MonthlySavings float64            `yaml:"monthly_savings"`
	ReturnRatePct  int                `yaml:"return_rate_pct"`
	Lifestyle      ScenarioLifestyle  `yaml:"lifestyle"`
	Inflation      string             `yaml:"inflation"`
	Properties     []ScenarioProperty `yaml:"properties"`
}

type ScenarioLifestyle struct {
	BaseMonthlySpend float64 `yaml:"base_monthly_spend"`
	Golf             string  `yaml:"golf"`
	Travel           string  `yaml:"travel"`
}

type ScenarioProperty struct {
	Name          string  `yaml:"name"`
	CurrentValue  float64 `yaml:"current_value"`
	PurchasePrice float64 `yaml:"purchase_price"`
	LoanBalance   float64 `yaml:"loan_balance"`
	Strategy      string  `yaml:"strategy"`
	DisposalAge   int     `yaml:"disposal_age"`
}

// LoadScenario reads a scenario file
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()
	return ParseScenario(f)
}

// ParseScenario decodes a scenario, rejecting unknown keys
func ParseScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &s, nil
}

// Input converts the scenario into the planner's form
func (s *Scenario) Input() planner.SimulateInput {
	return planner.SimulateInput{
		CurrentAge:     s.CurrentAge,
		RetirementAge:  s.RetirementAge,
		DeathAge:       s.DeathAge,
		LiquidAsset:    decimal.NewFromFloat(s.LiquidAsset),
		MonthlySavings: decimal.NewFromFloat(s.MonthlySavings),
		ReturnRatePct:  s.ReturnRatePct,
		Lifestyle: domain.Lifestyle{
			BaseMonthlySpend: decimal.NewFromFloat(s.Lifestyle.BaseMonthlySpend),
			Golf:             domain.GolfFrequency(s.Lifestyle.Golf),
			Travel:           domain.TravelFrequency(s.Lifestyle.Travel),
		},
		Inflation: domain.InflationPreset(s.Inflation),
	}
}

// HoldingInputs converts the scenario's properties into ledger inputs
func (s *Scenario) HoldingInputs() ([]ledger.AddHoldingInput, error) {
	inputs := make([]ledger.AddHoldingInput, 0, len(s.Properties))
	for _, p := range s.Properties {
		strategy, err := domain.ParseStrategy(p.Strategy)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Name, err)
		}
		inputs = append(inputs, ledger.AddHoldingInput{
			Name:          p.Name,
			CurrentValue:  decimal.NewFromFloat(p.CurrentValue),
			PurchasePrice: decimal.NewFromFloat(p.PurchasePrice),
			LoanBalance:   decimal.NewFromFloat(p.LoanBalance),
			Strategy:      strategy,
			DisposalAge:   p.DisposalAge,
			CurrentAge:    s.CurrentAge,
			DeathAge:      s.DeathAge,
		})
	}
	return inputs, nil
}
