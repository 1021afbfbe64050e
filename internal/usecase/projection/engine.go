package projection

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/lifeplan-backend/internal/domain"
)

var one = decimal.NewFromInt(1)

// Run simulates the plan year by year from current age to death age inclusive.
// Logic, for each year i:
//  1. Apply investment growth to the liquid balance
//  2. Before retirement add one year of savings, otherwise withdraw one year of
//     spending inflated by (1 + inflation)^i
//  3. For each unsold holding compute its inflated equity net of loan (floored at 0).
//     SELL_BEFORE_RETIREMENT holdings past their disposal age are sold: the equity
//     moves into liquid assets and the holding leaves the real-estate total for good.
//  4. Record the year and note the first age at which liquid assets go negative
//
// Holdings are copied before the run, so the caller's slice is never mutated.
func Run(params domain.SimulationParameters, holdings []domain.PropertyHolding) (*domain.Projection, error) {
	years := params.Years()
	if years <= 0 {
		return nil, fmt.Errorf("%w: trajectory length %d for ages %d..%d",
			domain.ErrInvariantViolation, years, params.CurrentAge, params.DeathAge)
	}

	props := make([]domain.PropertyHolding, len(holdings))
	copy(props, holdings)

	growth := one.Add(params.AnnualReturnRate)
	inflation := one.Add(params.AnnualInflationRate)
	annualSave := params.AnnualSavings()
	baseAnnualSpend := params.BaseAnnualSpend()

	liquid := domain.EokToWon(params.LiquidAsset)
	inflationFactor := one // (1 + inflation)^i

	projection := &domain.Projection{
		Points: make([]domain.TrajectoryPoint, 0, years),
		Sales:  make([]domain.SaleEvent, 0),
	}

	for i := 0; i < years; i++ {
		age := params.CurrentAge + i

		// Growth first, then the year's cash flow
		liquid = liquid.Mul(growth)
		if age < params.RetirementAge {
			liquid = liquid.Add(annualSave)
		} else {
			liquid = liquid.Sub(baseAnnualSpend.Mul(inflationFactor))
		}

		realEstate := decimal.Zero
		for j := range props {
			p := &props[j]
			if p.IsSold {
				continue
			}

			equity := p.EquityAt(inflationFactor)
			if p.Strategy == domain.StrategySellBeforeRetirement && age >= p.DisposalAge {
				liquid = liquid.Add(equity)
				p.IsSold = true
				projection.Sales = append(projection.Sales, domain.SaleEvent{
					HoldingID: p.ID,
					Name:      p.Name,
					Age:       age,
					Proceeds:  equity,
				})
				continue
			}
			realEstate = realEstate.Add(equity)
		}

		projection.Points = append(projection.Points, domain.TrajectoryPoint{
			Age:              age,
			LiquidAsset:      liquid,
			RealEstateEquity: realEstate,
		})

		if projection.DepletionAge == nil && liquid.IsNegative() {
			depletionAge := age
			projection.DepletionAge = &depletionAge
		}

		inflationFactor = inflationFactor.Mul(inflation)
	}

	return projection, nil
}
