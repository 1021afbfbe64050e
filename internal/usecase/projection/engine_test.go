package projection

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/lifeplan-backend/internal/domain"
)

// baselineParameters is the dashboard's default scenario:
// 50 -> retire 60 -> 90, 3억 liquid, 100만원/month saved, 300만원/month spent,
// 4% return, 3.5% inflation.
func baselineParameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		CurrentAge:          50,
		RetirementAge:       60,
		DeathAge:            90,
		LiquidAsset:         decimal.NewFromInt(3),
		MonthlySavings:      decimal.NewFromInt(100),
		MonthlySpend:        decimal.NewFromInt(300),
		AnnualReturnRate:    decimal.NewFromFloat(0.04),
		AnnualInflationRate: decimal.NewFromFloat(0.035),
	}
}

func sellHolding(value, loan float64, disposalAge int) domain.PropertyHolding {
	return domain.PropertyHolding{
		ID:            uuid.New(),
		Name:          "Seocho apartment",
		CurrentValue:  decimal.NewFromFloat(value),
		PurchasePrice: decimal.NewFromInt(5),
		LoanBalance:   decimal.NewFromFloat(loan),
		Strategy:      domain.StrategySellBeforeRetirement,
		DisposalAge:   disposalAge,
	}
}

func inflationFactor(rate decimal.Decimal, years int) decimal.Decimal {
	f := decimal.NewFromInt(1)
	for i := 0; i < years; i++ {
		f = f.Mul(decimal.NewFromInt(1).Add(rate))
	}
	return f
}

func TestRun_BaselineScenario(t *testing.T) {
	params := baselineParameters()

	projection, err := Run(params, nil)
	require.NoError(t, err)

	require.Len(t, projection.Points, 41)
	assert.Equal(t, 50, projection.Points[0].Age)
	assert.Equal(t, 90, projection.Points[40].Age)

	// 3e8 * 1.04 + 100 * 12 * 1e4
	expected := decimal.NewFromInt(300_000_000).Mul(decimal.NewFromFloat(1.04)).Add(decimal.NewFromInt(12_000_000))
	assert.True(t, projection.Points[0].LiquidAsset.Equal(expected), "got %s", projection.Points[0].LiquidAsset)
	assert.True(t, projection.Points[0].LiquidAsset.Equal(decimal.NewFromInt(324_000_000)))

	for _, pt := range projection.Points {
		assert.True(t, pt.RealEstateEquity.IsZero(), "no holdings means no real-estate equity at age %d", pt.Age)
	}
	assert.Empty(t, projection.Sales)
}

func TestRun_GrowthBeforeCashFlow(t *testing.T) {
	params := baselineParameters()
	params.CurrentAge = 60 // retired from year 0

	projection, err := Run(params, nil)
	require.NoError(t, err)

	// year 0: 3e8 * 1.04 - 300만 * 12 * 1.035^0
	expected := decimal.NewFromInt(312_000_000).Sub(decimal.NewFromInt(36_000_000))
	assert.True(t, projection.Points[0].LiquidAsset.Equal(expected))

	// year 1: previous * 1.04 - 3600만 * 1.035
	year1 := expected.Mul(decimal.NewFromFloat(1.04)).Sub(decimal.NewFromInt(36_000_000).Mul(decimal.NewFromFloat(1.035)))
	assert.True(t, projection.Points[1].LiquidAsset.Equal(year1))
}

func TestRun_SellBeforeRetirement(t *testing.T) {
	params := baselineParameters()
	holding := sellHolding(10, 2, 60)

	without, err := Run(params, nil)
	require.NoError(t, err)
	with, err := Run(params, []domain.PropertyHolding{holding})
	require.NoError(t, err)

	require.Len(t, with.Points, params.Years())

	// Net equity at 60: 10억 inflated for 10 years, minus the 2억 loan
	saleEquity := decimal.NewFromInt(1_000_000_000).
		Mul(inflationFactor(params.AnnualInflationRate, 10)).
		Sub(decimal.NewFromInt(200_000_000))

	for i, pt := range with.Points {
		base := without.Points[i]
		if pt.Age < 60 {
			expectedEquity := decimal.NewFromInt(1_000_000_000).
				Mul(inflationFactor(params.AnnualInflationRate, i)).
				Sub(decimal.NewFromInt(200_000_000))
			assert.True(t, pt.RealEstateEquity.Equal(expectedEquity), "equity at age %d", pt.Age)
			assert.True(t, pt.LiquidAsset.Equal(base.LiquidAsset), "liquid unaffected before sale at age %d", pt.Age)
			continue
		}

		assert.True(t, pt.RealEstateEquity.IsZero(), "sold holding contributes nothing at age %d", pt.Age)

		// The proceeds land in the sale year and then simply compound
		growth := inflationFactor(params.AnnualReturnRate, pt.Age-60)
		assert.True(t, pt.LiquidAsset.Sub(base.LiquidAsset).Equal(saleEquity.Mul(growth)), "liquid at age %d", pt.Age)
	}

	require.Len(t, with.Sales, 1)
	assert.Equal(t, 60, with.Sales[0].Age)
	assert.Equal(t, holding.ID, with.Sales[0].HoldingID)
	assert.True(t, with.Sales[0].Proceeds.Equal(saleEquity))
}

func TestRun_DisposalBeforeRetirementSellsAtDisposalAge(t *testing.T) {
	params := baselineParameters()

	projection, err := Run(params, []domain.PropertyHolding{sellHolding(4, 0, 55)})
	require.NoError(t, err)

	require.Len(t, projection.Sales, 1)
	assert.Equal(t, 55, projection.Sales[0].Age)

	pt54, _ := projection.PointAt(54)
	pt55, _ := projection.PointAt(55)
	assert.True(t, pt54.RealEstateEquity.IsPositive())
	assert.True(t, pt55.RealEstateEquity.IsZero())
}

func TestRun_HoldAndInheritanceAreNeverSold(t *testing.T) {
	params := baselineParameters()
	hold := sellHolding(5, 1, 55)
	hold.Strategy = domain.StrategyHold
	inherit := sellHolding(3, 0, 60)
	inherit.Strategy = domain.StrategyInheritancePlan

	projection, err := Run(params, []domain.PropertyHolding{hold, inherit})
	require.NoError(t, err)

	assert.Empty(t, projection.Sales)
	last := projection.Points[len(projection.Points)-1]
	expected := decimal.NewFromInt(800_000_000).Mul(inflationFactor(params.AnnualInflationRate, 40)).
		Sub(decimal.NewFromInt(100_000_000))
	assert.True(t, last.RealEstateEquity.Equal(expected))
}

func TestRun_UnderwaterHoldingFlooredAtZero(t *testing.T) {
	params := baselineParameters()
	params.AnnualInflationRate = decimal.Zero
	underwater := sellHolding(2, 5, 70)
	underwater.Strategy = domain.StrategyHold

	projection, err := Run(params, []domain.PropertyHolding{underwater})
	require.NoError(t, err)

	for _, pt := range projection.Points {
		assert.False(t, pt.RealEstateEquity.IsNegative(), "equity negative at age %d", pt.Age)
		assert.True(t, pt.RealEstateEquity.IsZero())
	}
}

func TestRun_ImmediateDepletion(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:          60,
		RetirementAge:       60,
		DeathAge:            90,
		LiquidAsset:         decimal.Zero,
		MonthlySavings:      decimal.Zero,
		MonthlySpend:        decimal.NewFromInt(300),
		AnnualReturnRate:    decimal.Zero,
		AnnualInflationRate: decimal.NewFromFloat(0.035),
	}

	projection, err := Run(params, nil)
	require.NoError(t, err)

	require.NotNil(t, projection.DepletionAge)
	assert.Equal(t, 60, *projection.DepletionAge)
	assert.True(t, projection.Points[0].LiquidAsset.Equal(decimal.NewFromInt(-36_000_000)))

	for i := 1; i < len(projection.Points); i++ {
		assert.True(t, projection.Points[i].LiquidAsset.LessThan(projection.Points[i-1].LiquidAsset),
			"liquid must strictly decrease at age %d", projection.Points[i].Age)
	}
}

func TestRun_DepletionAgeSurvivesRecovery(t *testing.T) {
	params := domain.SimulationParameters{
		CurrentAge:          60,
		RetirementAge:       60,
		DeathAge:            90,
		LiquidAsset:         decimal.Zero,
		MonthlySavings:      decimal.Zero,
		MonthlySpend:        decimal.NewFromInt(100),
		AnnualReturnRate:    decimal.Zero,
		AnnualInflationRate: decimal.Zero,
	}

	// A 20억 sale at 65 pulls liquid assets back above zero
	projection, err := Run(params, []domain.PropertyHolding{sellHolding(20, 0, 65)})
	require.NoError(t, err)

	pt65, _ := projection.PointAt(65)
	assert.True(t, pt65.LiquidAsset.IsPositive())

	require.NotNil(t, projection.DepletionAge)
	assert.Equal(t, 60, *projection.DepletionAge, "later recovery must not clear the first depletion age")
}

func TestRun_DoesNotMutateCallerHoldings(t *testing.T) {
	params := baselineParameters()
	holdings := []domain.PropertyHolding{sellHolding(10, 2, 60)}

	first, err := Run(params, holdings)
	require.NoError(t, err)
	assert.False(t, holdings[0].IsSold, "caller's holding must stay unsold")

	second, err := Run(params, holdings)
	require.NoError(t, err)

	require.Len(t, second.Sales, 1)
	for i := range first.Points {
		assert.True(t, first.Points[i].LiquidAsset.Equal(second.Points[i].LiquidAsset))
		assert.True(t, first.Points[i].RealEstateEquity.Equal(second.Points[i].RealEstateEquity))
	}
}

func TestRun_TrajectoryLengthInvariant(t *testing.T) {
	for current := 20; current <= 80; current += 15 {
		for death := 70; death <= 100; death += 10 {
			if death < current {
				continue
			}
			params := baselineParameters()
			params.CurrentAge = current
			params.RetirementAge = max(current, 60)
			params.DeathAge = death

			projection, err := Run(params, []domain.PropertyHolding{sellHolding(3, 1, death)})
			require.NoError(t, err)
			assert.Len(t, projection.Points, death-current+1)

			if projection.DepletionAge != nil {
				for _, pt := range projection.Points {
					if pt.Age < *projection.DepletionAge {
						assert.False(t, pt.LiquidAsset.IsNegative(), "depletion age must be the first negative year")
					}
				}
				pt, _ := projection.PointAt(*projection.DepletionAge)
				assert.True(t, pt.LiquidAsset.IsNegative())
			}
		}
	}
}

func TestRun_InvalidAgeRange(t *testing.T) {
	params := baselineParameters()
	params.CurrentAge = 91

	projection, err := Run(params, nil)
	assert.Nil(t, projection)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "trajectory length 0")
}
