package scoring

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/lifeplan-backend/internal/domain"
)

const (
	baseScoreNoDepletion = 70
	maxLongevityBonus    = 30
	leveragePenalty      = 5
)

// leverageThreshold is the real-estate share of the peak asset base above which
// the leverage penalty applies.
var leverageThreshold = decimal.NewFromFloat(0.8)

// Score computes the readiness score and grade from raw (won) series.
// Logic:
//   - No depletion: 70 + min(30, deathAge - retirementAge)
//   - Depletion: gap = depletionAge - retirementAge; >=20 -> 80, >=10 -> 65, else 40
//   - Minus 5 when max(realEstate) / (max(liquid) + max(realEstate)) > 0.8,
//     skipped when that total is not positive
//   - Clamped to [0, 100]
func Score(depletionAge *int, liquid, realEstate []decimal.Decimal, retirementAge, deathAge int) domain.ScoreResult {
	var base int
	if depletionAge == nil {
		base = baseScoreNoDepletion + min(maxLongevityBonus, deathAge-retirementAge)
	} else {
		gap := *depletionAge - retirementAge
		switch {
		case gap >= 20:
			base = 80
		case gap >= 10:
			base = 65
		default:
			base = 40
		}
	}

	maxLiquid := maxOf(liquid)
	maxRealEstate := maxOf(realEstate)
	total := maxLiquid.Add(maxRealEstate)

	penalty := 0
	if total.IsPositive() && maxRealEstate.GreaterThan(total.Mul(leverageThreshold)) {
		penalty = leveragePenalty
	}

	score := max(domain.MinScore, min(domain.MaxScore, base-penalty))

	result := domain.ScoreResult{
		Score: score,
		Grade: domain.GradeForScore(score),
	}
	if depletionAge != nil {
		age := *depletionAge
		result.DepletionAge = &age
	}
	return result
}

// ScoreProjection scores a projection produced by the engine.
func ScoreProjection(p *domain.Projection, retirementAge, deathAge int) domain.ScoreResult {
	return Score(p.DepletionAge, p.LiquidSeries(), p.RealEstateSeries(), retirementAge, deathAge)
}

// maxOf returns the largest value, or zero for an empty series.
func maxOf(series []decimal.Decimal) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	return decimal.Max(series[0], series[1:]...)
}
