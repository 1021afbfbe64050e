package domain

import "github.com/shopspring/decimal"

// Monetary inputs are entered in two large units:
//   - 억 (eok) = 100,000,000 won, used for asset balances and property values
//   - 만원 (manwon) = 10,000 won, used for monthly cash flows
//
// The projection engine works in won. Conversions use decimal shifts so they are exact.
var (
	Eok    = decimal.New(1, 8)
	Manwon = decimal.New(1, 4)
)

// EokToWon converts an amount in 억 to won.
func EokToWon(v decimal.Decimal) decimal.Decimal {
	return v.Shift(8)
}

// ManwonToWon converts an amount in 만원 to won.
func ManwonToWon(v decimal.Decimal) decimal.Decimal {
	return v.Shift(4)
}

// WonToEok converts won to whole 억, rounding half to even.
func WonToEok(v decimal.Decimal) int64 {
	return v.Shift(-8).RoundBank(0).IntPart()
}

// WonToManwon converts won to 만원, truncating toward zero.
func WonToManwon(v decimal.Decimal) decimal.Decimal {
	return v.Shift(-4).Truncate(0)
}
