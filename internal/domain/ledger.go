package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// NoHoldingsLabel is the joined-names value reported when the ledger is empty.
const NoHoldingsLabel = "없음"

// PropertyLedger holds the real-estate holdings of one planning session.
// Holdings can only be added; there is no remove operation.
type PropertyLedger struct {
	holdings []PropertyHolding
}

// NewPropertyLedger creates a ledger holding copies of the given holdings.
func NewPropertyLedger(holdings ...PropertyHolding) *PropertyLedger {
	l := &PropertyLedger{holdings: make([]PropertyHolding, len(holdings))}
	copy(l.holdings, holdings)
	return l
}

// Add validates and appends a holding.
func (l *PropertyLedger) Add(h PropertyHolding) error {
	if err := h.Validate(); err != nil {
		return err
	}
	l.holdings = append(l.holdings, h)
	return nil
}

// Holdings returns a copy of the holdings, safe for the caller to mutate.
func (l *PropertyLedger) Holdings() []PropertyHolding {
	if l == nil {
		return []PropertyHolding{}
	}
	out := make([]PropertyHolding, len(l.holdings))
	copy(out, l.holdings)
	return out
}

// Len returns the number of holdings.
func (l *PropertyLedger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.holdings)
}

// Clone returns an independent copy of the ledger.
func (l *PropertyLedger) Clone() *PropertyLedger {
	return NewPropertyLedger(l.Holdings()...)
}

// Names joins holding names with ", ", or returns NoHoldingsLabel when empty.
func (l *PropertyLedger) Names() string {
	if l.Len() == 0 {
		return NoHoldingsLabel
	}
	names := make([]string, 0, len(l.holdings))
	for _, h := range l.holdings {
		names = append(names, h.Name)
	}
	return strings.Join(names, ", ")
}

// NetEquity sums today's net equity (억) across holdings.
func (l *PropertyLedger) NetEquity() decimal.Decimal {
	total := decimal.Zero
	for _, h := range l.Holdings() {
		total = total.Add(h.NetEquity())
	}
	return total
}

// TotalLoans sums outstanding loan balances (억).
func (l *PropertyLedger) TotalLoans() decimal.Decimal {
	total := decimal.Zero
	for _, h := range l.Holdings() {
		total = total.Add(h.LoanBalance)
	}
	return total
}

// MarshalJSON encodes the ledger as a JSON array of holdings.
func (l *PropertyLedger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Holdings())
}

// UnmarshalJSON decodes a JSON array of holdings.
func (l *PropertyLedger) UnmarshalJSON(data []byte) error {
	var holdings []PropertyHolding
	if err := json.Unmarshal(data, &holdings); err != nil {
		return err
	}
	if holdings == nil {
		holdings = []PropertyHolding{}
	}
	l.holdings = holdings
	return nil
}
