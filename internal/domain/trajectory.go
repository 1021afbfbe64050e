package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrajectoryPoint is the state at the end of one simulated year. Amounts are in won.
type TrajectoryPoint struct {
	Age              int             `json:"age"`
	LiquidAsset      decimal.Decimal `json:"liquid_asset"`
	RealEstateEquity decimal.Decimal `json:"real_estate_equity"`
}

// SaleEvent records a holding liquidated into liquid assets during a run.
type SaleEvent struct {
	HoldingID uuid.UUID       `json:"holding_id"`
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Proceeds  decimal.Decimal `json:"proceeds"` // won
}

// Projection is the output of one simulation run, indexed by age from current age to death age.
type Projection struct {
	Points       []TrajectoryPoint
	Sales        []SaleEvent
	DepletionAge *int // first age with negative liquid assets, nil if never
}

// Ages returns the simulated ages in order.
func (p *Projection) Ages() []int {
	ages := make([]int, len(p.Points))
	for i, pt := range p.Points {
		ages[i] = pt.Age
	}
	return ages
}

// LiquidSeries returns liquid asset values (won) in age order.
func (p *Projection) LiquidSeries() []decimal.Decimal {
	series := make([]decimal.Decimal, len(p.Points))
	for i, pt := range p.Points {
		series[i] = pt.LiquidAsset
	}
	return series
}

// RealEstateSeries returns real-estate net equity values (won) in age order.
func (p *Projection) RealEstateSeries() []decimal.Decimal {
	series := make([]decimal.Decimal, len(p.Points))
	for i, pt := range p.Points {
		series[i] = pt.RealEstateEquity
	}
	return series
}

// PointAt returns the point for the given age.
func (p *Projection) PointAt(age int) (TrajectoryPoint, bool) {
	if len(p.Points) == 0 {
		return TrajectoryPoint{}, false
	}
	i := age - p.Points[0].Age
	if i < 0 || i >= len(p.Points) {
		return TrajectoryPoint{}, false
	}
	return p.Points[i], true
}

// NormalizedProjection is the chart-ready form of a projection, amounts in whole 억.
type NormalizedProjection struct {
	Ages          []int   `json:"ages"`
	LiquidEok     []int64 `json:"liquid_eok"`
	RealEstateEok []int64 `json:"real_estate_eok"`
	DepletionAge  *int    `json:"depletion_age,omitempty"`
}

// Normalize converts the won series to whole 억 for display. The projection is not modified.
func (p *Projection) Normalize() NormalizedProjection {
	n := NormalizedProjection{
		Ages:          p.Ages(),
		LiquidEok:     make([]int64, len(p.Points)),
		RealEstateEok: make([]int64, len(p.Points)),
	}
	for i, pt := range p.Points {
		n.LiquidEok[i] = WonToEok(pt.LiquidAsset)
		n.RealEstateEok[i] = WonToEok(pt.RealEstateEquity)
	}
	if p.DepletionAge != nil {
		age := *p.DepletionAge
		n.DepletionAge = &age
	}
	return n
}
