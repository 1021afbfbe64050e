package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifestyle_TotalMonthlySpend(t *testing.T) {
	tests := []struct {
		name   string
		golf   GolfFrequency
		travel TravelFrequency
		want   int64
	}{
		{name: "No hobbies", golf: GolfNone, travel: TravelNone, want: 300},
		{name: "Empty frequencies mean none", golf: "", travel: "", want: 300},
		{name: "Golf twice a month", golf: GolfMonthly2, travel: TravelNone, want: 380},
		{name: "Travel quarterly", golf: GolfNone, travel: TravelQuarterly, want: 433},
		// (100*40만 + 4*400만) / 12 = 466.67만 -> truncated to 466
		{name: "VIP golf and quarterly travel", golf: GolfVIP, travel: TravelQuarterly, want: 766},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Lifestyle{BaseMonthlySpend: decimal.NewFromInt(300), Golf: tt.golf, Travel: tt.travel}
			require.NoError(t, l.Validate())
			assert.True(t, l.TotalMonthlySpend().Equal(decimal.NewFromInt(tt.want)), "got %s", l.TotalMonthlySpend())
		})
	}
}

func TestLifestyle_Validate(t *testing.T) {
	l := Lifestyle{BaseMonthlySpend: decimal.NewFromInt(300), Golf: "WEEKLY"}
	assert.ErrorIs(t, l.Validate(), ErrInvalidInput)

	l = Lifestyle{BaseMonthlySpend: decimal.NewFromInt(300), Travel: "MONTHLY"}
	assert.ErrorIs(t, l.Validate(), ErrInvalidInput)

	l = Lifestyle{BaseMonthlySpend: decimal.NewFromInt(5001)}
	assert.ErrorIs(t, l.Validate(), ErrInvalidInput)
}

func TestInflationPreset(t *testing.T) {
	p, err := ParseInflationPreset("")
	require.NoError(t, err)
	assert.Equal(t, InflationNormal, p)
	assert.True(t, p.Rate().Equal(decimal.NewFromFloat(0.035)))
	assert.True(t, p.Percent().Equal(decimal.NewFromFloat(3.5)))
	assert.Equal(t, "보통(3.5%)", p.Label())

	p, err = ParseInflationPreset("SEVERE")
	require.NoError(t, err)
	assert.True(t, p.Rate().Equal(decimal.NewFromFloat(0.05)))

	_, err = ParseInflationPreset("HYPER")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLifestyle_Normalized(t *testing.T) {
	l := Lifestyle{BaseMonthlySpend: decimal.NewFromInt(300), Travel: TravelYearly1}

	got := l.Normalized()

	assert.Equal(t, GolfNone, got.Golf)
	assert.Equal(t, TravelYearly1, got.Travel)
	assert.True(t, got.BaseMonthlySpend.Equal(decimal.NewFromInt(300)))
	assert.Empty(t, l.Golf, "the receiver is left unchanged")
}
