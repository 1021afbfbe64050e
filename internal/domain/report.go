package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppTypeLifePlan tags consultation submissions coming from the life plan tool.
const AppTypeLifePlan = "life"

// ConsultationReport is the flat summary forwarded to the reporting collaborator.
// Amounts use the units the user entered them in.
type ConsultationReport struct {
	Age            int             `json:"age"`
	RetireAge      int             `json:"retire_age"`
	DeathAge       int             `json:"death_age"`
	Asset          decimal.Decimal `json:"asset"`    // 억
	Save           decimal.Decimal `json:"save"`     // 만원
	RatePct        int             `json:"rate_pct"` // annual return, percent
	ReAsset        decimal.Decimal `json:"re_asset"` // today's net real-estate equity, 억
	PropsStr       string          `json:"props_str"`
	PropsJSON      string          `json:"props_json"`
	Spend          decimal.Decimal `json:"spend"` // base monthly spend, 만원
	GolfFreq       GolfFrequency   `json:"golf_freq"`
	TravelFreq     TravelFrequency `json:"travel_freq"`
	InflationLabel string          `json:"inflation_label"`
	InflationPct   decimal.Decimal `json:"inflation_pct"`
	Score          int             `json:"score"`
	Grade          Grade           `json:"grade"`
	ShortfallTxt   string          `json:"shortfall_txt"`
}

// Contact identifies the person requesting a consultation
type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Validate requires a name and a phone number.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: contact name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: contact phone cannot be empty", ErrInvalidInput)
	}
	return nil
}

// Submission is a consultation request stored for the reporting collaborator
type Submission struct {
	ID        uuid.UUID
	AppType   string
	Contact   Contact
	Report    ConsultationReport
	CreatedAt time.Time
}
