package fundraising

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mateoquintero/venturelink-backend/pkg/db/models"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

// PitchDTO is the transport shape of a fundraising pitch.
type PitchDTO struct {
	ID               uuid.UUID         `json:"id"`
	VendorID         uuid.UUID         `json:"vendor_id"`
	Title            string            `json:"title"`
	ProblemStatement string            `json:"problem_statement"`
	Solution         string            `json:"solution"`
	MarketSize       string            `json:"market_size,omitempty"`
	BusinessModel    string            `json:"business_model,omitempty"`
	Traction         string            `json:"traction,omitempty"`
	FundingAmount    string            `json:"funding_amount"`
	EquityOffered    decimal.Decimal   `json:"equity_offered"`
	Timeline         string            `json:"timeline,omitempty"`
	PitchDeckURL     string            `json:"pitch_deck_url,omitempty"`
	Status           enums.PitchStatus `json:"status"`
	InvestorInterest int               `json:"investor_interest"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// CreatePitchDTO holds the data required to persist a new pitch.
type CreatePitchDTO struct {
	VendorID         uuid.UUID
	Title            string
	ProblemStatement string
	Solution         string
	MarketSize       string
	BusinessModel    string
	Traction         string
	FundingAmount    string
	EquityOffered    decimal.Decimal
	Timeline         string
	PitchDeckURL     string
}

// InvestorMatchDTO is one ranked investor for a pitch.
type InvestorMatchDTO struct {
	Investor        string `json:"investor"`
	Firm            string `json:"firm,omitempty"`
	MatchScore      int    `json:"match_score"`
	InvestmentStage string `json:"investment_stage,omitempty"`
	ContactInfo     string `json:"contact_info,omitempty"`
}

// SlideDTO is one slide of a pitch deck template.
type SlideDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TemplateDTO is an industry-specific pitch deck outline.
type TemplateDTO struct {
	Slides []SlideDTO `json:"slides"`
	Tips   []string   `json:"tips"`
}

func FromModel(p *models.Pitch) *PitchDTO {
	if p == nil {
		return nil
	}
	return &PitchDTO{
		ID:               p.ID,
		VendorID:         p.VendorID,
		Title:            p.Title,
		ProblemStatement: p.ProblemStatement,
		Solution:         p.Solution,
		MarketSize:       p.MarketSize,
		BusinessModel:    p.BusinessModel,
		Traction:         p.Traction,
		FundingAmount:    p.FundingAmount,
		EquityOffered:    p.EquityOffered,
		Timeline:         p.Timeline,
		PitchDeckURL:     p.PitchDeckURL,
		Status:           p.Status,
		InvestorInterest: p.InvestorInterest,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (c CreatePitchDTO) ToModel() *models.Pitch {
	timeline := c.Timeline
	if timeline == "" {
		timeline = "6-12 months"
	}
	return &models.Pitch{
		VendorID:         c.VendorID,
		Title:            c.Title,
		ProblemStatement: c.ProblemStatement,
		Solution:         c.Solution,
		MarketSize:       c.MarketSize,
		BusinessModel:    c.BusinessModel,
		Traction:         c.Traction,
		FundingAmount:    c.FundingAmount,
		EquityOffered:    c.EquityOffered,
		Timeline:         timeline,
		PitchDeckURL:     c.PitchDeckURL,
		Status:           enums.PitchStatusDraft,
	}
}
