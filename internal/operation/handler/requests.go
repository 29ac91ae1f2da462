package handler

import (
	"strings"
	"time"

	"vigia/internal/operation"
	"vigia/internal/risk"
	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

// RiskPartyPayload is the minimal party view used by previews.
type RiskPartyPayload struct {
	PersonType             string `json:"person_type"`
	CountryOfIncorporation string `json:"country_of_incorporation"`
	PEP                    bool   `json:"pep"`
}

func (p *RiskPartyPayload) toRiskParty(role string) (risk.Party, error) {
	personType := risk.PersonType(strings.TrimSpace(p.PersonType))
	switch personType {
	case "":
		personType = risk.PersonNatural
	case risk.PersonNatural, risk.PersonLegalEntity:
	default:
		return risk.Party{}, dErrors.New(dErrors.CodeValidation, role+".person_type must be NATURAL or LEGAL_ENTITY")
	}
	return risk.Party{
		Type:                   personType,
		CountryOfIncorporation: strings.TrimSpace(p.CountryOfIncorporation),
		PEP:                    p.PEP,
	}, nil
}

// PreviewRequest is the HTTP request body for POST /operations/preview.
type PreviewRequest struct {
	ActType       string           `json:"act_type"`
	DeclaredValue float64          `json:"declared_value"`
	CashAmount    float64          `json:"cash_amount"`
	Seller        RiskPartyPayload `json:"seller"`
	Buyer         RiskPartyPayload `json:"buyer"`

	parsedInput risk.Input
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *PreviewRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	actType, err := risk.ParseActType(strings.TrimSpace(r.ActType))
	if err != nil {
		return err
	}
	if r.DeclaredValue <= 0 {
		return dErrors.New(dErrors.CodeValidation, "declared_value must be positive")
	}
	if r.CashAmount < 0 {
		return dErrors.New(dErrors.CodeValidation, "cash_amount must not be negative")
	}

	seller, err := r.Seller.toRiskParty("seller")
	if err != nil {
		return err
	}
	buyer, err := r.Buyer.toRiskParty("buyer")
	if err != nil {
		return err
	}

	r.parsedInput = risk.Input{
		ActType:       actType,
		DeclaredValue: r.DeclaredValue,
		CashAmount:    r.CashAmount,
		Seller:        seller,
		Buyer:         buyer,
	}
	return nil
}

// ParsedInput returns the validated risk input.
func (r *PreviewRequest) ParsedInput() risk.Input {
	return r.parsedInput
}

// PartyPayload is the full due-diligence party record for intake.
type PartyPayload struct {
	Identification         string  `json:"identification"`
	FullName               string  `json:"full_name"`
	PersonType             string  `json:"person_type"`
	CountryOfIncorporation string  `json:"country_of_incorporation"`
	PEP                    bool    `json:"pep"`
	MonthlyIncome          float64 `json:"monthly_income"`
}

func (p *PartyPayload) toRecord(role string) (operation.PartyRecord, error) {
	p.Identification = strings.TrimSpace(p.Identification)
	p.FullName = strings.TrimSpace(p.FullName)
	if p.Identification == "" {
		return operation.PartyRecord{}, dErrors.New(dErrors.CodeValidation, role+".identification is required")
	}
	if p.FullName == "" {
		return operation.PartyRecord{}, dErrors.New(dErrors.CodeValidation, role+".full_name is required")
	}
	if p.MonthlyIncome < 0 {
		return operation.PartyRecord{}, dErrors.New(dErrors.CodeValidation, role+".monthly_income must not be negative")
	}

	riskParty, err := (&RiskPartyPayload{
		PersonType:             p.PersonType,
		CountryOfIncorporation: p.CountryOfIncorporation,
		PEP:                    p.PEP,
	}).toRiskParty(role)
	if err != nil {
		return operation.PartyRecord{}, err
	}

	return operation.PartyRecord{
		Identification:         p.Identification,
		FullName:               p.FullName,
		Type:                   riskParty.Type,
		CountryOfIncorporation: riskParty.CountryOfIncorporation,
		PEP:                    p.PEP,
		MonthlyIncome:          p.MonthlyIncome,
	}, nil
}

// CreateRequest is the HTTP request body for POST /operations.
type CreateRequest struct {
	NotaryID      string       `json:"notary_id"`
	ActType       string       `json:"act_type"`
	DeclaredValue float64      `json:"declared_value"`
	CashAmount    float64      `json:"cash_amount"`
	ExecutionDate time.Time    `json:"execution_date"`
	Seller        PartyPayload `json:"seller"`
	Buyer         PartyPayload `json:"buyer"`

	parsedInput operation.CreateInput
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	notaryID, err := id.ParseNotaryID(strings.TrimSpace(r.NotaryID))
	if err != nil {
		return err
	}
	actType, err := risk.ParseActType(strings.TrimSpace(r.ActType))
	if err != nil {
		return err
	}
	if r.DeclaredValue <= 0 {
		return dErrors.New(dErrors.CodeValidation, "declared_value must be positive")
	}
	if r.CashAmount < 0 {
		return dErrors.New(dErrors.CodeValidation, "cash_amount must not be negative")
	}

	seller, err := r.Seller.toRecord("seller")
	if err != nil {
		return err
	}
	buyer, err := r.Buyer.toRecord("buyer")
	if err != nil {
		return err
	}

	r.parsedInput = operation.CreateInput{
		NotaryID:      notaryID,
		ActType:       actType,
		DeclaredValue: r.DeclaredValue,
		CashAmount:    r.CashAmount,
		Seller:        seller,
		Buyer:         buyer,
		ExecutionDate: r.ExecutionDate,
	}
	return nil
}

// ParsedInput returns the validated intake input.
func (r *CreateRequest) ParsedInput() operation.CreateInput {
	return r.parsedInput
}
