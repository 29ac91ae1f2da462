// Package operation holds the notarial operation snapshot and the intake
// service that runs risk evaluation over it.
package operation

import (
	"time"

	"vigia/internal/risk"
	id "vigia/pkg/domain"
)

// PartyRecord is the due-diligence snapshot of one transaction party.
type PartyRecord struct {
	ID                     id.PartyID      `json:"id"`
	Identification         string          `json:"identification"`
	FullName               string          `json:"full_name"`
	Type                   risk.PersonType `json:"person_type"`
	CountryOfIncorporation string          `json:"country_of_incorporation,omitempty"`
	PEP                    bool            `json:"pep"`
	MonthlyIncome          float64         `json:"monthly_income,omitempty"`
}

// Operation is an immutable record of a notarial act under evaluation.
// CreatedAt is when the record entered the system; ExecutionDate is when the
// act is scheduled to be signed.
type Operation struct {
	ID            id.OperationID `json:"id"`
	NotaryID      id.NotaryID    `json:"notary_id"`
	ActType       risk.ActType   `json:"act_type"`
	DeclaredValue float64        `json:"declared_value"`
	CashAmount    float64        `json:"cash_amount"`
	Seller        PartyRecord    `json:"seller"`
	Buyer         PartyRecord    `json:"buyer"`
	ExecutionDate time.Time      `json:"execution_date"`
	CreatedAt     time.Time      `json:"created_at"`
}

// RiskInput projects the operation onto the scoring model's input.
func (o Operation) RiskInput() risk.Input {
	return risk.Input{
		ActType:       o.ActType,
		DeclaredValue: o.DeclaredValue,
		CashAmount:    o.CashAmount,
		Seller:        o.Seller.RiskParty(),
		Buyer:         o.Buyer.RiskParty(),
	}
}

// RiskParty projects the party record onto the scoring model's party view.
func (p PartyRecord) RiskParty() risk.Party {
	return risk.Party{
		Type:                   p.Type,
		CountryOfIncorporation: p.CountryOfIncorporation,
		PEP:                    p.PEP,
	}
}
