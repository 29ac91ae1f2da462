// Package risk implements the deterministic risk-scoring model and the
// due-diligence tier classifier for notarial operations. Everything in this
// package is pure: no I/O, no clocks, no side effects.
package risk

import (
	dErrors "vigia/pkg/domain-errors"
)

// ActType is the closed set of notarial act types the model knows how to
// weigh. Unknown values are rejected at validation time instead of silently
// defaulting.
type ActType string

const (
	ActSale                 ActType = "SALE"
	ActMortgage             ActType = "MORTGAGE"
	ActDonation             ActType = "DONATION"
	ActCompanyFormation     ActType = "COMPANY_FORMATION"
	ActMaritalLiquidation   ActType = "MARITAL_PARTNERSHIP_LIQUIDATION"
	ActPowerOfAttorney      ActType = "POWER_OF_ATTORNEY"
	ActWill                 ActType = "WILL"
	ActMortgageCancellation ActType = "MORTGAGE_CANCELLATION"
	ActOther                ActType = "OTHER"
)

// ParseActType validates a raw act type string.
func ParseActType(raw string) (ActType, error) {
	act := ActType(raw)
	switch act {
	case ActSale, ActMortgage, ActDonation, ActCompanyFormation,
		ActMaritalLiquidation, ActPowerOfAttorney, ActWill,
		ActMortgageCancellation, ActOther:
		return act, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown act type: "+raw)
}

// PersonType distinguishes natural persons from legal entities.
type PersonType string

const (
	PersonNatural     PersonType = "NATURAL"
	PersonLegalEntity PersonType = "LEGAL_ENTITY"
)

// Party is the minimal party summary the model needs: person type, country
// of incorporation (legal entities only), and the politically-exposed flag.
type Party struct {
	Type                   PersonType
	CountryOfIncorporation string
	PEP                    bool
}

// Input is the immutable snapshot of an operation's risk-relevant
// attributes, constructed once per evaluation.
type Input struct {
	ActType       ActType
	DeclaredValue float64
	CashAmount    float64
	Seller        Party
	Buyer         Party
}

// FactorKind tags a triggered risk factor.
type FactorKind string

const (
	FactorActType         FactorKind = "ACT_TYPE"
	FactorHighValue       FactorKind = "HIGH_VALUE"
	FactorHighCash        FactorKind = "HIGH_CASH"
	FactorSellerPEP       FactorKind = "PEP_SELLER"
	FactorBuyerPEP        FactorKind = "PEP_BUYER"
	FactorForeignSeller   FactorKind = "FOREIGN_ENTITY_SELLER"
	FactorForeignBuyer    FactorKind = "FOREIGN_ENTITY_BUYER"
	FactorHighRiskCountry FactorKind = "HIGH_RISK_JURISDICTION"
)

// Factor is one triggered risk contribution. Order in the factor list is
// insignificant; only the weight sum matters.
type Factor struct {
	Kind        FactorKind `json:"kind"`
	Description string     `json:"description"`
	Weight      int        `json:"weight"`
}

// Level buckets a score into the four regulatory risk levels.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelVeryHigh Level = "VERY_HIGH"
)

// Tier is the required due-diligence intensity.
type Tier string

const (
	TierSimplified  Tier = "SIMPLIFIED"
	TierStandard    Tier = "STANDARD"
	TierReinforced  Tier = "REINFORCED"
	TierIntensified Tier = "INTENSIFIED"
)

// Assessment is the derived result of evaluating one operation. It is
// returned to callers and never persisted by this package.
type Assessment struct {
	Score   int      `json:"score"`
	Level   Level    `json:"level"`
	Factors []Factor `json:"factors"`
	Tier    Tier     `json:"dd_tier"`
}
