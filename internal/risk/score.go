package risk

import (
	"fmt"

	"vigia/internal/platform/config"
	dErrors "vigia/pkg/domain-errors"
)

// Statutory thresholds. The cash limit is the legal maximum for cash in a
// single transaction before mandatory alerting applies.
const (
	HighValueThreshold = 100_000
	CashLimit          = 10_000

	maxScore = 100
)

// Model evaluates operations against the weighted factor table. The
// high-risk jurisdiction list and home jurisdiction are injected so the
// lists can be updated without code changes.
type Model struct {
	home     string
	highRisk map[string]bool
}

// NewModel builds a Model from configuration.
func NewModel(cfg config.RiskConfig) *Model {
	highRisk := make(map[string]bool, len(cfg.HighRiskJurisdictions))
	for _, country := range cfg.HighRiskJurisdictions {
		highRisk[country] = true
	}
	return &Model{home: cfg.HomeJurisdiction, highRisk: highRisk}
}

// Validate enforces the model's preconditions: a known act type and a
// positive declared value. Everything else defaults to zero contribution.
func (m *Model) Validate(input Input) error {
	if _, err := ParseActType(string(input.ActType)); err != nil {
		return err
	}
	if input.DeclaredValue <= 0 {
		return dErrors.New(dErrors.CodeValidation, "declared value must be positive")
	}
	return nil
}

// Score computes the weighted risk score and the triggered factor list.
// Weights are additive and independent; the total is clamped to [0,100].
func (m *Model) Score(input Input) (int, []Factor, error) {
	if err := m.Validate(input); err != nil {
		return 0, nil, err
	}

	factors := m.Factors(input)

	total := 0
	for _, f := range factors {
		total += f.Weight
	}
	if total > maxScore {
		total = maxScore
	}
	return total, factors, nil
}

// Factors identifies every triggered risk factor for a validated input.
func (m *Model) Factors(input Input) []Factor {
	factors := []Factor{actTypeFactor(input.ActType)}

	if input.DeclaredValue >= HighValueThreshold {
		factors = append(factors, Factor{
			Kind:        FactorHighValue,
			Description: fmt.Sprintf("High-value transaction: $%.2f", input.DeclaredValue),
			Weight:      15,
		})
	}

	if input.CashAmount >= CashLimit {
		factors = append(factors, Factor{
			Kind:        FactorHighCash,
			Description: fmt.Sprintf("Cash payment >= $%d: $%.2f", CashLimit, input.CashAmount),
			Weight:      30,
		})
	}

	if input.Seller.PEP {
		factors = append(factors, Factor{
			Kind:        FactorSellerPEP,
			Description: "Seller is a politically exposed person",
			Weight:      40,
		})
	}
	if input.Buyer.PEP {
		factors = append(factors, Factor{
			Kind:        FactorBuyerPEP,
			Description: "Buyer is a politically exposed person",
			Weight:      40,
		})
	}

	if m.isForeignEntity(input.Seller) {
		factors = append(factors, Factor{
			Kind:        FactorForeignSeller,
			Description: "Seller is a foreign legal entity: " + input.Seller.CountryOfIncorporation,
			Weight:      25,
		})
	}
	if m.isForeignEntity(input.Buyer) {
		factors = append(factors, Factor{
			Kind:        FactorForeignBuyer,
			Description: "Buyer is a foreign legal entity: " + input.Buyer.CountryOfIncorporation,
			Weight:      25,
		})
	}

	for _, party := range []Party{input.Seller, input.Buyer} {
		if party.CountryOfIncorporation != "" && m.highRisk[party.CountryOfIncorporation] {
			factors = append(factors, Factor{
				Kind:        FactorHighRiskCountry,
				Description: "High-risk jurisdiction: " + party.CountryOfIncorporation,
				Weight:      35,
			})
		}
	}

	return factors
}

// actTypeFactor returns the baseline weight for each act type. The switch is
// exhaustive over the closed enum; Validate rejects unknown values before
// this runs, so the default is unreachable for validated input.
func actTypeFactor(act ActType) Factor {
	var weight int
	var description string
	switch act {
	case ActMaritalLiquidation:
		weight, description = 5, "Marital partnership liquidation (low risk)"
	case ActMortgageCancellation:
		weight, description = 5, "Mortgage cancellation (low risk)"
	case ActMortgage:
		weight, description = 10, "Mortgage (medium risk)"
	case ActPowerOfAttorney:
		weight, description = 10, "Power of attorney (medium risk)"
	case ActWill:
		weight, description = 10, "Will (medium risk)"
	case ActSale:
		weight, description = 15, "Sale (medium-high risk)"
	case ActDonation:
		weight, description = 20, "Donation (high risk - possible concealment)"
	case ActCompanyFormation:
		weight, description = 20, "Company formation (high risk)"
	case ActOther:
		weight, description = 15, "Other act type"
	}
	return Factor{Kind: FactorActType, Description: description, Weight: weight}
}

// LevelFor buckets a score. Boundaries are inclusive on the lower bound.
func LevelFor(score int) Level {
	switch {
	case score >= 70:
		return LevelVeryHigh
	case score >= 50:
		return LevelHigh
	case score >= 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

func (m *Model) isForeignEntity(p Party) bool {
	return p.Type == PersonLegalEntity && p.CountryOfIncorporation != m.home
}
