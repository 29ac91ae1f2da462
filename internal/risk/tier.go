package risk

// ClassifyTier derives the required due-diligence intensity from the party
// flags and the computed score. First match wins:
//
//  1. Any politically exposed party forces INTENSIFIED, regardless of score.
//  2. A foreign legal entity on either side floors the tier at REINFORCED,
//     escalating to INTENSIFIED at score >= 70.
//  3. Otherwise the score buckets decide.
func (m *Model) ClassifyTier(input Input, score int) Tier {
	if input.Seller.PEP || input.Buyer.PEP {
		return TierIntensified
	}

	if m.isForeignEntity(input.Seller) || m.isForeignEntity(input.Buyer) {
		if score >= 70 {
			return TierIntensified
		}
		return TierReinforced
	}

	switch {
	case score >= 70:
		return TierIntensified
	case score >= 50:
		return TierReinforced
	case score >= 30:
		return TierStandard
	default:
		return TierSimplified
	}
}

// Assess runs the full evaluation: score, level bucketing, and tier
// classification in one pass.
func (m *Model) Assess(input Input) (Assessment, error) {
	score, factors, err := m.Score(input)
	if err != nil {
		return Assessment{}, err
	}
	return Assessment{
		Score:   score,
		Level:   LevelFor(score),
		Factors: factors,
		Tier:    m.ClassifyTier(input, score),
	}, nil
}
