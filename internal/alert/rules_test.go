package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigia/internal/operation"
	"vigia/internal/risk"
	"vigia/internal/screening"
	id "vigia/pkg/domain"
)

func ruleInput() RuleInput {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return RuleInput{
		Operation: operation.Operation{
			ID:            id.NewOperationID(),
			NotaryID:      id.NewNotaryID(),
			ActType:       risk.ActSale,
			DeclaredValue: 80_000,
			CashAmount:    500,
			Seller:        operation.PartyRecord{Identification: "1700000001", FullName: "Ana Seller", Type: risk.PersonNatural},
			Buyer:         operation.PartyRecord{Identification: "1700000002", FullName: "Luis Buyer", Type: risk.PersonNatural, MonthlyIncome: 5_000},
			ExecutionDate: created.Add(30 * 24 * time.Hour),
			CreatedAt:     created,
		},
		Now: created,
	}
}

func TestCashLimitRule(t *testing.T) {
	rule := cashLimitRule{}

	input := ruleInput()
	assert.Nil(t, rule.Evaluate(input))

	input.Operation.CashAmount = 10_000
	finding := rule.Evaluate(input)
	require.NotNil(t, finding)
	assert.Equal(t, KindCashLimitBreach, finding.Kind)
	assert.Equal(t, SeverityCritical, finding.Severity)

	input.Operation.CashAmount = 9_999.99
	assert.Nil(t, rule.Evaluate(input))
}

func TestUndervaluationRule(t *testing.T) {
	rule := undervaluationRule{}

	t.Run("cheap sale triggers", func(t *testing.T) {
		input := ruleInput()
		input.Operation.DeclaredValue = 4_999
		finding := rule.Evaluate(input)
		require.NotNil(t, finding)
		assert.Equal(t, SeverityHigh, finding.Severity)
	})

	t.Run("cheap donation does not", func(t *testing.T) {
		input := ruleInput()
		input.Operation.ActType = risk.ActDonation
		input.Operation.DeclaredValue = 4_999
		assert.Nil(t, rule.Evaluate(input))
	})

	t.Run("threshold itself is acceptable", func(t *testing.T) {
		input := ruleInput()
		input.Operation.DeclaredValue = 5_000
		assert.Nil(t, rule.Evaluate(input))
	})
}

func TestIncompatibleProfileRule(t *testing.T) {
	rule := incompatibleProfileRule{}

	t.Run("value above five times annualized income triggers with ratio", func(t *testing.T) {
		input := ruleInput()
		input.Operation.Buyer.MonthlyIncome = 1_000 // annualized 12000, limit 60000
		input.Operation.DeclaredValue = 80_000
		finding := rule.Evaluate(input)
		require.NotNil(t, finding)
		assert.Equal(t, KindIncompatibleProfile, finding.Kind)
		ratio, ok := finding.Details["ratio"].(float64)
		require.True(t, ok)
		assert.InDelta(t, 80_000.0/12_000.0, ratio, 0.001)
	})

	t.Run("exactly five times is acceptable", func(t *testing.T) {
		input := ruleInput()
		input.Operation.Buyer.MonthlyIncome = 1_000
		input.Operation.DeclaredValue = 60_000
		assert.Nil(t, rule.Evaluate(input))
	})

	t.Run("unknown income is skipped", func(t *testing.T) {
		input := ruleInput()
		input.Operation.Buyer.MonthlyIncome = 0
		input.Operation.DeclaredValue = 1_000_000
		assert.Nil(t, rule.Evaluate(input))
	})
}

func TestExcessiveUrgencyRule(t *testing.T) {
	rule := excessiveUrgencyRule{}

	t.Run("execution within 48h triggers", func(t *testing.T) {
		input := ruleInput()
		input.Operation.ExecutionDate = input.Operation.CreatedAt.Add(24 * time.Hour)
		finding := rule.Evaluate(input)
		require.NotNil(t, finding)
		assert.Equal(t, SeverityMedium, finding.Severity)
		assert.InDelta(t, 24.0, finding.Details["lead_hours"].(float64), 0.001)
	})

	t.Run("exactly 48h is acceptable", func(t *testing.T) {
		input := ruleInput()
		input.Operation.ExecutionDate = input.Operation.CreatedAt.Add(48 * time.Hour)
		assert.Nil(t, rule.Evaluate(input))
	})

	t.Run("execution dated before record creation triggers", func(t *testing.T) {
		input := ruleInput()
		input.Operation.ExecutionDate = input.Operation.CreatedAt.Add(-6 * time.Hour)
		finding := rule.Evaluate(input)
		require.NotNil(t, finding)
		assert.InDelta(t, -6.0, finding.Details["lead_hours"].(float64), 0.001)
	})

	t.Run("missing execution date is skipped", func(t *testing.T) {
		input := ruleInput()
		input.Operation.ExecutionDate = time.Time{}
		assert.Nil(t, rule.Evaluate(input))
	})
}

func TestWatchlistMatchRule(t *testing.T) {
	rule := watchlistMatchRule{}

	t.Run("clean screening is silent", func(t *testing.T) {
		input := ruleInput()
		input.Screening = screening.CombinedReport{
			Seller: screening.PartyReport{Role: "seller", Report: screening.Report{"uafe": {Status: screening.StatusClean}}},
			Buyer:  screening.PartyReport{Role: "buyer", Report: screening.Report{"uafe": {Status: screening.StatusClean}}},
		}
		assert.Nil(t, rule.Evaluate(input))
	})

	t.Run("buyer match names the party and source", func(t *testing.T) {
		input := ruleInput()
		input.Screening = screening.CombinedReport{
			Seller: screening.PartyReport{Role: "seller", FullName: "Ana Seller", Report: screening.Report{"ofac": {Status: screening.StatusClean}}},
			Buyer: screening.PartyReport{Role: "buyer", FullName: "Luis Buyer", Report: screening.Report{
				"ofac": {Status: screening.StatusMatch},
				"un":   {Status: screening.StatusMatch},
			}},
		}
		finding := rule.Evaluate(input)
		require.NotNil(t, finding)
		assert.Equal(t, SeverityCritical, finding.Severity)
		assert.Contains(t, finding.Description, "buyer")
		assert.Contains(t, finding.Description, "Luis Buyer")
		sources, ok := finding.Details["buyer_sources"].([]string)
		require.True(t, ok)
		assert.Len(t, sources, 2)
	})

	t.Run("errors alone do not trigger", func(t *testing.T) {
		input := ruleInput()
		input.Screening = screening.CombinedReport{
			Seller: screening.PartyReport{Role: "seller", Report: screening.Report{"uafe": {Status: screening.StatusError}}},
			Buyer:  screening.PartyReport{Role: "buyer", Report: screening.Report{"uafe": {Status: screening.StatusError}}},
		}
		assert.Nil(t, rule.Evaluate(input))
	})
}
