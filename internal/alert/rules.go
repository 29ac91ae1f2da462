package alert

import (
	"fmt"
	"time"

	"vigia/internal/operation"
	"vigia/internal/risk"
	"vigia/internal/screening"
)

// RuleInput is everything a rule may inspect for one evaluated operation.
type RuleInput struct {
	Operation  operation.Operation
	Assessment risk.Assessment
	Screening  screening.CombinedReport
	Now        time.Time
}

// Rule inspects one evaluated operation. A nil finding means the rule did
// not trigger; rules never return errors, detection is pure.
type Rule interface {
	Kind() Kind
	Evaluate(input RuleInput) *Finding
}

// Finding is a triggered rule's raw output before persistence.
type Finding struct {
	Kind        Kind
	Severity    Severity
	Title       string
	Description string
	Details     map[string]any
}

// DefaultRules returns the standard detection rule set in execution order.
func DefaultRules() []Rule {
	return []Rule{
		cashLimitRule{},
		undervaluationRule{},
		incompatibleProfileRule{},
		excessiveUrgencyRule{},
		watchlistMatchRule{},
	}
}

// cashLimitRule triggers when the cash portion reaches the legal limit.
type cashLimitRule struct{}

func (cashLimitRule) Kind() Kind { return KindCashLimitBreach }

func (cashLimitRule) Evaluate(input RuleInput) *Finding {
	if input.Operation.CashAmount < risk.CashLimit {
		return nil
	}
	return &Finding{
		Kind:        KindCashLimitBreach,
		Severity:    SeverityCritical,
		Title:       "Cash amount at or above legal limit",
		Description: fmt.Sprintf("Cash payment of $%.2f meets or exceeds the $%d limit for a single transaction", input.Operation.CashAmount, risk.CashLimit),
		Details: map[string]any{
			"cash_amount": input.Operation.CashAmount,
			"limit":       risk.CashLimit,
		},
	}
}

// undervaluationThreshold is the declared value below which a sale is
// suspicious on its face.
const undervaluationThreshold = 5_000

type undervaluationRule struct{}

func (undervaluationRule) Kind() Kind { return KindUndervaluation }

func (undervaluationRule) Evaluate(input RuleInput) *Finding {
	op := input.Operation
	if op.ActType != risk.ActSale || op.DeclaredValue >= undervaluationThreshold {
		return nil
	}
	return &Finding{
		Kind:        KindUndervaluation,
		Severity:    SeverityHigh,
		Title:       "Possible undervaluation of sale",
		Description: fmt.Sprintf("Declared value of $%.2f is below the $%d plausibility floor for a sale", op.DeclaredValue, undervaluationThreshold),
		Details: map[string]any{
			"declared_value": op.DeclaredValue,
			"threshold":      undervaluationThreshold,
		},
	}
}

// incomeMultipleLimit is how many times the buyer's annualized income the
// declared value may reach before the profile looks incompatible.
const incomeMultipleLimit = 5.0

type incompatibleProfileRule struct{}

func (incompatibleProfileRule) Kind() Kind { return KindIncompatibleProfile }

func (incompatibleProfileRule) Evaluate(input RuleInput) *Finding {
	op := input.Operation
	if op.Buyer.MonthlyIncome <= 0 {
		return nil
	}
	annualized := op.Buyer.MonthlyIncome * 12
	ratio := op.DeclaredValue / annualized
	if ratio <= incomeMultipleLimit {
		return nil
	}
	return &Finding{
		Kind:        KindIncompatibleProfile,
		Severity:    SeverityHigh,
		Title:       "Transaction incompatible with buyer income",
		Description: fmt.Sprintf("Declared value of $%.2f is %.1fx the buyer's annualized income of $%.2f", op.DeclaredValue, ratio, annualized),
		Details: map[string]any{
			"declared_value":    op.DeclaredValue,
			"annualized_income": annualized,
			"ratio":             ratio,
		},
	}
}

// urgencyWindow is the minimum span between record creation and execution
// before the timeline counts as rushed.
const urgencyWindow = 48 * time.Hour

type excessiveUrgencyRule struct{}

func (excessiveUrgencyRule) Kind() Kind { return KindExcessiveUrgency }

func (excessiveUrgencyRule) Evaluate(input RuleInput) *Finding {
	op := input.Operation
	if op.ExecutionDate.IsZero() {
		return nil
	}
	// A negative lead (execution scheduled before the record existed) still
	// counts as rushed; only a comfortable forward lead is acceptable.
	lead := op.ExecutionDate.Sub(op.CreatedAt)
	if lead >= urgencyWindow {
		return nil
	}
	return &Finding{
		Kind:        KindExcessiveUrgency,
		Severity:    SeverityMedium,
		Title:       "Unusually urgent execution",
		Description: fmt.Sprintf("Only %.0f hours between record creation and scheduled execution", lead.Hours()),
		Details: map[string]any{
			"lead_hours":   lead.Hours(),
			"window_hours": urgencyWindow.Hours(),
		},
	}
}

type watchlistMatchRule struct{}

func (watchlistMatchRule) Kind() Kind { return KindWatchlistMatch }

func (watchlistMatchRule) Evaluate(input RuleInput) *Finding {
	var descriptions []string
	details := map[string]any{}
	for _, party := range []screening.PartyReport{input.Screening.Seller, input.Screening.Buyer} {
		var sources []string
		for source, result := range party.Report {
			if result.Status == screening.StatusMatch {
				sources = append(sources, source)
			}
		}
		if len(sources) > 0 {
			descriptions = append(descriptions, fmt.Sprintf("%s %q matched on %v", party.Role, party.FullName, sources))
			details[party.Role+"_sources"] = sources
		}
	}
	if len(descriptions) == 0 {
		return nil
	}

	description := descriptions[0]
	if len(descriptions) == 2 {
		description += "; " + descriptions[1]
	}
	return &Finding{
		Kind:        KindWatchlistMatch,
		Severity:    SeverityCritical,
		Title:       "Party matched on watchlist",
		Description: description,
		Details:     details,
	}
}
