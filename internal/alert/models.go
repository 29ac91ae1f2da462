// Package alert implements the detection rules that turn evaluated
// operations into compliance alerts, and the review lifecycle those alerts
// move through.
package alert

import (
	"time"

	id "vigia/pkg/domain"
	dErrors "vigia/pkg/domain-errors"
)

// Kind identifies which rule raised an alert.
type Kind string

const (
	KindCashLimitBreach     Kind = "CASH_LIMIT_BREACH"
	KindUndervaluation      Kind = "UNDERVALUATION"
	KindIncompatibleProfile Kind = "INCOMPATIBLE_PROFILE"
	KindExcessiveUrgency    Kind = "EXCESSIVE_URGENCY"
	KindWatchlistMatch      Kind = "WATCHLIST_MATCH"
)

// Severity orders alerts for review triage.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// severityRank maps severities to sort weight, highest first.
var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// Rank returns the severity's triage weight. Unknown severities sort last.
func (s Severity) Rank() int {
	return severityRank[s]
}

// State is the alert's position in the review lifecycle.
type State string

const (
	StatePending       State = "PENDING"
	StateInAnalysis    State = "IN_ANALYSIS"
	StateConfirmed     State = "CONFIRMED"
	StateFalsePositive State = "FALSE_POSITIVE"
	StateReported      State = "REPORTED"
)

// ParseState validates a raw state string.
func ParseState(raw string) (State, error) {
	state := State(raw)
	switch state {
	case StatePending, StateInAnalysis, StateConfirmed, StateFalsePositive, StateReported:
		return state, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown alert state: "+raw)
}

// IsTerminal reports whether the state absorbs all further transitions.
func (s State) IsTerminal() bool {
	switch s {
	case StateConfirmed, StateFalsePositive, StateReported:
		return true
	}
	return false
}

// CanTransitionTo enforces the lifecycle: PENDING may move to IN_ANALYSIS or
// any terminal, IN_ANALYSIS may move to any terminal, terminals absorb.
func (s State) CanTransitionTo(target State) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case StateInAnalysis:
		return s == StatePending
	case StateConfirmed, StateFalsePositive, StateReported:
		return true
	}
	return false
}

// Alert is one triggered detection finding under review.
type Alert struct {
	ID          id.AlertID     `json:"id"`
	OperationID id.OperationID `json:"operation_id"`
	NotaryID    id.NotaryID    `json:"notary_id"`
	Kind        Kind           `json:"kind"`
	Severity    Severity       `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Details     map[string]any `json:"details,omitempty"`
	State       State          `json:"state"`

	ReviewedBy    *id.UserID `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	ReviewComment string     `json:"review_comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
