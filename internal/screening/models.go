// Package screening verifies transaction parties against watchlist
// providers. Providers are fanned out concurrently; a verification always
// produces one result per registered provider, converting provider failures
// into ERROR entries instead of failing the whole check.
package screening

import (
	"strings"
	"time"
)

// Status is the per-provider outcome of a watchlist check.
type Status string

const (
	StatusClean Status = "CLEAN"
	StatusMatch Status = "MATCH"
	StatusError Status = "ERROR"
)

// Match is a single watchlist hit returned by a provider.
type Match struct {
	Source      string  `json:"source"`
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence"`
	Details     string  `json:"details"`
	ReferenceID string  `json:"reference_id"`
}

// CheckResult is one provider's verdict for one person. The aggregator
// guarantees exactly one per registered provider per verification; failures
// surface as StatusError with Err set, never as a missing entry.
type CheckResult struct {
	Source    string        `json:"source"`
	Status    Status        `json:"status"`
	Matches   []Match       `json:"matches,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Elapsed   time.Duration `json:"elapsed"`
	Err       string        `json:"error,omitempty"`
}

// Report maps lower-cased provider sources to their results.
type Report map[string]CheckResult

// OverallStatus folds a report: any MATCH dominates, then any ERROR,
// otherwise CLEAN.
func (r Report) OverallStatus() Status {
	status := StatusClean
	for _, result := range r {
		switch result.Status {
		case StatusMatch:
			return StatusMatch
		case StatusError:
			status = StatusError
		}
	}
	return status
}

// Matches flattens every hit across all sources.
func (r Report) Matches() []Match {
	var matches []Match
	for _, result := range r {
		matches = append(matches, result.Matches...)
	}
	return matches
}

func sourceKey(source string) string {
	return strings.ToLower(source)
}
