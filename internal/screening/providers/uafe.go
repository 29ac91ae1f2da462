package providers

import (
	"context"
	"strings"
	"time"

	"vigia/internal/screening"
	dErrors "vigia/pkg/domain-errors"
)

// UAFE simulates the financial intelligence unit's reported-persons list.
// It is the slow source: real lookups take seconds.
//
// Trigger values: an identification containing "666" reports a match; one
// containing "999" simulates a provider outage.
type UAFE struct {
	minLatency time.Duration
	maxLatency time.Duration
}

func NewUAFE() *UAFE {
	return &UAFE{minLatency: 1500 * time.Millisecond, maxLatency: 3 * time.Second}
}

func (p *UAFE) Source() string { return "UAFE" }

func (p *UAFE) CheckPerson(ctx context.Context, identification, fullName string) (screening.CheckResult, error) {
	if err := simulateLatency(ctx, p.minLatency, p.maxLatency); err != nil {
		return screening.CheckResult{}, err
	}

	if strings.Contains(identification, "999") {
		return screening.CheckResult{}, dErrors.New(dErrors.CodeTimeout, "UAFE service unavailable")
	}

	result := screening.CheckResult{
		Source:    p.Source(),
		Status:    screening.StatusClean,
		Timestamp: time.Now(),
	}
	if strings.Contains(identification, "666") {
		result.Status = screening.StatusMatch
		result.Matches = []screening.Match{{
			Source:      p.Source(),
			Name:        fullName,
			Confidence:  100,
			Details:     "Person appears on the reported operations list",
			ReferenceID: "UAFE-ROS-" + identification,
		}}
	}
	return result, nil
}
