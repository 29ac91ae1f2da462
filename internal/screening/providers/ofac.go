package providers

import (
	"context"
	"strings"
	"time"

	"vigia/internal/screening"
)

// OFAC simulates the US Treasury SDN list. Names containing "SANCTION" or
// "LADEN" report a 95% confidence match.
type OFAC struct {
	minLatency time.Duration
	maxLatency time.Duration
}

func NewOFAC() *OFAC {
	return &OFAC{minLatency: 100 * time.Millisecond, maxLatency: 500 * time.Millisecond}
}

func (p *OFAC) Source() string { return "OFAC" }

func (p *OFAC) CheckPerson(ctx context.Context, identification, fullName string) (screening.CheckResult, error) {
	if err := simulateLatency(ctx, p.minLatency, p.maxLatency); err != nil {
		return screening.CheckResult{}, err
	}

	result := screening.CheckResult{
		Source:    p.Source(),
		Status:    screening.StatusClean,
		Timestamp: time.Now(),
	}
	upper := strings.ToUpper(fullName)
	if strings.Contains(upper, "SANCTION") || strings.Contains(upper, "LADEN") {
		result.Status = screening.StatusMatch
		result.Matches = []screening.Match{{
			Source:      p.Source(),
			Name:        fullName,
			Confidence:  95,
			Details:     "Name matches Specially Designated Nationals list",
			ReferenceID: "SDN-" + identification,
		}}
	}
	return result, nil
}
