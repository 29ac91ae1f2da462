package providers

import (
	"context"
	"strings"
	"time"

	"vigia/internal/screening"
)

// UN simulates the United Nations Security Council consolidated sanctions
// list. Names containing "TERROR" report a 99% confidence match.
type UN struct {
	minLatency time.Duration
	maxLatency time.Duration
}

func NewUN() *UN {
	return &UN{minLatency: 100 * time.Millisecond, maxLatency: 500 * time.Millisecond}
}

func (p *UN) Source() string { return "UN" }

func (p *UN) CheckPerson(ctx context.Context, identification, fullName string) (screening.CheckResult, error) {
	if err := simulateLatency(ctx, p.minLatency, p.maxLatency); err != nil {
		return screening.CheckResult{}, err
	}

	result := screening.CheckResult{
		Source:    p.Source(),
		Status:    screening.StatusClean,
		Timestamp: time.Now(),
	}
	if strings.Contains(strings.ToUpper(fullName), "TERROR") {
		result.Status = screening.StatusMatch
		result.Matches = []screening.Match{{
			Source:      p.Source(),
			Name:        fullName,
			Confidence:  99,
			Details:     "Name matches UN Security Council consolidated list",
			ReferenceID: "UNSC-" + identification,
		}}
	}
	return result, nil
}
