package screening

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingVerifier struct {
	calls  atomic.Int32
	report Report
}

func (v *countingVerifier) Verify(ctx context.Context, identification, fullName string) (Report, error) {
	v.calls.Add(1)
	return v.report, nil
}

func TestCachedVerifierWithoutCacheClient(t *testing.T) {
	inner := &countingVerifier{report: Report{"uafe": {Status: StatusClean}}}
	cached := NewCachedVerifier(inner, nil, 24*time.Hour, testLogger(), nil)

	report, err := cached.Verify(context.Background(), "1712345678", "Juan Pérez")
	require.NoError(t, err)
	assert.Equal(t, StatusClean, report.OverallStatus())

	_, err = cached.Verify(context.Background(), "1712345678", "Juan Pérez")
	require.NoError(t, err)
	assert.Equal(t, int32(2), inner.calls.Load(), "nil cache must pass every call through")
}
