//go:build integration

package screening_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"vigia/internal/screening"
	"vigia/pkg/testutil/containers"
)

type recordingVerifier struct {
	calls  atomic.Int32
	report screening.Report
}

func (v *recordingVerifier) Verify(_ context.Context, identification, fullName string) (screening.Report, error) {
	v.calls.Add(1)
	return v.report, nil
}

type CachedVerifierSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestCachedVerifierSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedVerifierSuite))
}

func (s *CachedVerifierSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *CachedVerifierSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *CachedVerifierSuite) newCached(inner screening.Verifier, ttl time.Duration) *screening.CachedVerifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return screening.NewCachedVerifier(inner, s.redis.Client, ttl, logger, nil)
}

func (s *CachedVerifierSuite) TestHitFreezesProviderCallCount() {
	ctx := context.Background()
	inner := &recordingVerifier{report: screening.Report{
		"uafe": {Source: "UAFE", Status: screening.StatusClean, Timestamp: time.Now().UTC()},
		"ofac": {Source: "OFAC", Status: screening.StatusMatch, Matches: []screening.Match{
			{Source: "OFAC", Name: "Juan Pérez", Confidence: 95, ReferenceID: "SDN-1712345678"},
		}},
	}}
	cached := s.newCached(inner, 24*time.Hour)

	first, err := cached.Verify(ctx, "1712345678", "Juan Pérez")
	s.Require().NoError(err)
	s.Equal(int32(1), inner.calls.Load())

	second, err := cached.Verify(ctx, "1712345678", "Juan Pérez")
	s.Require().NoError(err)
	s.Equal(int32(1), inner.calls.Load(), "second call must be served from cache")
	s.Equal(first.OverallStatus(), second.OverallStatus())
	s.Len(second.Matches(), 1)
	s.Equal("SDN-1712345678", second.Matches()[0].ReferenceID)
}

func (s *CachedVerifierSuite) TestDistinctIdentificationsAreCachedSeparately() {
	ctx := context.Background()
	inner := &recordingVerifier{report: screening.Report{"uafe": {Status: screening.StatusClean}}}
	cached := s.newCached(inner, 24*time.Hour)

	_, err := cached.Verify(ctx, "1700000001", "Ana Seller")
	s.Require().NoError(err)
	_, err = cached.Verify(ctx, "1700000002", "Luis Buyer")
	s.Require().NoError(err)
	s.Equal(int32(2), inner.calls.Load())
}

func (s *CachedVerifierSuite) TestReportExpiresWithTTL() {
	ctx := context.Background()
	inner := &recordingVerifier{report: screening.Report{"uafe": {Status: screening.StatusClean}}}
	cached := s.newCached(inner, 500*time.Millisecond)

	_, err := cached.Verify(ctx, "1712345678", "Juan Pérez")
	s.Require().NoError(err)

	time.Sleep(700 * time.Millisecond)

	_, err = cached.Verify(ctx, "1712345678", "Juan Pérez")
	s.Require().NoError(err)
	s.Equal(int32(2), inner.calls.Load(), "expired entry must trigger a fresh fan-out")
}

func (s *CachedVerifierSuite) TestCorruptEntryFallsThrough() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, "compliance:check:1712345678", "not-json{", time.Hour).Err())

	inner := &recordingVerifier{report: screening.Report{"uafe": {Status: screening.StatusClean}}}
	cached := s.newCached(inner, time.Hour)

	report, err := cached.Verify(ctx, "1712345678", "Juan Pérez")
	s.Require().NoError(err)
	s.Equal(screening.StatusClean, report.OverallStatus())
	s.Equal(int32(1), inner.calls.Load())
}
