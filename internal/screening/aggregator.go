package screening

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"vigia/internal/screening/metrics"
)

// Verifier runs one person against every registered provider.
type Verifier interface {
	Verify(ctx context.Context, identification, fullName string) (Report, error)
}

// Aggregator fans a check out to all registered providers concurrently and
// waits for every one of them. Provider failures, timeouts, and panics are
// converted to ERROR entries inside the goroutines, so the errgroup barrier
// never trips early and the report is always complete.
type Aggregator struct {
	registry *Registry
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// NewAggregator constructs an Aggregator. timeout bounds each provider call
// individually.
func NewAggregator(registry *Registry, timeout time.Duration, logger *slog.Logger, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		registry: registry,
		timeout:  timeout,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("vigia/screening"),
	}
}

// Verify checks one person against all providers. The returned report has
// exactly one entry per registered provider.
func (a *Aggregator) Verify(ctx context.Context, identification, fullName string) (Report, error) {
	ctx, span := a.tracer.Start(ctx, "screening.Verify",
		trace.WithAttributes(attribute.Int("screening.providers", a.registry.Len())))
	defer span.End()

	report := make(Report, a.registry.Len())
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, provider := range a.registry.Providers() {
		g.Go(func() error {
			result := a.checkOne(ctx, provider, identification, fullName)
			mu.Lock()
			report[sourceKey(provider.Source())] = result
			mu.Unlock()
			return nil
		})
	}

	// All goroutines return nil; Wait is a pure barrier here.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("screening.status", string(report.OverallStatus())))
	a.metrics.IncrementVerification(string(report.OverallStatus()))
	return report, nil
}

// checkOne runs a single provider under its own timeout and never returns an
// incomplete verdict: any failure mode collapses into a StatusError result.
func (a *Aggregator) checkOne(ctx context.Context, provider Provider, identification, fullName string) (result CheckResult) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	ctx, span := a.tracer.Start(ctx, "screening.CheckPerson",
		trace.WithAttributes(attribute.String("screening.source", provider.Source())))
	defer span.End()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "screening provider panicked",
				"source", provider.Source(),
				"panic", r,
			)
			result = errorResult(provider.Source(), start, fmt.Errorf("provider panic: %v", r))
		}
		span.SetAttributes(attribute.String("screening.status", string(result.Status)))
		a.metrics.ObserveProviderLatency(provider.Source(), string(result.Status), result.Elapsed)
	}()

	checked, err := provider.CheckPerson(ctx, identification, fullName)
	if err != nil {
		a.logger.WarnContext(ctx, "screening provider failed",
			"source", provider.Source(),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return errorResult(provider.Source(), start, err)
	}

	checked.Source = provider.Source()
	checked.Elapsed = time.Since(start)
	if checked.Timestamp.IsZero() {
		checked.Timestamp = time.Now()
	}
	return checked
}

func errorResult(source string, start time.Time, err error) CheckResult {
	return CheckResult{
		Source:    source,
		Status:    StatusError,
		Timestamp: time.Now(),
		Elapsed:   time.Since(start),
		Err:       err.Error(),
	}
}
