package scorecardservice

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/strideclub/scorecard/internal/eventbus"
	"github.com/strideclub/scorecard/internal/observability/attr"
	"github.com/strideclub/scorecard/internal/observability/metrics/scorecardmetrics"
)

// ScorecardService implements the Service interface. The statistics
// engine itself is pure; the service adds logging, metrics, tracing, and
// event publication around it.
type ScorecardService struct {
	EventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  scorecardmetrics.ScorecardMetrics
	tracer   trace.Tracer
	rng      *rand.Rand
	now      func() time.Time
}

// NewScorecardService creates a new ScorecardService. The random source
// feeds synthetic yardage jitter only; pass a seeded rand for
// reproducible fixtures or nil to use wall-clock seeding.
func NewScorecardService(
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics scorecardmetrics.ScorecardMetrics,
	tracer trace.Tracer,
	rng *rand.Rand,
) *ScorecardService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ScorecardService{
		EventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		rng:      rng,
		now:      time.Now,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and
// panic recovery.
func withTelemetry[T any](
	s *ScorecardService,
	ctx context.Context,
	operationName string,
	op operationFunc[T],
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.String("operation", operationName),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed",
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	return result, nil
}
