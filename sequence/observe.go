package sequence

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	seqerrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Logged wraps a sequence so that every full traversal emits a summary
// (element count, duration, outcome) through log, tagged with the stage
// name. Individual elements are logged at trace level. A nil log falls
// back to a no-op logger.
func Logged[T any](s *Sequence[T], log *logger.Logger, stage string) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	staged := log.WithStage(stage)
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &loggedIter[T]{source: s.create(ctx), log: staged}
		},
	}, nil
}

// Traced wraps a sequence so that every traversal runs under an
// OpenTelemetry span named after the stage. The span records the element
// count on completion and any traversal error.
func Traced[T any](s *Sequence[T], stage string) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			ctx, span := observability.StartSpan(ctx, observability.SpanTraversal)
			observability.SetSpanAttribute(ctx, observability.AttrStage, stage)
			return &tracedIter[T]{source: s.create(ctx), ctx: ctx, span: span}
		},
	}, nil
}

// Metered wraps a sequence so that every traversal records element count,
// duration, and errors through m, tagged with the stage name. A nil m
// returns the sequence unchanged.
func Metered[T any](s *Sequence[T], m *observability.Metrics, stage string) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if m == nil {
		return s, nil
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &meteredIter[T]{source: s.create(ctx), metrics: m, stage: stage}
		},
	}, nil
}

type loggedIter[T any] struct {
	source Iterator[T]
	log    *logger.Logger
	count  int64
	start  time.Time
	done   bool
}

func (it *loggedIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.start.IsZero() {
		it.start = time.Now()
	}
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		it.log.Error("traversal failed", logger.Fields(
			logger.FieldElements, it.count,
			logger.FieldError, err,
		))
	case ok:
		it.count++
		it.log.Trace("element produced", logger.Fields(logger.FieldIndex, it.count-1))
	case !it.done:
		it.done = true
		it.log.Debug("traversal complete", logger.Fields(
			logger.FieldElements, it.count,
			logger.FieldDuration, time.Since(it.start).Milliseconds(),
		))
	}
	return val, ok, err
}

func (it *loggedIter[T]) Close() error { return it.source.Close() }

type tracedIter[T any] struct {
	source Iterator[T]
	ctx    context.Context
	span   trace.Span
	count  int64
	ended  bool
}

func (it *tracedIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		observability.SetSpanError(it.ctx, err)
		it.end()
	case ok:
		it.count++
	default:
		it.end()
	}
	return val, ok, err
}

func (it *tracedIter[T]) end() {
	if it.ended {
		return
	}
	it.ended = true
	observability.SetSpanAttribute(it.ctx, observability.AttrElements, it.count)
	it.span.End()
}

func (it *tracedIter[T]) Close() error {
	it.end()
	return it.source.Close()
}

type meteredIter[T any] struct {
	source  Iterator[T]
	metrics *observability.Metrics
	stage   string
	count   int64
	start   time.Time
	done    bool
}

func (it *meteredIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.start.IsZero() {
		it.start = time.Now()
	}
	val, ok, err := it.source.Next(ctx)
	switch {
	case err != nil:
		it.finish(ctx, "error")
		code := string(seqerrors.CodeOf(err))
		if code == "" {
			code = "unknown"
		}
		it.metrics.RecordError(ctx, it.stage, code)
	case !ok:
		it.finish(ctx, "ok")
	default:
		it.count++
	}
	return val, ok, err
}

func (it *meteredIter[T]) finish(ctx context.Context, status string) {
	if it.done {
		return
	}
	it.done = true
	it.metrics.RecordTraversal(ctx, it.stage, status, it.count, time.Since(it.start))
}

func (it *meteredIter[T]) Close() error { return it.source.Close() }
