package allocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "allocation-engine-backend/internal/errors"
	"allocation-engine-backend/internal/logger"

	"github.com/google/uuid"
)

// StatusSuccess is the status discriminator of a successful service response
const StatusSuccess = "success"

// DefaultRequestTimeout bounds a single allocation service call
const DefaultRequestTimeout = 30 * time.Second

// DefaultMaxFailureMessages is how many failure messages a summary keeps
const DefaultMaxFailureMessages = 5

// ServiceResponse is what the allocation service answers for every operation
type ServiceResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the response carries the success discriminator
func (r ServiceResponse) OK() bool {
	return strings.EqualFold(r.Status, StatusSuccess)
}

//go:generate mockgen -source=executor.go -destination=../mocks/allocation_mocks.go -package=mocks

// Service is the external allocation service
type Service interface {
	AllocateOne(ctx context.Context, releaseID, testCaseID uuid.UUID) (ServiceResponse, error)
	AllocateOneToMany(ctx context.Context, testCaseID uuid.UUID, releaseIDs []uuid.UUID) (ServiceResponse, error)
	AllocateBulk(ctx context.Context, pairs []Pair) (ServiceResponse, error)
}

// Recorder receives every pair the service confirmed
type Recorder interface {
	RecordAllocations(pairs []Pair)
}

// MetricsCollector observes executor activity
type MetricsCollector interface {
	RecordRequest(mode, outcome string, seconds float64)
	RecordBatch(result string)
}

// Outcome of a single request
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Batch results reported to metrics
const (
	BatchComplete  = "complete"
	BatchPartial   = "partial"
	BatchFailed    = "failed"
	BatchCancelled = "cancelled"
)

// Result is the outcome of one request
type Result struct {
	Index    int                 `json:"index"`
	Request  Request             `json:"request"`
	Outcome  Outcome             `json:"outcome"`
	Kind     apperrors.ErrorKind `json:"kind,omitempty"`
	Message  string              `json:"message"`
	Duration time.Duration       `json:"-"`
}

// Progress is reported after every request, successful or not
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ProgressFunc receives progress updates
type ProgressFunc func(Progress)

// Executor runs allocation requests strictly one after another. A failed
// request never stops the batch.
type Executor struct {
	service            Service
	timeout            time.Duration
	maxFailureMessages int
	recorder           Recorder
	metrics            MetricsCollector
	log                *logger.Logger
}

// ExecutorOption configures an Executor
type ExecutorOption func(*Executor)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithRecorder registers successful pairs, e.g. into a StageTracker
func WithRecorder(r Recorder) ExecutorOption {
	return func(e *Executor) { e.recorder = r }
}

// WithMetrics sets the metrics collector
func WithMetrics(m MetricsCollector) ExecutorOption {
	return func(e *Executor) { e.metrics = m }
}

// WithLogger sets the logger
func WithLogger(l *logger.Logger) ExecutorOption {
	return func(e *Executor) { e.log = l }
}

// WithMaxFailureMessages caps the failure messages kept in a summary
func WithMaxFailureMessages(n int) ExecutorOption {
	return func(e *Executor) {
		if n >= 0 {
			e.maxFailureMessages = n
		}
	}
}

// NewExecutor creates an executor over service
func NewExecutor(service Service, opts ...ExecutorOption) *Executor {
	e := &Executor{
		service:            service,
		timeout:            DefaultRequestTimeout,
		maxFailureMessages: DefaultMaxFailureMessages,
		log:                logger.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes requests in order and streams one Result per attempted request.
// The channel is closed when the batch ends. Cancelling ctx stops the batch
// before the next request; pairs already recorded stay recorded. A request cut
// short by the cancellation is reported with KindCancelled.
func (e *Executor) Run(ctx context.Context, requests []Request, progress ProgressFunc) <-chan Result {
	out := make(chan Result, len(requests))
	go func() {
		defer close(out)
		total := len(requests)
		for i, req := range requests {
			if ctx.Err() != nil {
				return
			}
			res := e.execute(ctx, i, req)
			if res.Outcome == OutcomeSuccess && e.recorder != nil {
				e.recorder.RecordAllocations(req.Pairs())
			}
			if e.metrics != nil {
				e.metrics.RecordRequest(string(req.Mode), string(res.Outcome), res.Duration.Seconds())
			}
			out <- res
			if progress != nil {
				progress(Progress{Completed: i + 1, Total: total})
			}
		}
	}()
	return out
}

// Execute runs the batch to completion and summarizes it
func (e *Executor) Execute(ctx context.Context, requests []Request, progress ProgressFunc) *BatchSummary {
	summary := &BatchSummary{Total: len(requests), maxFailures: e.maxFailureMessages}
	for res := range e.Run(ctx, requests, progress) {
		summary.add(res)
	}
	if summary.Completed < summary.Total {
		summary.Cancelled = true
	}

	if e.metrics != nil {
		e.metrics.RecordBatch(summary.Result())
	}
	e.log.WithFields(map[string]interface{}{
		"total":     summary.Total,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"cancelled": summary.Cancelled,
	}).Info("Allocation batch finished")
	return summary
}

func (e *Executor) execute(ctx context.Context, index int, req Request) Result {
	res := Result{Index: index, Request: req}
	started := time.Now()

	reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.call(reqCtx, req)
	res.Duration = time.Since(started)
	switch {
	case err != nil:
		res.Outcome = OutcomeFailure
		res.Kind = classify(ctx, reqCtx, err)
		res.Message = err.Error()
	case !resp.OK():
		res.Outcome = OutcomeFailure
		res.Kind = apperrors.KindTransportFailure
		res.Message = resp.Message
		if res.Message == "" {
			res.Message = fmt.Sprintf("allocation service answered %q", resp.Status)
		}
	default:
		res.Outcome = OutcomeSuccess
		res.Message = resp.Message
		if res.Message == "" {
			res.Message = "allocated"
		}
	}

	if res.Outcome == OutcomeFailure {
		e.log.WithFields(map[string]interface{}{
			"index": index,
			"mode":  req.Mode,
			"kind":  res.Kind,
		}).Warnf("Allocation request failed: %s", res.Message)
	}
	return res
}

func (e *Executor) call(ctx context.Context, req Request) (ServiceResponse, error) {
	switch req.Mode {
	case ModeOneToOne:
		if len(req.TestCaseIDs) != 1 || len(req.ReleaseIDs) != 1 {
			return ServiceResponse{}, apperrors.NewAllocationError(apperrors.KindInvalidInput,
				"one-to-one request needs exactly one test case and one release")
		}
		return e.service.AllocateOne(ctx, req.ReleaseIDs[0], req.TestCaseIDs[0])
	case ModeOneToMany:
		if len(req.TestCaseIDs) != 1 || len(req.ReleaseIDs) == 0 {
			return ServiceResponse{}, apperrors.NewAllocationError(apperrors.KindInvalidInput,
				"one-to-many request needs exactly one test case and at least one release")
		}
		return e.service.AllocateOneToMany(ctx, req.TestCaseIDs[0], req.ReleaseIDs)
	case ModeBulk:
		pairs := req.Pairs()
		if len(pairs) == 0 {
			return ServiceResponse{}, apperrors.NewAllocationError(apperrors.KindInvalidInput, "bulk request carries no pairs")
		}
		return e.service.AllocateBulk(ctx, pairs)
	}
	return ServiceResponse{}, apperrors.NewAllocationError(apperrors.KindInvalidInput, "unknown allocation mode %q", req.Mode)
}

func classify(parent, reqCtx context.Context, err error) apperrors.ErrorKind {
	var allocErr *apperrors.AllocationError
	switch {
	case parent.Err() != nil:
		return apperrors.KindCancelled
	case errors.As(err, &allocErr):
		return allocErr.Kind
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded):
		return apperrors.KindTimeout
	}
	return apperrors.KindTransportFailure
}

// BatchSummary aggregates the outcomes of a batch
type BatchSummary struct {
	Total           int      `json:"total"`
	Completed       int      `json:"completed"`
	Succeeded       int      `json:"succeeded"`
	Failed          int      `json:"failed"`
	Cancelled       bool     `json:"cancelled"`
	FirstMessage    string   `json:"first_message"`
	FailureMessages []string `json:"failure_messages"`
	Results         []Result `json:"results"`

	maxFailures int
}

func (s *BatchSummary) add(res Result) {
	s.Completed++
	s.Results = append(s.Results, res)
	if s.FirstMessage == "" {
		s.FirstMessage = res.Message
	}
	if res.Outcome == OutcomeSuccess {
		s.Succeeded++
		return
	}
	if res.Kind == apperrors.KindCancelled {
		s.Cancelled = true
	}
	s.Failed++
	if len(s.FailureMessages) < s.maxFailures {
		s.FailureMessages = append(s.FailureMessages, res.Message)
	}
}

// AllocatedPairs returns every pair confirmed by the service, in request order
func (s *BatchSummary) AllocatedPairs() []Pair {
	pairs := make([]Pair, 0)
	for _, res := range s.Results {
		if res.Outcome == OutcomeSuccess {
			pairs = append(pairs, res.Request.Pairs()...)
		}
	}
	return pairs
}

// Result classifies the batch as complete, partial, failed or cancelled
func (s *BatchSummary) Result() string {
	switch {
	case s.Cancelled:
		return BatchCancelled
	case s.Failed == 0:
		return BatchComplete
	case s.Succeeded == 0:
		return BatchFailed
	}
	return BatchPartial
}

// Err returns nil when every request succeeded. A cancelled batch that
// allocated nothing yields KindCancelled; any other shortfall is a
// PartialBatchFailure carrying the succeeded/failed counts.
func (s *BatchSummary) Err() error {
	if s.Failed == 0 && !s.Cancelled {
		return nil
	}
	if s.Cancelled && s.Succeeded == 0 {
		return apperrors.NewAllocationError(apperrors.KindCancelled,
			"batch cancelled after %d of %d request(s), nothing allocated", s.Completed, s.Total)
	}
	msg := fmt.Sprintf("%d of %d allocation request(s) failed", s.Failed, s.Total)
	if s.Cancelled {
		msg = fmt.Sprintf("batch cancelled after %d of %d request(s)", s.Completed, s.Total)
	}
	return apperrors.NewPartialBatchFailure(msg, s.Succeeded, s.Failed)
}
