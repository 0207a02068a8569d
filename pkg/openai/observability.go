package openai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rizome-dev/openaigo/pkg/errors"
	"github.com/rizome-dev/openaigo/pkg/models"
)

// MetricsCollector interface for metrics collection
type MetricsCollector interface {
	RecordLatency(operation string, duration time.Duration, labels map[string]string)
	RecordTokens(promptTokens, completionTokens int, labels map[string]string)
	RecordError(operation string, err error, labels map[string]string)
}

// RequestHook is called before a request is made
type RequestHook func(ctx context.Context, operation string, request any) context.Context

// ResponseHook is called after a response is received
type ResponseHook func(ctx context.Context, operation string, request any, response any, err error)

// ObservableClient wraps an API with logging, metrics and hooks
type ObservableClient struct {
	api           API
	logger        zerolog.Logger
	metrics       MetricsCollector
	requestHooks  []RequestHook
	responseHooks []ResponseHook
	logRequests   bool
	logResponses  bool
}

// ObservabilityOptions contains options for observability.
// A zero Logger discards output.
type ObservabilityOptions struct {
	Logger       zerolog.Logger
	Metrics      MetricsCollector
	LogRequests  bool
	LogResponses bool
}

// NewObservableClient wraps api
func NewObservableClient(api API, opts ObservabilityOptions) *ObservableClient {
	return &ObservableClient{
		api:          api,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		logRequests:  opts.LogRequests,
		logResponses: opts.LogResponses,
	}
}

// AddRequestHook adds a request hook
func (o *ObservableClient) AddRequestHook(hook RequestHook) {
	o.requestHooks = append(o.requestHooks, hook)
}

// AddResponseHook adds a response hook
func (o *ObservableClient) AddResponseHook(hook ResponseHook) {
	o.responseHooks = append(o.responseHooks, hook)
}

func (o *ObservableClient) ListModels(ctx context.Context) (*models.ModelList, error) {
	return observe(ctx, o, "list_models", "", nil,
		func(ctx context.Context) (*models.ModelList, error) { return o.api.ListModels(ctx) },
		nil,
	)
}

func (o *ObservableClient) GetModel(ctx context.Context, id string) (*models.Model, error) {
	return observe(ctx, o, "get_model", id, id,
		func(ctx context.Context) (*models.Model, error) { return o.api.GetModel(ctx, id) },
		nil,
	)
}

func (o *ObservableClient) CreateCompletion(ctx context.Context, req models.CompletionRequest) (*models.TextResult, error) {
	return observe(ctx, o, "completion", req.Model, req,
		func(ctx context.Context) (*models.TextResult, error) { return o.api.CreateCompletion(ctx, req) },
		textUsage,
	)
}

func (o *ObservableClient) CreateEdit(ctx context.Context, req models.EditRequest) (*models.TextResult, error) {
	return observe(ctx, o, "edit", req.Model, req,
		func(ctx context.Context) (*models.TextResult, error) { return o.api.CreateEdit(ctx, req) },
		textUsage,
	)
}

func (o *ObservableClient) CreateImage(ctx context.Context, req models.CreateImageRequest) (*models.ImageResult, error) {
	return observe(ctx, o, "image", "", req,
		func(ctx context.Context) (*models.ImageResult, error) { return o.api.CreateImage(ctx, req) },
		nil,
	)
}

func textUsage(r *models.TextResult) *models.Usage {
	return r.Usage
}

func observe[T any](
	ctx context.Context,
	o *ObservableClient,
	operation, model string,
	req any,
	call func(context.Context) (*T, error),
	usage func(*T) *models.Usage,
) (*T, error) {
	start := time.Now()

	// Run request hooks
	for _, hook := range o.requestHooks {
		ctx = hook(ctx, operation, req)
	}

	if o.logRequests {
		o.logger.Info().Str("operation", operation).Str("model", model).Msg("sending request")
	}

	resp, err := call(ctx)

	duration := time.Since(start)
	labels := map[string]string{
		"model":     model,
		"operation": operation,
		"status":    "success",
	}

	if err != nil {
		labels["status"] = "error"
		if o.metrics != nil {
			o.metrics.RecordError(operation, err, labels)
		}

		event := o.logger.Error().Err(err)
		if apiErr, ok := errors.AsAPIError(err); ok {
			event = event.Int("status_code", apiErr.StatusCode).Str("error_type", apiErr.Type)
		}
		event.Str("operation", operation).Str("model", model).Dur("duration", duration).Msg("request failed")
	} else {
		if o.logResponses {
			o.logger.Info().Str("operation", operation).Str("model", model).Dur("duration", duration).Msg("request succeeded")
		}

		if o.metrics != nil {
			o.metrics.RecordLatency(operation, duration, labels)
			if usage != nil {
				if u := usage(resp); u != nil {
					o.metrics.RecordTokens(u.PromptTokens, u.CompletionTokens, labels)
				}
			}
		}
	}

	// Run response hooks
	for _, hook := range o.responseHooks {
		hook(ctx, operation, req, resp, err)
	}

	return resp, err
}

// SimpleMetricsCollector implements MetricsCollector with in-memory storage
type SimpleMetricsCollector struct {
	mu        sync.Mutex
	latencies map[string][]time.Duration
	tokens    map[string]int
	errors    map[string]int
}

// MetricsSummary is a snapshot of a SimpleMetricsCollector
type MetricsSummary struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Errors           map[string]int
	AvgLatency       map[string]time.Duration
}

// NewSimpleMetricsCollector creates a new simple metrics collector
func NewSimpleMetricsCollector() *SimpleMetricsCollector {
	return &SimpleMetricsCollector{
		latencies: make(map[string][]time.Duration),
		tokens:    make(map[string]int),
		errors:    make(map[string]int),
	}
}

func (m *SimpleMetricsCollector) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := metricKey(operation, labels)
	m.latencies[key] = append(m.latencies[key], duration)
}

func (m *SimpleMetricsCollector) RecordTokens(promptTokens, completionTokens int, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens["prompt"] += promptTokens
	m.tokens["completion"] += completionTokens
	m.tokens["total"] += promptTokens + completionTokens
}

func (m *SimpleMetricsCollector) RecordError(operation string, err error, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[metricKey(operation, labels)]++
}

// GetSummary returns a summary of collected metrics
func (m *SimpleMetricsCollector) GetSummary() MetricsSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	summary := MetricsSummary{
		PromptTokens:     m.tokens["prompt"],
		CompletionTokens: m.tokens["completion"],
		TotalTokens:      m.tokens["total"],
		Errors:           make(map[string]int, len(m.errors)),
		AvgLatency:       make(map[string]time.Duration, len(m.latencies)),
	}

	for key, n := range m.errors {
		summary.Errors[key] = n
	}

	for key, durations := range m.latencies {
		if len(durations) == 0 {
			continue
		}
		var total time.Duration
		for _, d := range durations {
			total += d
		}
		summary.AvgLatency[key] = total / time.Duration(len(durations))
	}

	return summary
}

func metricKey(operation string, labels map[string]string) string {
	if labels["model"] == "" {
		return operation
	}
	return fmt.Sprintf("%s_%s", operation, labels["model"])
}
